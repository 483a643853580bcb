package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/leave"
	"hrms/internal/mirror"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Leaves *leave.Store
	Mirror *mirror.Engine
}

func NewHandler(leaves *leave.Store, mirrorEngine *mirror.Engine) *Handler {
	return &Handler{Leaves: leaves, Mirror: mirrorEngine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", h.handleCreate)
		r.Get("/me", h.handleListMine)
		r.With(middleware.RequireManager).Get("/", h.handleList)
		r.With(middleware.RequireManager).Post("/{requestID}/approve", h.handleApprove)
		r.With(middleware.RequireManager).Post("/{requestID}/reject", h.handleReject)
	})
}

type createPayload struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	if !leave.ValidType(payload.LeaveType) {
		v.Add("leaveType", "unknown leave type")
	}
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	v.DateOrder("startDate", start, "endDate", end)
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Leaves.Create(r.Context(), leave.Request{
		EmployeeID: user.UserID,
		LeaveType:  payload.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     payload.Reason,
	})
	if err != nil {
		if errors.Is(err, leave.ErrInvalidRange) {
			api.Fail(w, http.StatusBadRequest, "invalid_range", "end date before start date", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_create_failed", "failed to create leave request", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionLeaves)
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	requests, err := h.Leaves.ListByEmployee(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := r.URL.Query().Get("status")
	var (
		requests []leave.Request
		err      error
	)
	if status != "" {
		requests, err = h.Leaves.ListByStatus(r.Context(), status)
	} else {
		requests, err = h.Leaves.ListAll(r.Context())
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

type decisionPayload struct {
	AdminRemarks string `json:"adminRemarks"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.StatusRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status string) {
	requestID := middleware.GetRequestID(r.Context())
	leaveID := chi.URLParam(r, "requestID")

	var payload decisionPayload
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	req, err := h.Leaves.Decide(r.Context(), leaveID, status, payload.AdminRemarks)
	if err != nil {
		switch {
		case errors.Is(err, leave.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		case errors.Is(err, leave.ErrAlreadyDecided):
			api.Fail(w, http.StatusConflict, "already_decided", "leave request already decided", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "leave_decision_failed", "failed to decide leave request", requestID)
		}
		return
	}

	h.Mirror.Trigger(mirror.CollectionLeaves)
	api.Success(w, req, requestID)
}
