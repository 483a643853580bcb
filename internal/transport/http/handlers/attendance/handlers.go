package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/mirror"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Store
	Mirror     *mirror.Engine
	Now        func() time.Time
}

func NewHandler(att *attendance.Store, mirrorEngine *mirror.Engine) *Handler {
	return &Handler{Attendance: att, Mirror: mirrorEngine, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/me", h.handleListMine)
		r.With(middleware.RequireManager).Get("/today", h.handleListToday)
		r.With(middleware.RequireManager).Get("/employee/{employeeID}", h.handleListByEmployee)
		r.With(middleware.RequireManager).Post("/mark", h.handleMark)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	rec, err := h.Attendance.CheckIn(r.Context(), user.UserID, h.Now().UTC())
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			api.Fail(w, http.StatusConflict, "already_checked_in", "already checked in for today", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "checkin_failed", "failed to record check-in", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionAttendance)
	api.Created(w, rec, requestID)
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	rec, err := h.Attendance.CheckOut(r.Context(), user.UserID, h.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrNotCheckedIn):
			api.Fail(w, http.StatusConflict, "not_checked_in", "no check-in recorded for today", requestID)
		case errors.Is(err, attendance.ErrAlreadyCheckedOut):
			api.Fail(w, http.StatusConflict, "already_checked_out", "already checked out for today", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "checkout_failed", "failed to record check-out", requestID)
		}
		return
	}

	h.Mirror.Trigger(mirror.CollectionAttendance)
	api.Success(w, rec, requestID)
}

type markPayload struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (h *Handler) handleMark(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload markPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	day, _ := v.Date("date", payload.Date)
	if !attendance.ValidStatus(payload.Status) {
		v.Add("status", "unknown attendance status")
	}
	if v.Reject(w, requestID) {
		return
	}

	rec, err := h.Attendance.SetStatus(r.Context(), payload.EmployeeID, day.Format(attendance.DateKey), payload.Status)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "mark_failed", "failed to mark attendance", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionAttendance)
	api.Success(w, rec, requestID)
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	h.listRange(w, r, user.UserID, requestID)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	h.listRange(w, r, chi.URLParam(r, "employeeID"), requestID)
}

func (h *Handler) listRange(w http.ResponseWriter, r *http.Request, employeeID, requestID string) {
	now := h.Now().UTC()
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format(attendance.DateKey)
	}
	if to == "" {
		to = now.Format(attendance.DateKey)
	}

	records, err := h.Attendance.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleListToday(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	records, err := h.Attendance.ListForDate(r.Context(), h.Now().UTC().Format(attendance.DateKey))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "attendance_list_failed", "failed to list attendance", requestID)
		return
	}
	api.Success(w, records, requestID)
}
