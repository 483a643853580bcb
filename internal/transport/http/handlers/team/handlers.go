package teamhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/team"
	"hrms/internal/mirror"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Teams  *team.Store
	Mirror *mirror.Engine
}

func NewHandler(teams *team.Store, mirrorEngine *mirror.Engine) *Handler {
	return &Handler{Teams: teams, Mirror: mirrorEngine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/teams", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{teamID}", h.handleGet)
		r.With(middleware.RequireManager).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Post("/{teamID}/approve", h.handleApprove)
		r.With(middleware.RequireAdmin).Post("/{teamID}/reject", h.handleReject)
		r.With(middleware.RequireManager).Post("/{teamID}/members", h.handleAddMember)
		r.With(middleware.RequireManager).Delete("/{teamID}/members/{userID}", h.handleRemoveMember)
	})
}

type createPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LeaderID    string `json:"leaderId"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "team name is required")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Teams.Create(r.Context(), team.Team{
		Name:        payload.Name,
		Description: payload.Description,
		LeaderID:    payload.LeaderID,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "team_create_failed", "failed to create team", requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.Teams.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "team_list_failed", "failed to list teams", requestID)
		return
	}
	api.Success(w, teams, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	t, err := h.Teams.Get(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		if errors.Is(err, team.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "team not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "team_get_failed", "failed to load team", requestID)
		return
	}
	api.Success(w, t, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, team.StatusApproved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, team.StatusRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status string) {
	requestID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamID")

	if err := h.Teams.Decide(r.Context(), teamID, status); err != nil {
		switch {
		case errors.Is(err, team.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "team not found", requestID)
		case errors.Is(err, team.ErrAlreadyDecided):
			api.Fail(w, http.StatusConflict, "already_decided", "team approval already decided", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "team_decision_failed", "failed to decide team approval", requestID)
		}
		return
	}
	api.Success(w, map[string]string{"id": teamID, "status": status}, requestID)
}

type memberPayload struct {
	UserID   string `json:"userId"`
	TeamRole string `json:"teamRole"`
}

func (h *Handler) handleAddMember(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamID")

	var payload memberPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("userId", payload.UserID, "user id is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Teams.AddMember(r.Context(), teamID, payload.UserID, payload.TeamRole); err != nil {
		switch {
		case errors.Is(err, team.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "team not found", requestID)
		case errors.Is(err, team.ErrNotApproved):
			api.Fail(w, http.StatusConflict, "team_not_approved", "cannot assign members to an unapproved team", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "member_add_failed", "failed to add team member", requestID)
		}
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Success(w, map[string]string{"teamId": teamID, "userId": payload.UserID}, requestID)
}

func (h *Handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	teamID := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	if err := h.Teams.RemoveMember(r.Context(), teamID, userID); err != nil {
		if errors.Is(err, team.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "team membership not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "member_remove_failed", "failed to remove team member", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Success(w, map[string]string{"teamId": teamID, "userId": userID}, requestID)
}
