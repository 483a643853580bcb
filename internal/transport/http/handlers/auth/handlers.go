package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/mirror"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Employees *employee.Store
	Mirror    *mirror.Engine
	Secret    string
	TokenTTL  time.Duration
}

func NewHandler(employees *employee.Store, mirrorEngine *mirror.Engine, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Employees: employees, Mirror: mirrorEngine, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
	r.With(middleware.RequireAuth).Get("/auth/me", h.HandleMe)
}

type registerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// HandleRegister bootstraps the first admin account. Once any user exists
// the endpoint closes; further accounts come from the employee handlers.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.FirstName == "" || payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "firstName, email and password are required", requestID)
		return
	}

	count, err := h.Employees.Count(r.Context(), employee.ListFilter{})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to check registration state", requestID)
		return
	}
	if count > 0 {
		api.Fail(w, http.StatusForbidden, "registration_closed", "an account already exists", requestID)
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to hash password", requestID)
		return
	}

	id, err := h.Employees.Create(r.Context(), employee.Employee{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "register_failed", "failed to create admin account", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Created(w, map[string]string{"id": id}, requestID)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string            `json:"token"`
	Employee employee.Employee `json:"employee"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password are required", requestID)
		return
	}

	emp, err := h.Employees.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to look up user", requestID)
		return
	}
	if err := auth.CheckPassword(emp.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:     emp.ID,
		EmployeeID: emp.EmployeeID,
		Role:       emp.Role,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, loginResponse{Token: token, Employee: *emp}, requestID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	emp, err := h.Employees.Get(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "profile_failed", "failed to load profile", requestID)
		return
	}
	api.Success(w, emp, requestID)
}
