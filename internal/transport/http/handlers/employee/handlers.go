package employeehandler

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
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Store
	Mirror    *mirror.Engine
}

func NewHandler(employees *employee.Store, mirrorEngine *mirror.Engine) *Handler {
	return &Handler{Employees: employees, Mirror: mirrorEngine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireManager).Post("/", h.handleCreate)
		r.Patch("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	filter := employee.ListFilter{
		CompanyID:  r.URL.Query().Get("companyId"),
		TeamID:     r.URL.Query().Get("teamId"),
		Department: r.URL.Query().Get("department"),
		Role:       r.URL.Query().Get("role"),
	}
	total, err := h.Employees.Count(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to count employees", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	employees, err := h.Employees.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, map[string]any{"total": total, "employees": employees}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if !auth.CanManage(user.Role) && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot view another employee's record", requestID)
		return
	}

	emp, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

type createPayload struct {
	FirstName     string                    `json:"firstName"`
	LastName      string                    `json:"lastName"`
	Email         string                    `json:"email"`
	Password      string                    `json:"password"`
	Role          string                    `json:"role"`
	Phone         string                    `json:"phone"`
	Address       string                    `json:"address"`
	Gender        string                    `json:"gender"`
	Department    string                    `json:"department"`
	Designation   string                    `json:"designation"`
	DateOfJoining string                    `json:"dateOfJoining"`
	Salary        *employee.SalaryStructure `json:"salaryStructure"`
	TeamID        string                    `json:"teamId"`
	CompanyID     string                    `json:"companyId"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("email", payload.Email, "email is required")
	v.Required("password", payload.Password, "password is required")
	v.Enum("role", payload.Role, []string{auth.RoleAdmin, auth.RoleHR, auth.RoleEmployee}, "unknown role")
	var joined *time.Time
	if payload.DateOfJoining != "" {
		parsed, ok := v.Date("dateOfJoining", payload.DateOfJoining)
		if ok {
			joined = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to hash password", requestID)
		return
	}

	emp := employee.Employee{
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Email:         payload.Email,
		PasswordHash:  hash,
		Role:          payload.Role,
		Phone:         payload.Phone,
		Address:       payload.Address,
		Gender:        payload.Gender,
		Department:    payload.Department,
		Designation:   payload.Designation,
		DateOfJoining: joined,
		TeamID:        payload.TeamID,
		CompanyID:     payload.CompanyID,
	}
	if emp.Role == "" {
		emp.Role = auth.RoleEmployee
	}
	if payload.Salary != nil {
		emp.Salary = *payload.Salary
	}

	id, err := h.Employees.Create(r.Context(), emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmailTaken) {
			api.Fail(w, http.StatusConflict, "email_taken", "email already registered", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	manager := auth.CanManage(user.Role)
	if !manager && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot update another employee's record", requestID)
		return
	}

	emp, err := h.Employees.Get(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to load employee", requestID)
		return
	}

	// Role decides the update whitelist: employees get the narrow self
	// struct, Admin/HR the full one. Unknown fields are rejected so a
	// self-update cannot smuggle in salary or role changes.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if manager {
		var update employee.AdminUpdate
		if err := decoder.Decode(&update); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid or disallowed fields in payload", requestID)
			return
		}
		if update.Role != nil && !auth.ValidRole(*update.Role) {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown role", requestID)
			return
		}
		update.Apply(emp)
	} else {
		var update employee.SelfUpdate
		if err := decoder.Decode(&update); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid or disallowed fields in payload", requestID)
			return
		}
		update.Apply(emp)
	}

	if err := h.Employees.Update(r.Context(), employeeID, *emp); err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.Employees.Delete(r.Context(), employeeID); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}

	h.Mirror.Trigger(mirror.CollectionUsers)
	api.Success(w, map[string]string{"id": employeeID}, requestID)
}
