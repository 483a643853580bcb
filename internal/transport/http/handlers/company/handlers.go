package companyhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/company"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Companies *company.Store
}

func NewHandler(companies *company.Store) *Handler {
	return &Handler{Companies: companies}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/companies", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/{companyID}", h.handleGet)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.With(middleware.RequireAdmin).Put("/{companyID}", h.handleUpdate)
		r.With(middleware.RequireAdmin).Delete("/{companyID}", h.handleDelete)
	})
}

type companyPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload companyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "company name is required")
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Companies.Create(r.Context(), company.Company{
		Name:    payload.Name,
		Address: payload.Address,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_create_failed", "failed to create company", requestID)
		return
	}
	api.Created(w, created, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	companies, err := h.Companies.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_list_failed", "failed to list companies", requestID)
		return
	}
	api.Success(w, companies, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	c, err := h.Companies.Get(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_get_failed", "failed to load company", requestID)
		return
	}
	api.Success(w, c, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	companyID := chi.URLParam(r, "companyID")

	var payload companyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "company name is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Companies.Update(r.Context(), companyID, payload.Name, payload.Address); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_update_failed", "failed to update company", requestID)
		return
	}
	api.Success(w, map[string]string{"id": companyID}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	companyID := chi.URLParam(r, "companyID")

	if err := h.Companies.Delete(r.Context(), companyID); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_delete_failed", "failed to delete company", requestID)
		return
	}
	api.Success(w, map[string]string{"id": companyID}, requestID)
}
