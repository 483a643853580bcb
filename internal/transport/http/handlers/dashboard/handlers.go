package dashboardhandler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/dashboard"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Dashboard *dashboard.Service
	Now       func() time.Time
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Dashboard: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireManager)
		r.Get("/stats", h.handleStats)
		r.Get("/trends", h.handleTrends)
		r.Get("/daily", h.handleDaily)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	stats, err := h.Dashboard.Snapshot(r.Context(), h.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to compute dashboard stats", requestID)
		return
	}
	api.Success(w, stats, requestID)
}

func (h *Handler) handleTrends(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	window := dashboard.DefaultTrendWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			api.Fail(w, http.StatusBadRequest, "invalid_window", "days must be a positive integer", requestID)
			return
		}
		window = v
	}

	trends, err := h.Dashboard.Trends(r.Context(), h.Now().UTC(), window)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to compute attendance trends", requestID)
		return
	}
	api.Success(w, trends, requestID)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	day := h.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", requestID)
			return
		}
		day = parsed
	}

	statuses, err := h.Dashboard.DailyStatuses(r.Context(), day)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to compute daily statuses", requestID)
		return
	}
	api.Success(w, statuses, requestID)
}
