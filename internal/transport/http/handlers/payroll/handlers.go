package payrollhandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Payroll *payroll.Service
	Now     func() time.Time
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Payroll: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/slip/{employeeID}", h.handleSlip)
		r.Get("/slip/{employeeID}/pdf", h.handleSlipPDF)
		r.With(middleware.RequireManager).Get("/report", h.handleReport)
	})
}

// period reads month/year from the query string, defaulting to the
// current month.
func (h *Handler) period(r *http.Request) (payroll.Period, bool) {
	now := h.Now().UTC()
	p := payroll.Period{Month: now.Month(), Year: now.Year()}
	if raw := r.URL.Query().Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, false
		}
		p.Month = time.Month(v)
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return p, false
		}
		p.Year = v
	}
	return p, p.Valid()
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, requestID string) (string, bool) {
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")
	if !auth.CanManage(user.Role) && user.UserID != employeeID {
		api.Fail(w, http.StatusForbidden, "forbidden", "cannot view another employee's salary slip", requestID)
		return "", false
	}
	return employeeID, true
}

func (h *Handler) handleSlip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employeeID, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}
	period, ok := h.period(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be 1-12 and year positive", requestID)
		return
	}

	slip, err := h.Payroll.SalarySlip(r.Context(), employeeID, period)
	if err != nil {
		h.failSlip(w, err, requestID)
		return
	}
	api.Success(w, slip, requestID)
}

func (h *Handler) handleSlipPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employeeID, ok := h.authorize(w, r, requestID)
	if !ok {
		return
	}
	period, ok := h.period(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be 1-12 and year positive", requestID)
		return
	}

	path, err := h.Payroll.GeneratePayslipPDF(r.Context(), employeeID, period)
	if err != nil {
		h.failSlip(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	period, ok := h.period(r)
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be 1-12 and year positive", requestID)
		return
	}

	filter := employee.ListFilter{
		CompanyID:  r.URL.Query().Get("companyId"),
		TeamID:     r.URL.Query().Get("teamId"),
		Department: r.URL.Query().Get("department"),
	}
	report, err := h.Payroll.Report(r.Context(), filter, period)
	if err != nil {
		if errors.Is(err, payroll.ErrInvalidPeriod) {
			api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be 1-12 and year positive", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to compute payroll report", requestID)
		return
	}
	api.Success(w, report, requestID)
}

func (h *Handler) failSlip(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, payroll.ErrNoSalaryStructure):
		api.Fail(w, http.StatusConflict, "no_salary_structure", "employee has no salary structure", requestID)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "month must be 1-12 and year positive", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "slip_failed", "failed to compute salary slip", requestID)
	}
}
