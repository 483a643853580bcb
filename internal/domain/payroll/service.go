package payroll

import (
	"context"
	"log/slog"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

// Service fetches computation inputs from the record stores and runs the
// pure calculators over them.
type Service struct {
	Employees  *employee.Store
	Attendance *attendance.Store
	Leaves     *leave.Store
	PayslipDir string
}

func NewService(employees *employee.Store, att *attendance.Store, leaves *leave.Store, payslipDir string) *Service {
	return &Service{Employees: employees, Attendance: att, Leaves: leaves, PayslipDir: payslipDir}
}

func (s *Service) SalarySlip(ctx context.Context, employeeID string, period Period) (SalarySlip, error) {
	if !period.Valid() {
		return SalarySlip{}, ErrInvalidPeriod
	}
	emp, err := s.Employees.Get(ctx, employeeID)
	if err != nil {
		return SalarySlip{}, err
	}
	records, leaves, err := s.periodInputs(ctx, employeeID, period)
	if err != nil {
		return SalarySlip{}, err
	}
	return ComputeSalarySlip(*emp, period, records, leaves)
}

func (s *Service) Report(ctx context.Context, filter employee.ListFilter, period Period) (Report, error) {
	if !period.Valid() {
		return Report{}, ErrInvalidPeriod
	}
	employees, err := s.Employees.List(ctx, filter)
	if err != nil {
		return Report{}, err
	}

	// Employees whose inputs cannot be fetched get the same zeroed rows as
	// rows that fail to compute; the batch keeps going either way.
	included := make([]employee.Employee, 0, len(employees))
	var failed []employee.Employee
	recordsByEmployee := make(map[string][]attendance.Record, len(employees))
	leavesByEmployee := make(map[string][]leave.Request, len(employees))
	for _, emp := range employees {
		records, leaves, err := s.periodInputs(ctx, emp.ID, period)
		if err != nil {
			slog.Warn("payroll report input fetch failed", "employeeId", emp.ID, "err", err)
			failed = append(failed, emp)
			continue
		}
		included = append(included, emp)
		recordsByEmployee[emp.ID] = records
		leavesByEmployee[emp.ID] = leaves
	}

	report, err := ComputePayrollReport(included, period, recordsByEmployee, leavesByEmployee)
	if err != nil {
		return Report{}, err
	}
	appendZeroedRows(&report, period, failed)
	return report, nil
}

func (s *Service) periodInputs(ctx context.Context, employeeID string, period Period) ([]attendance.Record, []leave.Request, error) {
	from := period.Start().Format(attendance.DateKey)
	to := period.End().Format(attendance.DateKey)
	records, err := s.Attendance.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, nil, err
	}
	leaves, err := s.Leaves.ListApprovedOverlapping(ctx, employeeID, period.Start(), period.End())
	if err != nil {
		return nil, nil, err
	}
	return records, leaves, nil
}
