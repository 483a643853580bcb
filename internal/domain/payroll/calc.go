package payroll

import (
	"math"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

// ComputeSalarySlip builds one employee's slip for a period from their
// salary structure, in-period attendance records and approved leave
// requests. It is a pure function: callers fetch the inputs.
//
// Earning model: working_days = present + 0.5*half + paid/sick leave days,
// earned = gross/total_days * working_days. Deductions stay flat monthly
// amounts regardless of days worked (kept as-is; see DESIGN.md).
func ComputeSalarySlip(emp employee.Employee, period Period, records []attendance.Record, approvedLeaves []leave.Request) (SalarySlip, error) {
	if !period.Valid() {
		return SalarySlip{}, ErrInvalidPeriod
	}
	if emp.Salary.Empty() {
		return SalarySlip{}, ErrNoSalaryStructure
	}

	slip := SalarySlip{
		EmployeeID:   emp.ID,
		EmployeeName: emp.DisplayName(),
		Month:        int(period.Month),
		Year:         period.Year,
		TotalDays:    period.TotalDays(),
		GrossSalary:  emp.Salary.GrossSalary,
	}

	start, end := period.Start(), period.End()
	for _, rec := range records {
		day, err := parseDateKey(rec.Date)
		if err != nil || day.Before(start) || day.After(end) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			slip.PresentDays++
		case attendance.StatusHalfDay:
			slip.HalfDays++
		case attendance.StatusAbsent:
			slip.AbsentDays++
		}
	}

	for _, req := range approvedLeaves {
		if req.Status != leave.StatusApproved || !req.CountsTowardSalary() {
			continue
		}
		slip.LeaveDays += req.OverlapDays(start, end)
	}

	workingDays := float64(slip.PresentDays) + 0.5*float64(slip.HalfDays) + float64(slip.LeaveDays)
	slip.WorkingDays = round1(workingDays)
	slip.PerDaySalary = round2(emp.Salary.GrossSalary / float64(slip.TotalDays))
	slip.EarnedSalary = round2(emp.Salary.GrossSalary / float64(slip.TotalDays) * workingDays)
	slip.Deductions = emp.Salary.PF + emp.Salary.ProfessionalTax + emp.Salary.TDS
	slip.NetEarned = round2(slip.EarnedSalary - slip.Deductions)
	return slip, nil
}

// ComputePayrollReport aggregates slips over a set of employees. A row that
// fails to compute is zeroed instead of aborting the batch, so one employee
// without a salary structure cannot sink the whole report.
func ComputePayrollReport(employees []employee.Employee, period Period, recordsByEmployee map[string][]attendance.Record, leavesByEmployee map[string][]leave.Request) (Report, error) {
	if !period.Valid() {
		return Report{}, ErrInvalidPeriod
	}

	report := Report{
		Month: int(period.Month),
		Year:  period.Year,
		Rows:  make([]ReportRow, 0, len(employees)),
	}
	for _, emp := range employees {
		slip, err := ComputeSalarySlip(emp, period, recordsByEmployee[emp.ID], leavesByEmployee[emp.ID])
		if err != nil {
			slip = zeroedSlip(emp, period)
		}
		report.Rows = append(report.Rows, ReportRow{
			SalarySlip:  slip,
			Department:  emp.Department,
			Designation: emp.Designation,
		})
		report.Summary.EmployeeCount++
		report.Summary.TotalGross += slip.GrossSalary
		report.Summary.TotalEarned += slip.EarnedSalary
		report.Summary.TotalDeductions += slip.Deductions
		report.Summary.TotalNet += slip.NetEarned
	}
	report.Summary.TotalGross = round2(report.Summary.TotalGross)
	report.Summary.TotalEarned = round2(report.Summary.TotalEarned)
	report.Summary.TotalDeductions = round2(report.Summary.TotalDeductions)
	report.Summary.TotalNet = round2(report.Summary.TotalNet)
	return report, nil
}

// zeroedSlip keeps the employee's identity on a row whose figures could not
// be computed. Every money and day field stays zero, gross and deductions
// included, so the row contributes nothing to the summary.
func zeroedSlip(emp employee.Employee, period Period) SalarySlip {
	return SalarySlip{
		EmployeeID:   emp.ID,
		EmployeeName: emp.DisplayName(),
		Month:        int(period.Month),
		Year:         period.Year,
		TotalDays:    period.TotalDays(),
	}
}

// appendZeroedRows adds zeroed rows for employees whose inputs could not be
// fetched, giving them the same treatment as rows that fail to compute.
func appendZeroedRows(report *Report, period Period, failed []employee.Employee) {
	for _, emp := range failed {
		report.Rows = append(report.Rows, ReportRow{
			SalarySlip:  zeroedSlip(emp, period),
			Department:  emp.Department,
			Designation: emp.Designation,
		})
		report.Summary.EmployeeCount++
	}
}

func parseDateKey(value string) (time.Time, error) {
	return time.Parse(attendance.DateKey, value)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
