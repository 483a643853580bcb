package payroll

import (
	"testing"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

func testEmployee() employee.Employee {
	emp := employee.Employee{
		ID:        "emp-1",
		FirstName: "Asha",
		LastName:  "Verma",
		Salary: employee.SalaryStructure{
			Basic:            18600,
			HRA:              7440,
			Conveyance:       1600,
			Medical:          1250,
			SpecialAllowance: 2110,
			PF:               1800,
			ProfessionalTax:  200,
			TDS:              1000,
		},
	}
	emp.Salary.Recompute()
	return emp
}

func presentDays(employeeID string, year int, month time.Month, days ...int) []attendance.Record {
	var out []attendance.Record
	for _, d := range days {
		out = append(out, attendance.Record{
			EmployeeID: employeeID,
			Date:       time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(attendance.DateKey),
			Status:     attendance.StatusPresent,
		})
	}
	return out
}

func TestComputeSalarySlipZeroActivity(t *testing.T) {
	slip, err := ComputeSalarySlip(testEmployee(), Period{Month: time.April, Year: 2025}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if slip.WorkingDays != 0 {
		t.Fatalf("expected 0 working days, got %v", slip.WorkingDays)
	}
	if slip.EarnedSalary != 0 {
		t.Fatalf("expected 0 earned salary, got %v", slip.EarnedSalary)
	}
	if slip.TotalDays != 30 {
		t.Fatalf("expected 30 total days in April, got %d", slip.TotalDays)
	}
}

func TestComputeSalarySlipWorkingDayArithmetic(t *testing.T) {
	emp := testEmployee()
	period := Period{Month: time.March, Year: 2025}

	records := presentDays(emp.ID, 2025, time.March, 3, 4, 5, 6, 7, 10, 11, 12, 13, 14, 17, 18, 19, 20, 21, 24, 25, 26)
	records = append(records,
		attendance.Record{EmployeeID: emp.ID, Date: "2025-03-27", Status: attendance.StatusHalfDay},
		attendance.Record{EmployeeID: emp.ID, Date: "2025-03-28", Status: attendance.StatusHalfDay},
	)
	leaves := []leave.Request{{
		EmployeeID: emp.ID,
		LeaveType:  leave.TypePaid,
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2025, 3, 29, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}}

	slip, err := ComputeSalarySlip(emp, period, records, leaves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if slip.PresentDays != 18 || slip.HalfDays != 2 || slip.LeaveDays != 3 {
		t.Fatalf("expected 18 present / 2 half / 3 leave, got %d / %d / %d",
			slip.PresentDays, slip.HalfDays, slip.LeaveDays)
	}
	if slip.WorkingDays != 22.0 {
		t.Fatalf("expected 22.0 working days, got %v", slip.WorkingDays)
	}

	// gross 31000 over 31 days is 1000/day; 22 working days earns 22000.
	if slip.PerDaySalary != 1000 {
		t.Fatalf("expected per-day salary 1000, got %v", slip.PerDaySalary)
	}
	if slip.EarnedSalary != 22000 {
		t.Fatalf("expected earned 22000, got %v", slip.EarnedSalary)
	}
	if slip.Deductions != 3000 {
		t.Fatalf("expected flat deductions 3000, got %v", slip.Deductions)
	}
	if slip.NetEarned != 19000 {
		t.Fatalf("expected net 19000, got %v", slip.NetEarned)
	}
}

func TestComputeSalarySlipUnpaidLeaveExcluded(t *testing.T) {
	emp := testEmployee()
	period := Period{Month: time.June, Year: 2025}
	leaves := []leave.Request{{
		EmployeeID: emp.ID,
		LeaveType:  leave.TypeUnpaid,
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}}

	slip, err := ComputeSalarySlip(emp, period, nil, leaves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slip.LeaveDays != 0 {
		t.Fatalf("expected unpaid leave to contribute 0 days, got %d", slip.LeaveDays)
	}
	if slip.WorkingDays != 0 {
		t.Fatalf("expected 0 working days, got %v", slip.WorkingDays)
	}
}

func TestComputeSalarySlipClipsCrossMonthLeave(t *testing.T) {
	emp := testEmployee()
	// Jan 25 to Feb 5, queried for January: 25..31 = 7 days.
	leaves := []leave.Request{{
		EmployeeID: emp.ID,
		LeaveType:  leave.TypePaid,
		Status:     leave.StatusApproved,
		StartDate:  time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
	}}

	slip, err := ComputeSalarySlip(emp, Period{Month: time.January, Year: 2025}, nil, leaves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slip.LeaveDays != 7 {
		t.Fatalf("expected 7 leave days clipped to January, got %d", slip.LeaveDays)
	}
}

func TestComputeSalarySlipIgnoresOutOfPeriodAttendance(t *testing.T) {
	emp := testEmployee()
	records := presentDays(emp.ID, 2025, time.February, 3, 4)
	records = append(records, presentDays(emp.ID, 2025, time.March, 3)...)

	slip, err := ComputeSalarySlip(emp, Period{Month: time.February, Year: 2025}, records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slip.PresentDays != 2 {
		t.Fatalf("expected 2 present days in February, got %d", slip.PresentDays)
	}
}

func TestComputeSalarySlipPendingLeaveIgnored(t *testing.T) {
	emp := testEmployee()
	leaves := []leave.Request{{
		EmployeeID: emp.ID,
		LeaveType:  leave.TypePaid,
		Status:     leave.StatusPending,
		StartDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
	}}

	slip, err := ComputeSalarySlip(emp, Period{Month: time.July, Year: 2025}, nil, leaves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slip.LeaveDays != 0 {
		t.Fatalf("expected pending leave to contribute 0 days, got %d", slip.LeaveDays)
	}
}

func TestComputeSalarySlipNoSalaryStructure(t *testing.T) {
	emp := employee.Employee{ID: "emp-2", FirstName: "No", LastName: "Salary"}

	_, err := ComputeSalarySlip(emp, Period{Month: time.May, Year: 2025}, nil, nil)
	if err != ErrNoSalaryStructure {
		t.Fatalf("expected ErrNoSalaryStructure, got %v", err)
	}
}

func TestComputeSalarySlipInvalidPeriod(t *testing.T) {
	_, err := ComputeSalarySlip(testEmployee(), Period{Month: 0, Year: 2025}, nil, nil)
	if err != ErrInvalidPeriod {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestComputePayrollReportZeroesFailedRows(t *testing.T) {
	good := testEmployee()
	bad := employee.Employee{ID: "emp-bad", FirstName: "Missing", LastName: "Structure", Department: "Sales"}
	period := Period{Month: time.March, Year: 2025}

	records := map[string][]attendance.Record{
		good.ID: presentDays(good.ID, 2025, time.March, 3, 4, 5),
	}

	report, err := ComputePayrollReport([]employee.Employee{good, bad}, period, records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Summary.EmployeeCount != 2 {
		t.Fatalf("expected 2 rows, got %d", report.Summary.EmployeeCount)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 report rows, got %d", len(report.Rows))
	}

	badRow := report.Rows[1]
	if badRow.EarnedSalary != 0 || badRow.Deductions != 0 || badRow.WorkingDays != 0 {
		t.Fatalf("expected failed row zeroed, got %+v", badRow)
	}
	if badRow.EmployeeName != "Missing Structure" || badRow.Department != "Sales" {
		t.Fatalf("expected identity preserved on zeroed row, got %+v", badRow)
	}

	// Summary sums only the good row: 3 present days at 1000/day.
	if report.Summary.TotalEarned != 3000 {
		t.Fatalf("expected total earned 3000, got %v", report.Summary.TotalEarned)
	}
	if report.Summary.TotalGross != 31000 {
		t.Fatalf("expected total gross 31000, got %v", report.Summary.TotalGross)
	}
	if report.Summary.TotalDeductions != 3000 {
		t.Fatalf("expected total deductions 3000, got %v", report.Summary.TotalDeductions)
	}
	if report.Summary.TotalNet != 0 {
		t.Fatalf("expected total net 0 (3000 earned - 3000 deductions), got %v", report.Summary.TotalNet)
	}
}

func TestReportZeroesRowsWithUnfetchableInputs(t *testing.T) {
	good := testEmployee()
	unreachable := testEmployee()
	unreachable.ID = "emp-2"
	unreachable.FirstName = "Ravi"
	unreachable.Department = "Sales"
	period := Period{Month: time.March, Year: 2025}

	records := map[string][]attendance.Record{
		good.ID: presentDays(good.ID, 2025, time.March, 3, 4, 5),
	}
	report, err := ComputePayrollReport([]employee.Employee{good}, period, records, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	appendZeroedRows(&report, period, []employee.Employee{unreachable})

	if report.Summary.EmployeeCount != 2 || len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d (%d in summary)", len(report.Rows), report.Summary.EmployeeCount)
	}

	// An employee with a full salary structure must not surface as a
	// zero-activity slip: that would carry full gross and flat deductions
	// into the summary and leave the row with a negative net.
	row := report.Rows[1]
	if row.GrossSalary != 0 || row.Deductions != 0 || row.NetEarned != 0 || row.EarnedSalary != 0 {
		t.Fatalf("expected zeroed figures on unreachable row, got %+v", row)
	}
	if row.EmployeeName != "Ravi Verma" || row.Department != "Sales" {
		t.Fatalf("expected identity preserved on zeroed row, got %+v", row)
	}

	if report.Summary.TotalGross != 31000 {
		t.Fatalf("expected summary gross from reachable row only, got %v", report.Summary.TotalGross)
	}
	if report.Summary.TotalDeductions != 3000 {
		t.Fatalf("expected summary deductions from reachable row only, got %v", report.Summary.TotalDeductions)
	}
	if report.Summary.TotalNet != 0 {
		t.Fatalf("expected total net 0, got %v", report.Summary.TotalNet)
	}
}
