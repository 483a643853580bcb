package payroll

import "time"

// Period scopes payroll and attendance queries to a calendar month.
type Period struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) TotalDays() int {
	return p.End().Day()
}

func (p Period) Valid() bool {
	return p.Month >= time.January && p.Month <= time.December && p.Year >= 1900 && p.Year <= 9999
}

type SalarySlip struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	TotalDays    int     `json:"totalDays"`
	PresentDays  int     `json:"presentDays"`
	HalfDays     int     `json:"halfDays"`
	AbsentDays   int     `json:"absentDays"`
	LeaveDays    int     `json:"leaveDays"`
	WorkingDays  float64 `json:"workingDays"`
	GrossSalary  float64 `json:"grossSalary"`
	PerDaySalary float64 `json:"perDaySalary"`
	EarnedSalary float64 `json:"earnedSalary"`
	Deductions   float64 `json:"deductions"`
	NetEarned    float64 `json:"netEarned"`
}

type ReportRow struct {
	SalarySlip
	Department  string `json:"department"`
	Designation string `json:"designation"`
}

type ReportSummary struct {
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalEarned     float64 `json:"totalEarned"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}

type Report struct {
	Month   int           `json:"month"`
	Year    int           `json:"year"`
	Summary ReportSummary `json:"summary"`
	Rows    []ReportRow   `json:"rows"`
}
