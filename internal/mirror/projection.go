package mirror

import "time"

// Mirror rows are read-only projections of the canonical entities: ids are
// plain strings, relations are denormalized down to the employee id and
// display name, timestamps marshal as ISO-8601. They exist only to be
// serialized; nothing reads them back into the domain.

type UserRow struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	TeamID       string    `json:"teamId,omitempty"`
	CompanyID    string    `json:"companyId,omitempty"`
	GrossSalary  float64   `json:"grossSalary"`
	NetSalary    float64   `json:"netSalary"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AttendanceRow struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"checkIn,omitempty"`
	CheckOut     *time.Time `json:"checkOut,omitempty"`
	Status       string     `json:"status"`
	TotalHours   float64    `json:"totalHours"`
}

type LeaveRow struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	LeaveType    string    `json:"leaveType"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
	AdminRemarks string    `json:"adminRemarks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
