package leave

import "time"

const (
	TypePaid   = "Paid"
	TypeSick   = "Sick"
	TypeUnpaid = "Unpaid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Request struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	LeaveType    string    `json:"leaveType"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	AdminRemarks string    `json:"adminRemarks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ValidType(leaveType string) bool {
	switch leaveType {
	case TypePaid, TypeSick, TypeUnpaid:
		return true
	}
	return false
}
