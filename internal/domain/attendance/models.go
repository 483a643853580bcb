package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half-day"
	StatusLeave   = "Leave"
)

// DateKey is the calendar-day format attendance is keyed by.
const DateKey = "2006-01-02"

type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Status     string     `json:"status"`
	TotalHours float64    `json:"totalHours"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}
