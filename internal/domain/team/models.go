package team

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	LeaderID    string    `json:"leaderId,omitempty"`
	Status      string    `json:"status"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Member pairs an employee with their role inside the team. Position keeps
// the list ordered as members were added.
type Member struct {
	UserID   string `json:"userId"`
	TeamRole string `json:"teamRole"`
	Position int    `json:"-"`
}
