package auth

const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR Officer"
	RoleEmployee = "Employee"
)

type UserContext struct {
	UserID     string
	EmployeeID string
	Role       string
}

// CanManage reports whether the role may decide leave requests, approve
// teams and edit other employees' records.
func CanManage(role string) bool {
	return role == RoleAdmin || role == RoleHR
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
