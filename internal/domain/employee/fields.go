package employee

import "time"

// SelfUpdate is the whitelist of fields an employee may change on their own
// record. The payload decoder rejects anything outside it.
type SelfUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Gender    *string `json:"gender"`
}

// AdminUpdate is the whitelist for Admin and HR Officer edits.
type AdminUpdate struct {
	FirstName     *string      `json:"firstName"`
	LastName      *string      `json:"lastName"`
	Phone         *string      `json:"phone"`
	Address       *string      `json:"address"`
	Gender        *string      `json:"gender"`
	Role          *string      `json:"role"`
	Department    *string      `json:"department"`
	Designation   *string      `json:"designation"`
	DateOfJoining *time.Time   `json:"dateOfJoining"`
	TeamID        *string      `json:"teamId"`
	CompanyID     *string      `json:"companyId"`
	Salary        *SalaryPatch `json:"salaryStructure"`
}

// SalaryPatch carries partial salary component changes. Derived fields are
// not accepted from callers; Apply recomputes them.
type SalaryPatch struct {
	Basic            *float64 `json:"basic"`
	HRA              *float64 `json:"hra"`
	Conveyance       *float64 `json:"conveyance"`
	Medical          *float64 `json:"medical"`
	SpecialAllowance *float64 `json:"specialAllowance"`
	PF               *float64 `json:"pf"`
	ProfessionalTax  *float64 `json:"professionalTax"`
	TDS              *float64 `json:"tds"`
}

func (u SelfUpdate) Apply(e *Employee) {
	setString(&e.FirstName, u.FirstName)
	setString(&e.LastName, u.LastName)
	setString(&e.Phone, u.Phone)
	setString(&e.Address, u.Address)
	setString(&e.Gender, u.Gender)
}

func (u AdminUpdate) Apply(e *Employee) {
	setString(&e.FirstName, u.FirstName)
	setString(&e.LastName, u.LastName)
	setString(&e.Phone, u.Phone)
	setString(&e.Address, u.Address)
	setString(&e.Gender, u.Gender)
	setString(&e.Role, u.Role)
	setString(&e.Department, u.Department)
	setString(&e.Designation, u.Designation)
	setString(&e.TeamID, u.TeamID)
	setString(&e.CompanyID, u.CompanyID)
	if u.DateOfJoining != nil {
		joined := *u.DateOfJoining
		e.DateOfJoining = &joined
	}
	if u.Salary != nil {
		u.Salary.apply(&e.Salary)
		e.Salary.Recompute()
	}
}

func (p SalaryPatch) apply(s *SalaryStructure) {
	setFloat(&s.Basic, p.Basic)
	setFloat(&s.HRA, p.HRA)
	setFloat(&s.Conveyance, p.Conveyance)
	setFloat(&s.Medical, p.Medical)
	setFloat(&s.SpecialAllowance, p.SpecialAllowance)
	setFloat(&s.PF, p.PF)
	setFloat(&s.ProfessionalTax, p.ProfessionalTax)
	setFloat(&s.TDS, p.TDS)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
