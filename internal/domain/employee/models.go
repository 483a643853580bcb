package employee

import "time"

type Employee struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	PasswordHash  string          `json:"-"`
	Role          string          `json:"role"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Gender        string          `json:"gender"`
	Department    string          `json:"department"`
	Designation   string          `json:"designation"`
	DateOfJoining *time.Time      `json:"dateOfJoining,omitempty"`
	Salary        SalaryStructure `json:"salaryStructure"`
	TeamID        string          `json:"teamId,omitempty"`
	CompanyID     string          `json:"companyId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (e Employee) DisplayName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type SalaryStructure struct {
	Basic            float64 `json:"basic"`
	HRA              float64 `json:"hra"`
	Conveyance       float64 `json:"conveyance"`
	Medical          float64 `json:"medical"`
	SpecialAllowance float64 `json:"specialAllowance"`
	PF               float64 `json:"pf"`
	ProfessionalTax  float64 `json:"professionalTax"`
	TDS              float64 `json:"tds"`
	GrossSalary      float64 `json:"grossSalary"`
	NetSalary        float64 `json:"netSalary"`
}

// Recompute rederives the gross and net figures from the component fields.
// Gross and net are never written directly; every salary mutation goes
// through here so stored values cannot drift from the components.
func (s *SalaryStructure) Recompute() {
	s.GrossSalary = s.Basic + s.HRA + s.Conveyance + s.Medical + s.SpecialAllowance
	s.NetSalary = s.GrossSalary - s.PF - s.ProfessionalTax - s.TDS
}

func (s SalaryStructure) Empty() bool {
	return s.Basic == 0 && s.HRA == 0 && s.Conveyance == 0 && s.Medical == 0 &&
		s.SpecialAllowance == 0 && s.PF == 0 && s.ProfessionalTax == 0 && s.TDS == 0
}
