package employee

import "testing"

func TestSalaryRecompute(t *testing.T) {
	s := SalaryStructure{
		Basic:            30000,
		HRA:              12000,
		Conveyance:       1600,
		Medical:          1250,
		SpecialAllowance: 5150,
		PF:               1800,
		ProfessionalTax:  200,
		TDS:              2500,
	}
	s.Recompute()

	if s.GrossSalary != 50000 {
		t.Fatalf("expected gross 50000, got %v", s.GrossSalary)
	}
	if s.NetSalary != 45500 {
		t.Fatalf("expected net 45500, got %v", s.NetSalary)
	}
}

func TestSalaryRecomputeIdempotent(t *testing.T) {
	s := SalaryStructure{Basic: 20000, HRA: 8000, PF: 1200, TDS: 900}
	s.Recompute()
	gross, net := s.GrossSalary, s.NetSalary

	s.Recompute()
	if s.GrossSalary != gross || s.NetSalary != net {
		t.Fatalf("recompute not idempotent: gross %v -> %v, net %v -> %v", gross, s.GrossSalary, net, s.NetSalary)
	}
}

func TestSalaryRecomputeOverwritesStale(t *testing.T) {
	s := SalaryStructure{Basic: 10000, GrossSalary: 99999, NetSalary: 99999}
	s.Recompute()

	if s.GrossSalary != 10000 {
		t.Fatalf("expected stale gross replaced with 10000, got %v", s.GrossSalary)
	}
	if s.NetSalary != 10000 {
		t.Fatalf("expected stale net replaced with 10000, got %v", s.NetSalary)
	}
}

func TestAdminUpdateRecomputesSalary(t *testing.T) {
	emp := Employee{Salary: SalaryStructure{Basic: 10000, HRA: 4000}}
	emp.Salary.Recompute()

	basic := 15000.0
	update := AdminUpdate{Salary: &SalaryPatch{Basic: &basic}}
	update.Apply(&emp)

	if emp.Salary.Basic != 15000 {
		t.Fatalf("expected basic 15000, got %v", emp.Salary.Basic)
	}
	if emp.Salary.GrossSalary != 19000 {
		t.Fatalf("expected gross 19000, got %v", emp.Salary.GrossSalary)
	}
}

func TestSelfUpdateCannotTouchSalaryOrRole(t *testing.T) {
	emp := Employee{Role: "Employee", Salary: SalaryStructure{Basic: 10000}}
	emp.Salary.Recompute()

	phone := "555-0101"
	SelfUpdate{Phone: &phone}.Apply(&emp)

	if emp.Phone != "555-0101" {
		t.Fatalf("expected phone applied, got %q", emp.Phone)
	}
	if emp.Role != "Employee" || emp.Salary.Basic != 10000 {
		t.Fatal("self update must not change role or salary")
	}
}
