package shared

import (
	"testing"
	"time"
)

func TestValidatorCollectsIssues(t *testing.T) {
	v := NewValidator()
	v.Required("name", "", "name is required")
	v.Enum("role", "Boss", []string{"Admin", "Employee"}, "unknown role")
	if _, ok := v.Date("date", "not-a-date"); ok {
		t.Fatal("expected date parse failure")
	}

	issues := v.Issues()
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}
}

func TestValidatorDateOrder(t *testing.T) {
	v := NewValidator()
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	v.DateOrder("startDate", start, "endDate", end)
	if len(v.Issues()) == 0 {
		t.Fatal("expected an issue for end before start")
	}
}

func TestParseDateFormats(t *testing.T) {
	if _, err := ParseDate("2025-03-01"); err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if _, err := ParseDate("2025-03-01T09:00:00Z"); err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if _, err := ParseDate("01/03/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
