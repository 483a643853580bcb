package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	if days := DaysInclusive(date(2025, 1, 10), date(2025, 1, 10)); days != 1 {
		t.Fatalf("expected 1 day, got %d", days)
	}
	if days := DaysInclusive(date(2025, 1, 10), date(2025, 1, 12)); days != 3 {
		t.Fatalf("expected 3 days, got %d", days)
	}
	if days := DaysInclusive(date(2025, 1, 12), date(2025, 1, 10)); days != 0 {
		t.Fatalf("expected 0 days for inverted range, got %d", days)
	}
}

func TestOverlapDaysClipsBothEnds(t *testing.T) {
	// Leave spans Jan 25 to Feb 5; queried for January.
	req := Request{StartDate: date(2025, 1, 25), EndDate: date(2025, 2, 5)}

	days := req.OverlapDays(date(2025, 1, 1), date(2025, 1, 31))
	if days != 7 {
		t.Fatalf("expected 7 days clipped to January, got %d", days)
	}

	days = req.OverlapDays(date(2025, 2, 1), date(2025, 2, 28))
	if days != 5 {
		t.Fatalf("expected 5 days clipped to February, got %d", days)
	}
}

func TestOverlapDaysOutsidePeriod(t *testing.T) {
	req := Request{StartDate: date(2025, 3, 1), EndDate: date(2025, 3, 4)}

	if days := req.OverlapDays(date(2025, 4, 1), date(2025, 4, 30)); days != 0 {
		t.Fatalf("expected 0 days outside the period, got %d", days)
	}
}

func TestCountsTowardSalary(t *testing.T) {
	if !(Request{LeaveType: TypePaid}).CountsTowardSalary() {
		t.Fatal("Paid leave must count toward salary")
	}
	if !(Request{LeaveType: TypeSick}).CountsTowardSalary() {
		t.Fatal("Sick leave must count toward salary")
	}
	if (Request{LeaveType: TypeUnpaid}).CountsTowardSalary() {
		t.Fatal("Unpaid leave must not count toward salary")
	}
}

func TestCoversDate(t *testing.T) {
	req := Request{StartDate: date(2025, 5, 10), EndDate: date(2025, 5, 12)}

	if !req.CoversDate(date(2025, 5, 10)) || !req.CoversDate(date(2025, 5, 12)) {
		t.Fatal("range endpoints must be covered")
	}
	if req.CoversDate(date(2025, 5, 13)) {
		t.Fatal("day after the range must not be covered")
	}
}
