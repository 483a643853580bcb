package attendance

import (
	"testing"
	"time"
)

func TestWorkedHours(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	hours := WorkedHours(&in, &out)
	if hours != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", hours)
	}
}

func TestWorkedHoursRounding(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 20*time.Minute)

	hours := WorkedHours(&in, &out)
	if hours != 7.33 {
		t.Fatalf("expected 7.33 hours, got %v", hours)
	}
}

func TestWorkedHoursZeroBeforeCheckout(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if hours := WorkedHours(&in, nil); hours != 0 {
		t.Fatalf("expected 0 hours before checkout, got %v", hours)
	}
	if hours := WorkedHours(nil, nil); hours != 0 {
		t.Fatalf("expected 0 hours without checkin, got %v", hours)
	}
}

func TestStatusForHours(t *testing.T) {
	if status := StatusForHours(8); status != StatusPresent {
		t.Fatalf("expected Present for 8h, got %s", status)
	}
	if status := StatusForHours(3.5); status != StatusHalfDay {
		t.Fatalf("expected Half-day for 3.5h, got %s", status)
	}
	if status := StatusForHours(4); status != StatusPresent {
		t.Fatalf("expected Present at the 4h boundary, got %s", status)
	}
}
