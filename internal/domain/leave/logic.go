package leave

import "time"

// DaysInclusive returns the day count between start and end, counting both
// endpoints. Returns 0 when end is before start.
func DaysInclusive(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// OverlapDays clips the request to [periodStart, periodEnd] on both ends and
// returns the inclusive day count of the clipped range. A request entirely
// outside the period contributes 0.
func (r Request) OverlapDays(periodStart, periodEnd time.Time) int {
	start := r.StartDate
	if periodStart.After(start) {
		start = periodStart
	}
	end := r.EndDate
	if periodEnd.Before(end) {
		end = periodEnd
	}
	return DaysInclusive(start, end)
}

// CountsTowardSalary reports whether the leave type earns salary. Unpaid
// leave is treated as absence in payroll.
func (r Request) CountsTowardSalary() bool {
	return r.LeaveType == TypePaid || r.LeaveType == TypeSick
}

// CoversDate reports whether the request's range includes the given day.
func (r Request) CoversDate(day time.Time) bool {
	day = truncateDay(day)
	return !day.Before(truncateDay(r.StartDate)) && !day.After(truncateDay(r.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
