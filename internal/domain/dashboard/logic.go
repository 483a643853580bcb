package dashboard

import (
	"math"
	"sort"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

const DefaultTrendWindowDays = 30

// ComputeSnapshot builds the dashboard counters from pre-fetched inputs.
// attendanceMonth covers the 1st of today's month through today.
func ComputeSnapshot(today time.Time, employees []employee.Employee, attendanceToday, attendanceMonth []attendance.Record, leaves []leave.Request) Stats {
	stats := Stats{
		TotalEmployees: len(employees),
		ByDepartment:   map[string]int{},
		ByGender:       map[string]int{},
		ByLeaveType:    map[string]int{},
	}

	for _, rec := range attendanceToday {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentToday++
		case attendance.StatusAbsent:
			stats.AbsentToday++
		case attendance.StatusHalfDay:
			stats.HalfDayToday++
		case attendance.StatusLeave:
			stats.OnLeaveToday++
		}
	}

	monthPresent := 0
	for _, rec := range attendanceMonth {
		if rec.Status == attendance.StatusPresent {
			monthPresent++
		}
	}
	stats.AttendanceRate = AttendanceRate(len(employees), today.Day(), monthPresent)

	for _, emp := range employees {
		if emp.Department != "" {
			stats.ByDepartment[emp.Department]++
		}
		if emp.Gender != "" {
			stats.ByGender[emp.Gender]++
		}
	}
	for _, req := range leaves {
		stats.ByLeaveType[req.LeaveType]++
		if req.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}
	return stats
}

// AttendanceRate is the month-to-date present rate as a percentage with one
// decimal. Zero when there is nothing to divide by.
func AttendanceRate(totalEmployees, daysPassed, actualAttendance int) float64 {
	possible := totalEmployees * daysPassed
	if possible == 0 {
		return 0
	}
	rate := float64(actualAttendance) / float64(possible) * 100
	return math.Round(rate*10) / 10
}

// CompositeDailyStatus resolves one employee's status for a day. An
// attendance record wins over an approved leave covering the same day;
// with neither, the day reads as Absent.
func CompositeDailyStatus(day time.Time, rec *attendance.Record, approvedLeaves []leave.Request) string {
	if rec != nil {
		return rec.Status
	}
	for _, req := range approvedLeaves {
		if req.Status == leave.StatusApproved && req.CoversDate(day) {
			return attendance.StatusLeave
		}
	}
	return attendance.StatusAbsent
}

// ComputeTrends buckets attendance records by (date, status) over the
// trailing window ending at today, ascending by date. windowDays <= 0 falls
// back to the default 30-day window.
func ComputeTrends(today time.Time, records []attendance.Record, windowDays int) []TrendPoint {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	cutoff := today.AddDate(0, 0, -(windowDays - 1)).Format(attendance.DateKey)
	todayKey := today.Format(attendance.DateKey)

	type bucket struct {
		date   string
		status string
	}
	counts := map[bucket]int{}
	for _, rec := range records {
		if rec.Date < cutoff || rec.Date > todayKey {
			continue
		}
		counts[bucket{rec.Date, rec.Status}]++
	}

	out := make([]TrendPoint, 0, len(counts))
	for b, count := range counts {
		out = append(out, TrendPoint{Date: b.date, Status: b.status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].Status < out[j].Status
		}
		return out[i].Date < out[j].Date
	})
	return out
}
