package dashboard

import (
	"testing"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

func TestAttendanceRate(t *testing.T) {
	// 10 employees over 5 days with 40 present records is 80%.
	if rate := AttendanceRate(10, 5, 40); rate != 80.0 {
		t.Fatalf("expected 80.0, got %v", rate)
	}
}

func TestAttendanceRateZeroDenominator(t *testing.T) {
	if rate := AttendanceRate(0, 5, 0); rate != 0 {
		t.Fatalf("expected 0 with no employees, got %v", rate)
	}
	if rate := AttendanceRate(10, 0, 0); rate != 0 {
		t.Fatalf("expected 0 with no elapsed days, got %v", rate)
	}
}

func TestAttendanceRateRounding(t *testing.T) {
	// 1/3 of possible days: 33.333... rounds to 33.3.
	if rate := AttendanceRate(3, 1, 1); rate != 33.3 {
		t.Fatalf("expected 33.3, got %v", rate)
	}
}

func TestCompositeDailyStatusAttendanceWins(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	rec := &attendance.Record{Status: attendance.StatusPresent, Date: "2025-06-10"}
	leaves := []leave.Request{{
		LeaveType: leave.TypePaid,
		Status:    leave.StatusApproved,
		StartDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
	}}

	if status := CompositeDailyStatus(day, rec, leaves); status != attendance.StatusPresent {
		t.Fatalf("expected attendance record to win, got %s", status)
	}
}

func TestCompositeDailyStatusLeaveFallback(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	leaves := []leave.Request{{
		LeaveType: leave.TypeSick,
		Status:    leave.StatusApproved,
		StartDate: day,
		EndDate:   day,
	}}

	if status := CompositeDailyStatus(day, nil, leaves); status != attendance.StatusLeave {
		t.Fatalf("expected Leave from approved request, got %s", status)
	}
}

func TestCompositeDailyStatusDefaultsAbsent(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	if status := CompositeDailyStatus(day, nil, nil); status != attendance.StatusAbsent {
		t.Fatalf("expected Absent default, got %s", status)
	}
}

func TestComputeSnapshot(t *testing.T) {
	today := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	employees := make([]employee.Employee, 10)
	for i := range employees {
		employees[i].Department = "Engineering"
		employees[i].Gender = "Female"
	}

	attendanceToday := []attendance.Record{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusHalfDay},
		{Status: attendance.StatusLeave},
		{Status: attendance.StatusAbsent},
	}
	var attendanceMonth []attendance.Record
	for i := 0; i < 40; i++ {
		attendanceMonth = append(attendanceMonth, attendance.Record{Status: attendance.StatusPresent})
	}
	leaves := []leave.Request{
		{LeaveType: leave.TypePaid, Status: leave.StatusPending},
		{LeaveType: leave.TypeSick, Status: leave.StatusApproved},
		{LeaveType: leave.TypeSick, Status: leave.StatusRejected},
	}

	stats := ComputeSnapshot(today, employees, attendanceToday, attendanceMonth, leaves)

	if stats.PresentToday != 2 || stats.HalfDayToday != 1 || stats.OnLeaveToday != 1 || stats.AbsentToday != 1 {
		t.Fatalf("unexpected today counts: %+v", stats)
	}
	if stats.AttendanceRate != 80.0 {
		t.Fatalf("expected month-to-date rate 80.0, got %v", stats.AttendanceRate)
	}
	if stats.ByDepartment["Engineering"] != 10 {
		t.Fatalf("expected department count 10, got %d", stats.ByDepartment["Engineering"])
	}
	if stats.ByLeaveType[leave.TypeSick] != 2 {
		t.Fatalf("expected 2 sick leave requests, got %d", stats.ByLeaveType[leave.TypeSick])
	}
	if stats.PendingLeaves != 1 {
		t.Fatalf("expected 1 pending leave, got %d", stats.PendingLeaves)
	}
}

func TestComputeTrends(t *testing.T) {
	today := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{Date: "2025-06-29", Status: attendance.StatusPresent},
		{Date: "2025-06-29", Status: attendance.StatusPresent},
		{Date: "2025-06-29", Status: attendance.StatusAbsent},
		{Date: "2025-06-30", Status: attendance.StatusPresent},
		{Date: "2025-05-01", Status: attendance.StatusPresent}, // outside window
	}

	points := ComputeTrends(today, records, 30)
	if len(points) != 3 {
		t.Fatalf("expected 3 buckets, got %d: %+v", len(points), points)
	}
	if points[0].Date != "2025-06-29" || points[0].Status != attendance.StatusAbsent || points[0].Count != 1 {
		t.Fatalf("unexpected first bucket: %+v", points[0])
	}
	if points[1].Status != attendance.StatusPresent || points[1].Count != 2 {
		t.Fatalf("unexpected second bucket: %+v", points[1])
	}
	if points[2].Date != "2025-06-30" || points[2].Count != 1 {
		t.Fatalf("unexpected third bucket: %+v", points[2])
	}
}

func TestComputeTrendsDefaultWindow(t *testing.T) {
	today := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		{Date: "2025-06-01", Status: attendance.StatusPresent}, // day 30 of a 30-day window
		{Date: "2025-05-31", Status: attendance.StatusPresent}, // day 31, outside
	}

	points := ComputeTrends(today, records, 0)
	if len(points) != 1 || points[0].Date != "2025-06-01" {
		t.Fatalf("expected only the in-window record, got %+v", points)
	}
}
