package dashboard

import (
	"context"
	"time"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
)

type Service struct {
	Employees  *employee.Store
	Attendance *attendance.Store
	Leaves     *leave.Store
}

func NewService(employees *employee.Store, att *attendance.Store, leaves *leave.Store) *Service {
	return &Service{Employees: employees, Attendance: att, Leaves: leaves}
}

func (s *Service) Snapshot(ctx context.Context, today time.Time) (Stats, error) {
	employees, err := s.Employees.List(ctx, employee.ListFilter{})
	if err != nil {
		return Stats{}, err
	}
	todayKey := today.Format(attendance.DateKey)
	attendanceToday, err := s.Attendance.ListForDate(ctx, todayKey)
	if err != nil {
		return Stats{}, err
	}
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).Format(attendance.DateKey)
	attendanceMonth, err := s.Attendance.ListRange(ctx, monthStart, todayKey)
	if err != nil {
		return Stats{}, err
	}
	leaves, err := s.Leaves.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeSnapshot(today, employees, attendanceToday, attendanceMonth, leaves), nil
}

func (s *Service) Trends(ctx context.Context, today time.Time, windowDays int) ([]TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	from := today.AddDate(0, 0, -(windowDays - 1)).Format(attendance.DateKey)
	records, err := s.Attendance.ListRange(ctx, from, today.Format(attendance.DateKey))
	if err != nil {
		return nil, err
	}
	return ComputeTrends(today, records, windowDays), nil
}

// DailyStatuses resolves the composite per-employee status for one day.
func (s *Service) DailyStatuses(ctx context.Context, day time.Time) ([]DailyStatus, error) {
	employees, err := s.Employees.List(ctx, employee.ListFilter{})
	if err != nil {
		return nil, err
	}
	dayKey := day.Format(attendance.DateKey)
	records, err := s.Attendance.ListForDate(ctx, dayKey)
	if err != nil {
		return nil, err
	}
	byEmployee := make(map[string]*attendance.Record, len(records))
	for i := range records {
		byEmployee[records[i].EmployeeID] = &records[i]
	}

	out := make([]DailyStatus, 0, len(employees))
	for _, emp := range employees {
		leaves, err := s.Leaves.ListApprovedOverlapping(ctx, emp.ID, day, day)
		if err != nil {
			return nil, err
		}
		out = append(out, DailyStatus{
			EmployeeID:   emp.ID,
			EmployeeName: emp.DisplayName(),
			Date:         dayKey,
			Status:       CompositeDailyStatus(day, byEmployee[emp.ID], leaves),
		})
	}
	return out, nil
}
