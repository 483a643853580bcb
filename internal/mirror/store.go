package mirror

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Reader supplies full-collection projections for a sync pass. The engine
// never patches incrementally, so reads are always whole-collection.
type Reader interface {
	UserRows(ctx context.Context) ([]UserRow, error)
	AttendanceRows(ctx context.Context) ([]AttendanceRow, error)
	LeaveRows(ctx context.Context) ([]LeaveRow, error)
}

type PGReader struct {
	DB *pgxpool.Pool
}

func NewPGReader(db *pgxpool.Pool) *PGReader {
	return &PGReader{DB: db}
}

func (r *PGReader) UserRows(ctx context.Context) ([]UserRow, error) {
	rows, err := r.DB.Query(ctx, `
    SELECT id::text, employee_number,
           first_name || ' ' || last_name,
           email, role,
           COALESCE(department, ''),
           COALESCE(designation, ''),
           COALESCE(team_id::text, ''),
           COALESCE(company_id::text, ''),
           salary_gross, salary_net, created_at
    FROM users
    ORDER BY employee_number
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserRow, 0)
	for rows.Next() {
		var row UserRow
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.Name, &row.Email, &row.Role,
			&row.Department, &row.Designation, &row.TeamID, &row.CompanyID,
			&row.GrossSalary, &row.NetSalary, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PGReader) AttendanceRows(ctx context.Context) ([]AttendanceRow, error) {
	rows, err := r.DB.Query(ctx, `
    SELECT a.id::text, a.employee_id::text,
           u.first_name || ' ' || u.last_name,
           a.date, a.check_in, a.check_out, a.status, a.total_hours
    FROM attendance a
    JOIN users u ON a.employee_id = u.id
    ORDER BY a.date, a.employee_id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttendanceRow, 0)
	for rows.Next() {
		var row AttendanceRow
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.EmployeeName, &row.Date,
			&row.CheckIn, &row.CheckOut, &row.Status, &row.TotalHours,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *PGReader) LeaveRows(ctx context.Context) ([]LeaveRow, error) {
	rows, err := r.DB.Query(ctx, `
    SELECT l.id::text, l.employee_id::text,
           u.first_name || ' ' || u.last_name,
           l.leave_type, l.start_date, l.end_date, l.status,
           COALESCE(l.admin_remarks, ''), l.created_at
    FROM leave_requests l
    JOIN users u ON l.employee_id = u.id
    ORDER BY l.created_at, l.id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaveRow, 0)
	for rows.Next() {
		var row LeaveRow
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.EmployeeName, &row.LeaveType,
			&row.StartDate, &row.EndDate, &row.Status, &row.AdminRemarks, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
