package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `
  id, employee_id, date, check_in, check_out, status, total_hours, created_at, updated_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// CheckIn creates the day's record. The unique (employee_id, date) index is
// what enforces one record per employee per day; a conflict means the
// employee already checked in.
func (s *Store) CheckIn(ctx context.Context, employeeID string, at time.Time) (*Record, error) {
	date := at.Format(DateKey)
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, check_in, status)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (employee_id, date) DO NOTHING
    RETURNING `+recordColumns+`
  `, employeeID, date, at, StatusPresent)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return rec, nil
}

func (s *Store) CheckOut(ctx context.Context, employeeID string, at time.Time) (*Record, error) {
	date := at.Format(DateKey)
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM attendance
    WHERE employee_id = $1 AND date = $2
  `, employeeID, date)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}
	if rec.CheckIn == nil {
		return nil, ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return nil, ErrAlreadyCheckedOut
	}

	hours := WorkedHours(rec.CheckIn, &at)
	status := StatusForHours(hours)
	row = s.DB.QueryRow(ctx, `
    UPDATE attendance
    SET check_out = $1, total_hours = $2, status = $3, updated_at = now()
    WHERE id = $4
    RETURNING `+recordColumns+`
  `, at, hours, status, rec.ID)
	return scanRecord(row)
}

// SetStatus records an attendance status without timestamps, for Admin/HR
// marking of Absent or Leave days.
func (s *Store) SetStatus(ctx context.Context, employeeID, date, status string) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, date, status)
    VALUES ($1, $2, $3)
    ON CONFLICT (employee_id, date)
    DO UPDATE SET status = EXCLUDED.status, updated_at = now()
    RETURNING `+recordColumns+`
  `, employeeID, date, status)
	return scanRecord(row)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID, fromDate, toDate string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM attendance
    WHERE employee_id = $1 AND date >= $2 AND date <= $3
    ORDER BY date
  `, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (s *Store) ListForDate(ctx context.Context, date string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM attendance
    WHERE date = $1
    ORDER BY employee_id
  `, date)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (s *Store) ListRange(ctx context.Context, fromDate, toDate string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM attendance
    WHERE date >= $1 AND date <= $2
    ORDER BY date, employee_id
  `, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	defer rows.Close()
	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}
