package leave

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

const requestColumns = `
  id, employee_id, leave_type, start_date, end_date,
  COALESCE(reason, ''), status, COALESCE(admin_remarks, ''), created_at, updated_at`

func scanRequest(row pgx.Row) (*Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType, &req.StartDate, &req.EndDate,
		&req.Reason, &req.Status, &req.AdminRemarks, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (s *Store) Create(ctx context.Context, req Request) (string, error) {
	if req.EndDate.Before(req.StartDate) {
		return "", ErrInvalidRange
	}
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id
  `, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.Reason, StatusPending).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Request, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE id = $1`, id)
	return scanRequest(row)
}

// Decide moves a Pending request to Approved or Rejected, exactly once. The
// status guard in the WHERE clause makes the transition atomic; a second
// decision finds no Pending row.
func (s *Store) Decide(ctx context.Context, id, status, remarks string) (*Request, error) {
	if status != StatusApproved && status != StatusRejected {
		return nil, errors.New("invalid decision status: " + status)
	}
	row := s.DB.QueryRow(ctx, `
    UPDATE leave_requests
    SET status = $1, admin_remarks = $2, updated_at = now()
    WHERE id = $3 AND status = $4
    RETURNING `+requestColumns+`
  `, status, remarks, id, StatusPending)
	req, err := scanRequest(row)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrAlreadyDecided
	}
	return req, nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1
    ORDER BY start_date DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (s *Store) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE status = $1
    ORDER BY created_at DESC
  `, status)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

// ListApprovedOverlapping returns an employee's Approved requests whose date
// range touches [from, to].
func (s *Store) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+requestColumns+`
    FROM leave_requests
    WHERE employee_id = $1 AND status = $2 AND start_date <= $3 AND end_date >= $4
    ORDER BY start_date
  `, employeeID, StatusApproved, to, from)
	if err != nil {
		return nil, err
	}
	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]Request, error) {
	defer rows.Close()
	var out []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}
