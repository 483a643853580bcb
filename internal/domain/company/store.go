package company

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("company not found")

// Collision-resolution attempts before giving up on code generation.
const maxCodeAttempts = 50

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Create inserts the company with a unique short code derived from its name.
// On a code collision it retries with numeric suffixes.
func (s *Store) Create(ctx context.Context, c Company) (*Company, error) {
	base := BaseCode(c.Name)
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := CodeCandidate(base, attempt)
		row := s.DB.QueryRow(ctx, `
      INSERT INTO companies (name, code, address)
      VALUES ($1, $2, $3)
      RETURNING id, name, code, COALESCE(address, ''), created_at, updated_at
    `, c.Name, code, c.Address)
		created, err := scanCompany(row)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				continue
			}
			return nil, err
		}
		return created, nil
	}
	return nil, errors.New("could not allocate a unique company code")
}

func (s *Store) Get(ctx context.Context, id string) (*Company, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, code, COALESCE(address, ''), created_at, updated_at
    FROM companies
    WHERE id = $1
  `, id)
	return scanCompany(row)
}

func (s *Store) List(ctx context.Context) ([]Company, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, code, COALESCE(address, ''), created_at, updated_at
    FROM companies
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, id, name, address string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE companies
    SET name = $1, address = $2, updated_at = now()
    WHERE id = $3
  `, name, address, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
