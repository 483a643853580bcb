package employee

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id,
  employee_number,
  first_name, last_name, email, password_hash, role,
  COALESCE(phone, ''),
  COALESCE(address, ''),
  COALESCE(gender, ''),
  COALESCE(department, ''),
  COALESCE(designation, ''),
  date_of_joining,
  salary_basic, salary_hra, salary_conveyance, salary_medical, salary_special,
  salary_pf, salary_professional_tax, salary_tds, salary_gross, salary_net,
  COALESCE(team_id::text, ''),
  COALESCE(company_id::text, ''),
  created_at, updated_at`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash, &emp.Role,
		&emp.Phone, &emp.Address, &emp.Gender, &emp.Department, &emp.Designation, &emp.DateOfJoining,
		&emp.Salary.Basic, &emp.Salary.HRA, &emp.Salary.Conveyance, &emp.Salary.Medical, &emp.Salary.SpecialAllowance,
		&emp.Salary.PF, &emp.Salary.ProfessionalTax, &emp.Salary.TDS, &emp.Salary.GrossSalary, &emp.Salary.NetSalary,
		&emp.TeamID, &emp.CompanyID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM users WHERE id = $1`, id)
	return scanEmployee(row)
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanEmployee(row)
}

type ListFilter struct {
	CompanyID  string
	TeamID     string
	Department string
	Role       string

	// Limit and Offset bound the page the query returns; zero means
	// unbounded. They never affect Count.
	Limit  int
	Offset int
}

func (f ListFilter) where() (string, []any) {
	clause := ` WHERE 1=1`
	args := []any{}
	if f.CompanyID != "" {
		args = append(args, f.CompanyID)
		clause += ` AND company_id = $` + strconv.Itoa(len(args))
	}
	if f.TeamID != "" {
		args = append(args, f.TeamID)
		clause += ` AND team_id = $` + strconv.Itoa(len(args))
	}
	if f.Department != "" {
		args = append(args, f.Department)
		clause += ` AND department = $` + strconv.Itoa(len(args))
	}
	if f.Role != "" {
		args = append(args, f.Role)
		clause += ` AND role = $` + strconv.Itoa(len(args))
	}
	return clause, args
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Employee, error) {
	clause, args := filter.where()
	query := `SELECT ` + employeeColumns + ` FROM users` + clause + ` ORDER BY last_name, first_name`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	emp.Salary.Recompute()
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (first_name, last_name, email, password_hash, role, phone, address, gender,
      department, designation, date_of_joining,
      salary_basic, salary_hra, salary_conveyance, salary_medical, salary_special,
      salary_pf, salary_professional_tax, salary_tds, salary_gross, salary_net,
      team_id, company_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
    RETURNING id
  `,
		emp.FirstName, emp.LastName, strings.ToLower(emp.Email), emp.PasswordHash, emp.Role,
		emp.Phone, emp.Address, emp.Gender, emp.Department, emp.Designation, emp.DateOfJoining,
		emp.Salary.Basic, emp.Salary.HRA, emp.Salary.Conveyance, emp.Salary.Medical, emp.Salary.SpecialAllowance,
		emp.Salary.PF, emp.Salary.ProfessionalTax, emp.Salary.TDS, emp.Salary.GrossSalary, emp.Salary.NetSalary,
		nullIfEmpty(emp.TeamID), nullIfEmpty(emp.CompanyID),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return id, nil
}

// Update persists the full employee row. Callers mutate a fetched Employee
// through the typed update structs first, so derived salary fields are
// already consistent here.
func (s *Store) Update(ctx context.Context, id string, emp Employee) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE users
    SET first_name = $1,
        last_name = $2,
        phone = $3,
        address = $4,
        gender = $5,
        role = $6,
        department = $7,
        designation = $8,
        date_of_joining = $9,
        salary_basic = $10,
        salary_hra = $11,
        salary_conveyance = $12,
        salary_medical = $13,
        salary_special = $14,
        salary_pf = $15,
        salary_professional_tax = $16,
        salary_tds = $17,
        salary_gross = $18,
        salary_net = $19,
        team_id = $20,
        company_id = $21,
        updated_at = now()
    WHERE id = $22
  `,
		emp.FirstName, emp.LastName, emp.Phone, emp.Address, emp.Gender, emp.Role,
		emp.Department, emp.Designation, emp.DateOfJoining,
		emp.Salary.Basic, emp.Salary.HRA, emp.Salary.Conveyance, emp.Salary.Medical, emp.Salary.SpecialAllowance,
		emp.Salary.PF, emp.Salary.ProfessionalTax, emp.Salary.TDS, emp.Salary.GrossSalary, emp.Salary.NetSalary,
		nullIfEmpty(emp.TeamID), nullIfEmpty(emp.CompanyID), id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context, filter ListFilter) (int, error) {
	clause, args := filter.where()
	var count int
	err := s.DB.QueryRow(ctx, `SELECT COUNT(1) FROM users`+clause, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
