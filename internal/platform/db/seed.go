package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/company"
	"hrms/internal/domain/employee"
	"hrms/internal/platform/config"
)

// Seed ensures a company and an admin login exist so a fresh database is
// usable. It is idempotent and skips silently when the admin credentials
// are not configured.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	companyID, err := ensureCompany(ctx, pool, cfg.SeedCompanyName)
	if err != nil {
		return err
	}

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		slog.Info("seed admin credentials not set, skipping admin seed")
		return nil
	}

	employees := employee.NewStore(pool)
	if _, err := employees.GetByEmail(ctx, cfg.SeedAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, employee.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	_, err = employees.Create(ctx, employee.Employee{
		FirstName:    "System",
		LastName:     "Admin",
		Email:        cfg.SeedAdminEmail,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		CompanyID:    companyID,
	})
	if err != nil {
		return err
	}
	slog.Info("seeded admin user", "email", cfg.SeedAdminEmail)
	return nil
}

func ensureCompany(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `SELECT id FROM companies WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	created, err := company.NewStore(pool).Create(ctx, company.Company{Name: name})
	if err != nil {
		return "", err
	}
	slog.Info("seeded company", "name", name, "code", created.Code)
	return created.ID, nil
}
