package team

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, t Team) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO teams (name, description, leader_id, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, t.Name, t.Description, nullIfEmpty(t.LeaderID), StatusPending).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Team, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, ''), COALESCE(leader_id::text, ''), status, created_at, updated_at
    FROM teams
    WHERE id = $1
  `, id)
	t, err := scanTeam(row)
	if err != nil {
		return nil, err
	}
	members, err := s.listMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Members = members
	return t, nil
}

func (s *Store) List(ctx context.Context) ([]Team, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), COALESCE(leader_id::text, ''), status, created_at, updated_at
    FROM teams
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		members, err := s.listMembers(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Members = members
	}
	return out, nil
}

// Decide moves a Pending team to Approved or Rejected, exactly once.
func (s *Store) Decide(ctx context.Context, id, status string) error {
	if status != StatusApproved && status != StatusRejected {
		return errors.New("invalid decision status: " + status)
	}
	cmd, err := s.DB.Exec(ctx, `
    UPDATE teams
    SET status = $1, updated_at = now()
    WHERE id = $2 AND status = $3
  `, status, id, StatusPending)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrAlreadyDecided
	}
	return nil
}

// AddMember appends an employee to an Approved team and points the
// employee's team reference at it, in one transaction.
func (s *Store) AddMember(ctx context.Context, teamID, userID, teamRole string) error {
	var status string
	err := s.DB.QueryRow(ctx, `SELECT status FROM teams WHERE id = $1`, teamID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if status != StatusApproved {
		return ErrNotApproved
	}

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO team_members (team_id, user_id, team_role, position)
    VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), 0) + 1 FROM team_members WHERE team_id = $1))
    ON CONFLICT (team_id, user_id) DO UPDATE SET team_role = EXCLUDED.team_role
  `, teamID, userID, teamRole); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET team_id = $1, updated_at = now() WHERE id = $2`, teamID, userID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) RemoveMember(ctx context.Context, teamID, userID string) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET team_id = NULL, updated_at = now() WHERE id = $1 AND team_id = $2`, userID, teamID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) listMembers(ctx context.Context, teamID string) ([]Member, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT user_id, team_role, position
    FROM team_members
    WHERE team_id = $1
    ORDER BY position
  `, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.TeamRole, &m.Position); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanTeam(row pgx.Row) (*Team, error) {
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.LeaderID, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
