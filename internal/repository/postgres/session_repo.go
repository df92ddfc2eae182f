// internal/repository/postgres/session_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"portfolio-service/internal/domain/admin"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session row. The caller passes the token hash,
// never the raw token.
func (r *SessionRepository) Create(ctx context.Context, s *admin.Session) error {
	query := `
		INSERT INTO admin_sessions (id, admin_id, token_hash, ip_address, user_agent, device_info, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	deviceJSON, err := json.Marshal(s.DeviceInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal device info: %w", err)
	}

	err = r.db.QueryRow(
		ctx, query,
		s.ID, s.AdminID, s.TokenHash, s.IPAddress, s.UserAgent,
		deviceJSON, s.ExpiresAt,
	).Scan(&s.CreatedAt)

	return err
}

// FindByTokenHash finds a non-expired session by token hash.
func (r *SessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*admin.Session, error) {
	query := `
		SELECT id, admin_id, token_hash, ip_address, user_agent, device_info, created_at, expires_at
		FROM admin_sessions
		WHERE token_hash = $1 AND expires_at > NOW()
	`

	var s admin.Session
	var deviceJSON []byte

	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&s.ID, &s.AdminID, &s.TokenHash, &s.IPAddress, &s.UserAgent,
		&deviceJSON, &s.CreatedAt, &s.ExpiresAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if len(deviceJSON) > 0 {
		if err := json.Unmarshal(deviceJSON, &s.DeviceInfo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal device info: %w", err)
		}
	}

	return &s, nil
}

// ListByAdmin returns the admin's sessions, newest first. A missing
// sessions table degrades to an empty listing instead of an error.
func (r *SessionRepository) ListByAdmin(ctx context.Context, adminID int64) ([]admin.Session, error) {
	query := `
		SELECT id, admin_id, token_hash, ip_address, user_agent, device_info, created_at, expires_at
		FROM admin_sessions
		WHERE admin_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, adminID)
	if err != nil {
		if isUndefinedTable(err) {
			return []admin.Session{}, nil
		}
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []admin.Session{}
	for rows.Next() {
		var s admin.Session
		var deviceJSON []byte

		if err := rows.Scan(
			&s.ID, &s.AdminID, &s.TokenHash, &s.IPAddress, &s.UserAgent,
			&deviceJSON, &s.CreatedAt, &s.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		if len(deviceJSON) > 0 {
			if err := json.Unmarshal(deviceJSON, &s.DeviceInfo); err != nil {
				return nil, fmt.Errorf("failed to unmarshal device info: %w", err)
			}
		}

		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// DeleteByID removes one session, scoped to its owner so an admin cannot
// revoke another admin's session.
func (r *SessionRepository) DeleteByID(ctx context.Context, id uuid.UUID, adminID int64) error {
	query := `DELETE FROM admin_sessions WHERE id = $1 AND admin_id = $2`

	tag, err := r.db.Exec(ctx, query, id, adminID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// DeleteAllExcept removes every session of the admin except the one whose
// token hash is given ("log out other devices").
func (r *SessionRepository) DeleteAllExcept(ctx context.Context, adminID int64, tokenHash string) error {
	query := `DELETE FROM admin_sessions WHERE admin_id = $1 AND token_hash <> $2`
	_, err := r.db.Exec(ctx, query, adminID, tokenHash)
	return err
}

// DeleteAll removes every session of the admin.
func (r *SessionRepository) DeleteAll(ctx context.Context, adminID int64) error {
	query := `DELETE FROM admin_sessions WHERE admin_id = $1`
	_, err := r.db.Exec(ctx, query, adminID)
	return err
}
