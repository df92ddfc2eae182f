// internal/repository/postgres/admin_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio-service/internal/domain/admin"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = `
	id, email, password, name, role, login_attempts, lock_until,
	last_login, token_version, created_at, updated_at
`

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	var a admin.Admin
	err := row.Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role,
		&a.LoginAttempts, &a.LockUntil, &a.LastLogin, &a.TokenVersion,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan admin: %w", err)
	}
	return &a, nil
}

// FindByEmail retrieves an admin by email, case-insensitively.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE LOWER(email) = LOWER($1)`
	return scanAdmin(r.db.QueryRow(ctx, query, email))
}

// FindByID retrieves an admin by ID.
func (r *AdminRepository) FindByID(ctx context.Context, id int64) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return scanAdmin(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new admin row. A duplicate email surfaces as ErrConflict.
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (email, password, name, role, token_version)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, a.Email, a.PasswordHash, a.Name, a.Role, a.TokenVersion).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if isUniqueViolation(err) {
		return xerrors.ErrConflict
	}
	return err
}

// ExistsByEmail checks if an admin with the email exists.
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1))`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

// RecordLoginSuccess resets the failure counters and stamps last_login.
func (r *AdminRepository) RecordLoginSuccess(ctx context.Context, id int64) error {
	query := `
		UPDATE admins
		SET login_attempts = 0, lock_until = NULL, last_login = $1, updated_at = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, time.Now(), id)
	return err
}

// RecordLoginFailure persists the lockout policy's failure transition:
// the new attempt count and, when the threshold was hit, the lock window.
func (r *AdminRepository) RecordLoginFailure(ctx context.Context, id int64, attempts int, lockUntil *time.Time) error {
	query := `
		UPDATE admins
		SET login_attempts = $1, lock_until = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, attempts, lockUntil, time.Now(), id)
	return err
}

// UpdatePassword replaces the password hash and advances the token
// revocation epoch so previously issued tokens go stale.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE admins
		SET password = $1, token_version = token_version + 1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	return err
}

// ResetPassword replaces the hash, clears the lockout state and advances
// the revocation epoch. Used by the secret-code recovery path.
func (r *AdminRepository) ResetPassword(ctx context.Context, id int64, passwordHash string) error {
	query := `
		UPDATE admins
		SET password = $1, login_attempts = 0, lock_until = NULL,
		    token_version = token_version + 1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	return err
}
