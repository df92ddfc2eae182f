// internal/repository/postgres/profile_repo.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-service/internal/domain/profile"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, name, full_name, title, tagline, bio, about, email, phone, address,
	profile_image, resume_url, socials, created_at, updated_at
`

func (r *ProfileRepository) scanProfile(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	var socialsJSON []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.FullName, &p.Title, &p.Tagline, &p.Bio, &p.About,
		&p.Email, &p.Phone, &p.Address, &p.ProfileImage, &p.ResumeURL,
		&socialsJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if len(socialsJSON) > 0 {
		if err := json.Unmarshal(socialsJSON, &p.Socials); err != nil {
			return nil, fmt.Errorf("failed to unmarshal socials: %w", err)
		}
	}

	return &p, nil
}

// Get returns the singleton profile row.
func (r *ProfileRepository) Get(ctx context.Context) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY id LIMIT 1`
	return r.scanProfile(r.db.QueryRow(ctx, query))
}

// CreateDefault inserts an empty profile row, used to bootstrap the
// singleton on first update.
func (r *ProfileRepository) CreateDefault(ctx context.Context) (*profile.Profile, error) {
	query := `
		INSERT INTO profiles (name) VALUES ('')
		RETURNING ` + profileColumns
	return r.scanProfile(r.db.QueryRow(ctx, query))
}

// Update applies the set fields of the partial update to the profile row.
func (r *ProfileRepository) Update(ctx context.Context, id int64, req *profile.UpdateRequest) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.FullName != nil {
		add("full_name", *req.FullName)
	}
	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Tagline != nil {
		add("tagline", *req.Tagline)
	}
	if req.Bio != nil {
		add("bio", *req.Bio)
	}
	if req.About != nil {
		add("about", *req.About)
	}
	if req.Email != nil {
		add("email", *req.Email)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}
	if req.ProfileImage != nil {
		add("profile_image", *req.ProfileImage)
	}
	if req.ResumeURL != nil {
		add("resume_url", *req.ResumeURL)
	}
	if req.Socials != nil {
		socialsJSON, err := json.Marshal(*req.Socials)
		if err != nil {
			return fmt.Errorf("failed to marshal socials: %w", err)
		}
		add("socials", socialsJSON)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE profiles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
