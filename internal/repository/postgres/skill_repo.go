// internal/repository/postgres/skill_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-service/internal/domain/skill"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SkillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

const skillColumns = `
	id, name, category, proficiency, icon, sort_order, is_visible, created_at, updated_at
`

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(
		&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon,
		&s.Order, &s.IsVisible, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan skill: %w", err)
	}
	return &s, nil
}

func (r *SkillRepository) list(ctx context.Context, query string, args ...interface{}) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := []skill.Skill{}
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon,
			&s.Order, &s.IsVisible, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

// ListVisible returns visible skills in display order (public listing).
func (r *SkillRepository) ListVisible(ctx context.Context) ([]skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE is_visible = TRUE ORDER BY sort_order`
	return r.list(ctx, query)
}

// ListAll returns every skill including hidden ones (admin listing).
func (r *SkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY sort_order`
	return r.list(ctx, query)
}

// FindByID retrieves a single skill.
func (r *SkillRepository) FindByID(ctx context.Context, id int64) (*skill.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new skill.
func (r *SkillRepository) Create(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (name, category, proficiency, icon, sort_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx, query,
		s.Name, s.Category, s.Proficiency, s.Icon, s.Order, s.IsVisible,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update applies the set fields of the partial update.
func (r *SkillRepository) Update(ctx context.Context, id int64, req *skill.UpdateRequest) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Proficiency != nil {
		add("proficiency", *req.Proficiency)
	}
	if req.Icon != nil {
		add("icon", *req.Icon)
	}
	if req.Order != nil {
		add("sort_order", *req.Order)
	}
	if req.IsVisible != nil {
		add("is_visible", *req.IsVisible)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE skills SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes a skill.
func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
