// internal/repository/postgres/project_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-service/internal/domain/project"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, title, description, long_description, image, images, technologies,
	category, live_url, github_url, featured, sort_order, is_visible, views,
	completed_date, created_at, updated_at
`

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image,
		pq.Array(&p.Images), pq.Array(&p.Technologies),
		&p.Category, &p.LiveURL, &p.GithubURL, &p.Featured, &p.Order,
		&p.IsVisible, &p.Views, &p.CompletedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) list(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Image,
			pq.Array(&p.Images), pq.Array(&p.Technologies),
			&p.Category, &p.LiveURL, &p.GithubURL, &p.Featured, &p.Order,
			&p.IsVisible, &p.Views, &p.CompletedDate, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// ListVisible returns visible projects, featured first, then display order.
func (r *ProjectRepository) ListVisible(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE is_visible = TRUE ORDER BY featured DESC, sort_order`
	return r.list(ctx, query)
}

// ListAll returns every project including hidden ones (admin listing).
func (r *ProjectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY featured DESC, sort_order`
	return r.list(ctx, query)
}

// FindByID retrieves a single project.
func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id))
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (
			title, description, long_description, image, images, technologies,
			category, live_url, github_url, featured, sort_order, is_visible, completed_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, views, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx, query,
		p.Title, p.Description, p.LongDescription, p.Image,
		pq.Array(p.Images), pq.Array(p.Technologies),
		p.Category, p.LiveURL, p.GithubURL, p.Featured, p.Order, p.IsVisible, p.CompletedDate,
	).Scan(&p.ID, &p.Views, &p.CreatedAt, &p.UpdatedAt)
}

// Update applies the set fields of the partial update.
func (r *ProjectRepository) Update(ctx context.Context, id int64, req *project.UpdateRequest) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.LongDescription != nil {
		add("long_description", *req.LongDescription)
	}
	if req.Image != nil {
		add("image", *req.Image)
	}
	if req.Images != nil {
		add("images", pq.Array(*req.Images))
	}
	if req.Technologies != nil {
		add("technologies", pq.Array(*req.Technologies))
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.LiveURL != nil {
		add("live_url", *req.LiveURL)
	}
	if req.GithubURL != nil {
		add("github_url", *req.GithubURL)
	}
	if req.Featured != nil {
		add("featured", *req.Featured)
	}
	if req.Order != nil {
		add("sort_order", *req.Order)
	}
	if req.IsVisible != nil {
		add("is_visible", *req.IsVisible)
	}
	if req.CompletedDate != nil {
		add("completed_date", *req.CompletedDate)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a project detail read.
func (r *ProjectRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE projects SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment project views: %w", err)
	}
	return nil
}

// Delete removes a project.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
