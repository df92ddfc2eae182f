// internal/repository/postgres/settings_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-service/internal/domain/settings"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsColumns = `
	id, site_name, site_description, logo, favicon, primary_color, secondary_color,
	accent_color, default_theme, enable_blog, enable_testimonials, maintenance_mode,
	created_at, updated_at
`

func scanSettings(row pgx.Row) (*settings.Settings, error) {
	var s settings.Settings
	err := row.Scan(
		&s.ID, &s.SiteName, &s.SiteDescription, &s.Logo, &s.Favicon,
		&s.PrimaryColor, &s.SecondaryColor, &s.AccentColor, &s.DefaultTheme,
		&s.EnableBlog, &s.EnableTestimonials, &s.MaintenanceMode,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	return &s, nil
}

// Get returns the singleton settings row.
func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings ORDER BY id LIMIT 1`
	return scanSettings(r.db.QueryRow(ctx, query))
}

// CreateDefault inserts the settings row with column defaults. Used on first
// read when the table is empty.
func (r *SettingsRepository) CreateDefault(ctx context.Context) (*settings.Settings, error) {
	query := `INSERT INTO settings DEFAULT VALUES RETURNING ` + settingsColumns
	return scanSettings(r.db.QueryRow(ctx, query))
}

// Update applies the set fields of the partial update to the singleton row.
func (r *SettingsRepository) Update(ctx context.Context, id int64, req *settings.UpdateRequest) error {
	sets := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.SiteName != nil {
		add("site_name", *req.SiteName)
	}
	if req.SiteDescription != nil {
		add("site_description", *req.SiteDescription)
	}
	if req.Logo != nil {
		add("logo", *req.Logo)
	}
	if req.Favicon != nil {
		add("favicon", *req.Favicon)
	}
	if req.PrimaryColor != nil {
		add("primary_color", *req.PrimaryColor)
	}
	if req.SecondaryColor != nil {
		add("secondary_color", *req.SecondaryColor)
	}
	if req.AccentColor != nil {
		add("accent_color", *req.AccentColor)
	}
	if req.DefaultTheme != nil {
		add("default_theme", *req.DefaultTheme)
	}
	if req.EnableBlog != nil {
		add("enable_blog", *req.EnableBlog)
	}
	if req.EnableTestimonials != nil {
		add("enable_testimonials", *req.EnableTestimonials)
	}
	if req.MaintenanceMode != nil {
		add("maintenance_mode", *req.MaintenanceMode)
	}

	if len(sets) == 0 {
		return nil
	}

	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE settings SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}
