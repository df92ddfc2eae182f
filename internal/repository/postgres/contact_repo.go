// internal/repository/postgres/contact_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"portfolio-service/internal/domain/contact"
	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

const contactColumns = `
	id, name, email, phone, subject, message, is_read, replied_at, created_at, updated_at
`

func scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
		&c.IsRead, &c.RepliedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return &c, nil
}

// Create stores a submitted contact message.
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at, updated_at
	`
	return r.db.QueryRow(
		ctx, query,
		c.Name, c.Email, c.Phone, c.Subject, c.Message,
	).Scan(&c.ID, &c.IsRead, &c.CreatedAt, &c.UpdatedAt)
}

// List returns all messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []contact.Contact{}
	for rows.Next() {
		var c contact.Contact
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message,
			&c.IsRead, &c.RepliedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// FindByID retrieves a single message.
func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	return scanContact(r.db.QueryRow(ctx, query, id))
}

// MarkRead flags a message as read.
func (r *ContactRepository) MarkRead(ctx context.Context, id int64) error {
	query := `UPDATE contacts SET is_read = TRUE, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark contact read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// Delete removes a message.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// CountUnread returns the number of unread messages.
func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts WHERE is_read = FALSE`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread contacts: %w", err)
	}
	return n, nil
}
