// internal/service/contact/contact.go
package contact

import (
	"context"
	"strings"

	"portfolio-service/internal/domain/contact"

	"go.uber.org/zap"
)

type store interface {
	Create(ctx context.Context, c *contact.Contact) error
	List(ctx context.Context) ([]contact.Contact, error)
	FindByID(ctx context.Context, id int64) (*contact.Contact, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int, error)
}

type Service struct {
	store  store
	logger *zap.Logger
}

func NewService(store store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Submit stores a public contact-form message with its fields trimmed.
func (s *Service) Submit(ctx context.Context, req *contact.SubmitRequest) (*contact.Contact, error) {
	c := &contact.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received",
		zap.Int64("contact_id", c.ID),
		zap.String("email", c.Email),
	)
	return c, nil
}

// List returns all messages for the admin panel, newest first.
func (s *Service) List(ctx context.Context) ([]contact.Contact, error) {
	return s.store.List(ctx)
}

// MarkRead flags a message and returns the fresh row.
func (s *Service) MarkRead(ctx context.Context, id int64) (*contact.Contact, error) {
	if err := s.store.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// CountUnread reports how many messages are waiting.
func (s *Service) CountUnread(ctx context.Context) (int, error) {
	return s.store.CountUnread(ctx)
}
