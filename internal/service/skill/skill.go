// internal/service/skill/skill.go
package skill

import (
	"context"

	"portfolio-service/internal/domain/skill"

	"go.uber.org/zap"
)

type store interface {
	ListVisible(ctx context.Context) ([]skill.Skill, error)
	ListAll(ctx context.Context) ([]skill.Skill, error)
	FindByID(ctx context.Context, id int64) (*skill.Skill, error)
	Create(ctx context.Context, s *skill.Skill) error
	Update(ctx context.Context, id int64, req *skill.UpdateRequest) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store  store
	logger *zap.Logger
}

func NewService(store store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListPublic returns only visible skills in display order.
func (s *Service) ListPublic(ctx context.Context) ([]skill.Skill, error) {
	return s.store.ListVisible(ctx)
}

// ListAll returns every skill for the admin panel.
func (s *Service) ListAll(ctx context.Context) ([]skill.Skill, error) {
	return s.store.ListAll(ctx)
}

// Create adds a new skill. Visibility defaults to true unless explicitly
// turned off.
func (s *Service) Create(ctx context.Context, req *skill.CreateRequest) (*skill.Skill, error) {
	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	sk := &skill.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
		Order:       req.Order,
		IsVisible:   visible,
	}

	if err := s.store.Create(ctx, sk); err != nil {
		return nil, err
	}

	s.logger.Info("skill created", zap.Int64("skill_id", sk.ID), zap.String("name", sk.Name))
	return sk, nil
}

// Update applies a partial update and returns the fresh row.
func (s *Service) Update(ctx context.Context, id int64, req *skill.UpdateRequest) (*skill.Skill, error) {
	if err := s.store.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
