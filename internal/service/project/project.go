// internal/service/project/project.go
package project

import (
	"context"
	"time"

	"portfolio-service/internal/domain/project"

	"go.uber.org/zap"
)

type store interface {
	ListVisible(ctx context.Context) ([]project.Project, error)
	ListAll(ctx context.Context) ([]project.Project, error)
	FindByID(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, p *project.Project) error
	Update(ctx context.Context, id int64, req *project.UpdateRequest) error
	IncrementViews(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store  store
	logger *zap.Logger
}

func NewService(store store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListPublic returns visible projects, featured first.
func (s *Service) ListPublic(ctx context.Context) ([]project.Project, error) {
	return s.store.ListVisible(ctx)
}

// ListAll returns every project for the admin panel.
func (s *Service) ListAll(ctx context.Context) ([]project.Project, error) {
	return s.store.ListAll(ctx)
}

// GetPublic returns one project and bumps its view counter. A failed bump
// is logged, not surfaced; the read still succeeds.
func (s *Service) GetPublic(ctx context.Context, id int64) (*project.Project, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.IncrementViews(ctx, id); err != nil {
		s.logger.Warn("failed to increment project views", zap.Int64("project_id", id), zap.Error(err))
	} else {
		p.Views++
	}

	return p, nil
}

// Get returns one project without touching the view counter.
func (s *Service) Get(ctx context.Context, id int64) (*project.Project, error) {
	return s.store.FindByID(ctx, id)
}

// Create adds a new project. Visibility defaults to true, the completed
// date to now.
func (s *Service) Create(ctx context.Context, req *project.CreateRequest) (*project.Project, error) {
	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	completed := time.Now()
	if req.CompletedDate != nil {
		completed = *req.CompletedDate
	}

	category := req.Category
	if category == "" {
		category = "web"
	}

	p := &project.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Images:          req.Images,
		Technologies:    req.Technologies,
		Category:        category,
		LiveURL:         req.LiveURL,
		GithubURL:       req.GithubURL,
		Featured:        req.Featured,
		Order:           req.Order,
		IsVisible:       visible,
		CompletedDate:   completed,
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("project created", zap.Int64("project_id", p.ID), zap.String("title", p.Title))
	return p, nil
}

// Update applies a partial update and returns the fresh row.
func (s *Service) Update(ctx context.Context, id int64, req *project.UpdateRequest) (*project.Project, error) {
	if err := s.store.Update(ctx, id, req); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
