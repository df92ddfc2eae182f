// internal/service/profile/profile.go
package profile

import (
	"context"
	"errors"

	"portfolio-service/internal/domain/profile"
	xerrors "portfolio-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type store interface {
	Get(ctx context.Context) (*profile.Profile, error)
	CreateDefault(ctx context.Context) (*profile.Profile, error)
	Update(ctx context.Context, id int64, req *profile.UpdateRequest) error
}

type Service struct {
	store  store
	logger *zap.Logger
}

func NewService(store store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the profile, creating the default row on first read so the
// public site never sees a 404 here.
func (s *Service) Get(ctx context.Context) (*profile.Profile, error) {
	p, err := s.store.Get(ctx)
	if errors.Is(err, xerrors.ErrNotFound) {
		s.logger.Info("profile missing, creating default row")
		return s.store.CreateDefault(ctx)
	}
	return p, err
}

// Update applies a partial update and returns the fresh profile.
func (s *Service) Update(ctx context.Context, req *profile.UpdateRequest) (*profile.Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, p.ID, req); err != nil {
		return nil, err
	}

	return s.store.Get(ctx)
}
