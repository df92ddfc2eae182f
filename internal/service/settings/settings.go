// internal/service/settings/settings.go
package settings

import (
	"context"
	"errors"

	"portfolio-service/internal/domain/settings"
	xerrors "portfolio-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type store interface {
	Get(ctx context.Context) (*settings.Settings, error)
	CreateDefault(ctx context.Context) (*settings.Settings, error)
	Update(ctx context.Context, id int64, req *settings.UpdateRequest) error
}

type Service struct {
	store  store
	logger *zap.Logger
}

func NewService(store store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the site settings, creating the default row on first read.
func (s *Service) Get(ctx context.Context) (*settings.Settings, error) {
	st, err := s.store.Get(ctx)
	if errors.Is(err, xerrors.ErrNotFound) {
		s.logger.Info("settings missing, creating default row")
		return s.store.CreateDefault(ctx)
	}
	return st, err
}

// Update applies a partial update and returns the fresh settings.
func (s *Service) Update(ctx context.Context, req *settings.UpdateRequest) (*settings.Settings, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, st.ID, req); err != nil {
		return nil, err
	}

	return s.store.Get(ctx)
}
