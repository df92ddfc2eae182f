// internal/service/project/project_test.go
package project

import (
	"context"
	"testing"

	"portfolio-service/internal/domain/project"
	xerrors "portfolio-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeStore struct {
	byID    map[int64]*project.Project
	nextID  int64
	viewErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[int64]*project.Project{}}
}

func (f *fakeStore) ListVisible(context.Context) ([]project.Project, error) {
	out := []project.Project{}
	for _, p := range f.byID {
		if p.IsVisible {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAll(context.Context) ([]project.Project, error) {
	out := []project.Project{}
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) FindByID(_ context.Context, id int64) (*project.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) Create(_ context.Context, p *project.Project) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeStore) Update(_ context.Context, id int64, req *project.UpdateRequest) error {
	p, ok := f.byID[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.IsVisible != nil {
		p.IsVisible = *req.IsVisible
	}
	return nil
}

func (f *fakeStore) IncrementViews(_ context.Context, id int64) error {
	if f.viewErr != nil {
		return f.viewErr
	}
	if p, ok := f.byID[id]; ok {
		p.Views++
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestCreateDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	p, err := svc.Create(context.Background(), &project.CreateRequest{
		Title:       "Portfolio",
		Description: "This site",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !p.IsVisible {
		t.Error("expected visibility to default to true")
	}
	if p.Category != "web" {
		t.Errorf("Category = %q, want web", p.Category)
	}
	if p.CompletedDate.IsZero() {
		t.Error("expected completed date to default to now")
	}
}

func TestGetPublicCountsView(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	created, err := svc.Create(context.Background(), &project.CreateRequest{
		Title:       "Portfolio",
		Description: "This site",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err := svc.GetPublic(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if p.Views != 1 {
		t.Errorf("Views = %d, want 1", p.Views)
	}

	stored, _ := store.FindByID(context.Background(), created.ID)
	if stored.Views != 1 {
		t.Errorf("stored Views = %d, want 1", stored.Views)
	}
}

func TestGetPublicSurvivesViewFailure(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zap.NewNop())

	created, _ := svc.Create(context.Background(), &project.CreateRequest{
		Title:       "Portfolio",
		Description: "This site",
	})

	store.viewErr = context.DeadlineExceeded
	p, err := svc.GetPublic(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetPublic: %v", err)
	}
	if p.Views != 0 {
		t.Errorf("Views = %d, want 0 when the bump failed", p.Views)
	}
}

func TestGetPublicNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), zap.NewNop())

	if _, err := svc.GetPublic(context.Background(), 99); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
