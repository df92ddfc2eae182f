// internal/service/profile/profile_test.go
package profile

import (
	"context"
	"testing"

	"portfolio-service/internal/domain/profile"
	xerrors "portfolio-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeStore struct {
	row *profile.Profile
}

func (f *fakeStore) Get(context.Context) (*profile.Profile, error) {
	if f.row == nil {
		return nil, xerrors.ErrNotFound
	}
	cp := *f.row
	return &cp, nil
}

func (f *fakeStore) CreateDefault(context.Context) (*profile.Profile, error) {
	f.row = &profile.Profile{ID: 1}
	cp := *f.row
	return &cp, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, req *profile.UpdateRequest) error {
	if f.row == nil || f.row.ID != id {
		return xerrors.ErrNotFound
	}
	if req.Name != nil {
		f.row.Name = *req.Name
	}
	if req.Title != nil {
		f.row.Title = *req.Title
	}
	return nil
}

func TestGetCreatesDefaultRow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, zap.NewNop())

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected default row, got %+v", p)
	}
	if store.row == nil {
		t.Fatal("expected the default row to be persisted")
	}
}

func TestUpdatePartial(t *testing.T) {
	store := &fakeStore{row: &profile.Profile{ID: 1, Name: "Old", Title: "Engineer"}}
	svc := NewService(store, zap.NewNop())

	name := "New Name"
	p, err := svc.Update(context.Background(), &profile.UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if p.Name != "New Name" {
		t.Errorf("Name = %q, want New Name", p.Name)
	}
	if p.Title != "Engineer" {
		t.Errorf("Title = %q, unset fields must stay", p.Title)
	}
}

func TestUpdateCreatesRowFirst(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, zap.NewNop())

	name := "Owner"
	p, err := svc.Update(context.Background(), &profile.UpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Name != "Owner" {
		t.Errorf("Name = %q, want Owner", p.Name)
	}
}
