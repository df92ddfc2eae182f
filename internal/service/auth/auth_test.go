// internal/service/auth/auth_test.go
package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"portfolio-service/internal/domain/admin"
	"portfolio-service/internal/pkg/deviceinfo"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeAdminStore struct {
	mu     sync.Mutex
	byID   map[int64]*admin.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byID: map[int64]*admin.Admin{}}
}

func (f *fakeAdminStore) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeAdminStore) FindByID(_ context.Context, id int64) (*admin.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) Create(_ context.Context, a *admin.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return xerrors.ErrConflict
		}
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAdminStore) RecordLoginSuccess(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byID[id]; ok {
		a.LoginAttempts = 0
		a.LockUntil.Valid = false
		a.LastLogin.Time = time.Now()
		a.LastLogin.Valid = true
	}
	return nil
}

func (f *fakeAdminStore) RecordLoginFailure(_ context.Context, id int64, attempts int, lockUntil *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byID[id]; ok {
		a.LoginAttempts = attempts
		if lockUntil != nil {
			a.LockUntil.Time = *lockUntil
			a.LockUntil.Valid = true
		} else {
			a.LockUntil.Valid = false
		}
	}
	return nil
}

func (f *fakeAdminStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byID[id]; ok {
		a.PasswordHash = passwordHash
		a.TokenVersion++
	}
	return nil
}

func (f *fakeAdminStore) ResetPassword(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.byID[id]; ok {
		a.PasswordHash = passwordHash
		a.LoginAttempts = 0
		a.LockUntil.Valid = false
		a.TokenVersion++
	}
	return nil
}

type fakeSessionStore struct {
	mu     sync.Mutex
	byHash map[string]*admin.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byHash: map[string]*admin.Session{}}
}

func (f *fakeSessionStore) Create(_ context.Context, s *admin.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	f.byHash[s.TokenHash] = &cp
	return nil
}

func (f *fakeSessionStore) FindByTokenHash(_ context.Context, tokenHash string) (*admin.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byHash[tokenHash]
	if !ok || s.ExpiresAt.Before(time.Now()) {
		return nil, xerrors.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionStore) ListByAdmin(_ context.Context, adminID int64) ([]admin.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sessions := []admin.Session{}
	for _, s := range f.byHash {
		if s.AdminID == adminID {
			sessions = append(sessions, *s)
		}
	}
	return sessions, nil
}

func (f *fakeSessionStore) DeleteByID(_ context.Context, id uuid.UUID, adminID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, s := range f.byHash {
		if s.ID == id && s.AdminID == adminID {
			delete(f.byHash, hash)
			return nil
		}
	}
	return xerrors.ErrNotFound
}

func (f *fakeSessionStore) DeleteAllExcept(_ context.Context, adminID int64, tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, s := range f.byHash {
		if s.AdminID == adminID && hash != tokenHash {
			delete(f.byHash, hash)
		}
	}
	return nil
}

func (f *fakeSessionStore) DeleteAll(_ context.Context, adminID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, s := range f.byHash {
		if s.AdminID == adminID {
			delete(f.byHash, hash)
		}
	}
	return nil
}

type fakeEnricher struct{}

func (fakeEnricher) Enrich(context.Context, string, string) deviceinfo.DeviceInfo {
	return deviceinfo.Parse("")
}

func newTestService(t *testing.T, cfg Config) (*Service, *fakeAdminStore, *fakeSessionStore) {
	t.Helper()

	tokens, err := jwt.NewService(jwt.Config{
		Secret:   "test-secret",
		Issuer:   "portfolio-api",
		Audience: "portfolio-admin",
		TTL:      time.Hour,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	admins := newFakeAdminStore()
	sessions := newFakeSessionStore()
	svc := NewService(admins, sessions, tokens, fakeEnricher{}, zap.NewNop(), cfg)
	return svc, admins, sessions
}

func register(t *testing.T, svc *Service, email, password string) *admin.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &admin.RegisterRequest{
		Name:     "Test Admin",
		Email:    email,
		Password: password,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Registration records its session in the background; settle it so the
	// test body starts from a known store state.
	svc.Wait()
	return resp
}

// sessionFor plants a session row for a token the way a completed login
// would. Login records its session in the background, so tests that need
// the row in place create it directly.
func sessionFor(t *testing.T, sessions *fakeSessionStore, adminID int64, token string) *admin.Session {
	t.Helper()
	s := &admin.Session{
		AdminID:   adminID,
		TokenHash: HashToken(token),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := sessions.Create(context.Background(), s); err != nil {
		t.Fatalf("Create session: %v", err)
	}
	return s
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t, Config{ResetSecretCode: "code"})

	register(t, svc, "owner@example.com", "password123")

	_, err := svc.Register(context.Background(), &admin.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
	})
	if !xerrors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t, Config{ResetSecretCode: "code"})
	register(t, svc, "owner@example.com", "password123")

	_, err := svc.Login(context.Background(), &admin.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	if !xerrors.Is(err, xerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t, Config{ResetSecretCode: "code"})

	_, err := svc.Login(context.Background(), &admin.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !xerrors.Is(err, xerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLockoutAfterThreshold(t *testing.T) {
	svc, admins, _ := newTestService(t, Config{
		ResetSecretCode:  "code",
		LockoutThreshold: 3,
		LockoutDuration:  15 * time.Minute,
	})
	register(t, svc, "owner@example.com", "password123")

	ctx := context.Background()
	req := &admin.LoginRequest{Email: "owner@example.com", Password: "wrong"}

	// The counter is plain read-modify-write, so the sequence here is
	// strictly serial.
	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, req)
		if !xerrors.Is(err, xerrors.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	before := time.Now()
	_, err := svc.Login(ctx, req)
	locked, ok := xerrors.AsLocked(err)
	if !ok {
		t.Fatalf("expected LockedError on threshold attempt, got %v", err)
	}
	if locked.Until.Before(before.Add(14*time.Minute)) || locked.Until.After(time.Now().Add(16*time.Minute)) {
		t.Fatalf("lock window off: %v", locked.Until)
	}
	if locked.RetryAfterSeconds() < 1 {
		t.Fatalf("retry-after must be at least 1, got %d", locked.RetryAfterSeconds())
	}

	// The correct password is also rejected while the lock is active.
	_, err = svc.Login(ctx, &admin.LoginRequest{Email: "owner@example.com", Password: "password123"})
	if _, ok := xerrors.AsLocked(err); !ok {
		t.Fatalf("expected LockedError with correct password, got %v", err)
	}

	// An expired lock lets a correct login through and clears the state.
	admins.mu.Lock()
	admins.byID[1].LockUntil.Time = time.Now().Add(-time.Second)
	admins.mu.Unlock()

	resp, err := svc.Login(ctx, &admin.LoginRequest{Email: "owner@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login after lock expiry: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token after lock expiry")
	}

	a, _ := admins.FindByID(ctx, 1)
	if a.LoginAttempts != 0 || a.LockUntil.Valid {
		t.Fatalf("expected counters cleared after success, got attempts=%d locked=%v", a.LoginAttempts, a.LockUntil.Valid)
	}
}

func TestAuthenticateRequiresLiveSession(t *testing.T) {
	svc, _, sessions := newTestService(t, Config{ResetSecretCode: "code"})
	resp := register(t, svc, "owner@example.com", "password123")

	ctx := context.Background()

	// Without a session row a structurally valid token is refused.
	sessions.mu.Lock()
	sessions.byHash = map[string]*admin.Session{}
	sessions.mu.Unlock()

	if _, _, err := svc.Authenticate(ctx, resp.Token); !xerrors.Is(err, xerrors.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked without session, got %v", err)
	}

	sessionFor(t, sessions, resp.Admin.ID, resp.Token)

	a, tokenHash, err := svc.Authenticate(ctx, resp.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if a.ID != resp.Admin.ID {
		t.Fatalf("expected admin %d, got %d", resp.Admin.ID, a.ID)
	}
	if tokenHash != HashToken(resp.Token) {
		t.Fatal("token hash mismatch")
	}
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestService(t, Config{ResetSecretCode: "code"})

	if _, _, err := svc.Authenticate(context.Background(), "not-a-token"); !xerrors.Is(err, xerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestChangePasswordRevokesOldTokens(t *testing.T) {
	svc, _, sessions := newTestService(t, Config{ResetSecretCode: "code"})
	resp := register(t, svc, "owner@example.com", "password123")
	sessionFor(t, sessions, resp.Admin.ID, resp.Token)

	ctx := context.Background()

	err := svc.ChangePassword(ctx, resp.Admin.ID, &admin.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpassword99",
	})
	if !xerrors.Is(err, xerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	err = svc.ChangePassword(ctx, resp.Admin.ID, &admin.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword99",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	// The old token fails at the gate and the old password no longer logs in.
	if _, _, err := svc.Authenticate(ctx, resp.Token); err == nil {
		t.Fatal("expected old token to be rejected after password change")
	}
	_, err = svc.Login(ctx, &admin.LoginRequest{Email: "owner@example.com", Password: "password123"})
	if !xerrors.Is(err, xerrors.ErrInvalidCredentials) {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, err := svc.Login(ctx, &admin.LoginRequest{Email: "owner@example.com", Password: "newpassword99"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestTokenVersionMismatchRevokes(t *testing.T) {
	svc, admins, sessions := newTestService(t, Config{ResetSecretCode: "code"})
	resp := register(t, svc, "owner@example.com", "password123")
	sessionFor(t, sessions, resp.Admin.ID, resp.Token)

	// Advance the account's revocation epoch while the session row stays.
	admins.mu.Lock()
	admins.byID[resp.Admin.ID].TokenVersion++
	admins.mu.Unlock()

	if _, _, err := svc.Authenticate(context.Background(), resp.Token); !xerrors.Is(err, xerrors.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked on epoch mismatch, got %v", err)
	}
}

func TestResetPasswordWithCode(t *testing.T) {
	svc, admins, _ := newTestService(t, Config{ResetSecretCode: "super-secret"})
	resp := register(t, svc, "owner@example.com", "password123")

	ctx := context.Background()

	err := svc.ResetPasswordWithCode(ctx, &admin.ResetPasswordRequest{
		Email:       "nobody@example.com",
		SecretCode:  "super-secret",
		NewPassword: "resetpassword1",
	})
	if !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown email, got %v", err)
	}

	err = svc.ResetPasswordWithCode(ctx, &admin.ResetPasswordRequest{
		Email:       "owner@example.com",
		SecretCode:  "wrong-code",
		NewPassword: "resetpassword1",
	})
	if !xerrors.Is(err, xerrors.ErrInvalidSecretCode) {
		t.Fatalf("expected ErrInvalidSecretCode, got %v", err)
	}

	// Lock the account first; the reset must clear the lock too.
	admins.mu.Lock()
	admins.byID[resp.Admin.ID].LockUntil.Time = time.Now().Add(10 * time.Minute)
	admins.byID[resp.Admin.ID].LockUntil.Valid = true
	admins.mu.Unlock()

	err = svc.ResetPasswordWithCode(ctx, &admin.ResetPasswordRequest{
		Email:       "owner@example.com",
		SecretCode:  "super-secret",
		NewPassword: "resetpassword1",
	})
	if err != nil {
		t.Fatalf("ResetPasswordWithCode: %v", err)
	}

	if _, err := svc.Login(ctx, &admin.LoginRequest{Email: "owner@example.com", Password: "resetpassword1"}); err != nil {
		t.Fatalf("login after reset: %v", err)
	}
}

func TestSessionListingAndRevocation(t *testing.T) {
	svc, _, sessions := newTestService(t, Config{ResetSecretCode: "code"})
	resp := register(t, svc, "owner@example.com", "password123")
	adminID := resp.Admin.ID

	current := sessionFor(t, sessions, adminID, resp.Token)
	other1 := sessionFor(t, sessions, adminID, "other-token-1")
	other2 := sessionFor(t, sessions, adminID, "other-token-2")

	ctx := context.Background()
	currentHash := HashToken(resp.Token)

	views, err := svc.ListSessions(ctx, adminID, currentHash)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(views))
	}
	for _, v := range views {
		want := v.Session.ID == current.ID
		if v.IsCurrent != want {
			t.Fatalf("session %s: isCurrent=%v, want %v", v.Session.ID, v.IsCurrent, want)
		}
	}

	if err := svc.RevokeSession(ctx, adminID, other1.ID); err != nil {
		t.Fatalf("RevokeSession: %v", err)
	}
	if err := svc.RevokeSession(ctx, adminID, other1.ID); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double revoke, got %v", err)
	}

	// A different admin cannot revoke someone else's session.
	if err := svc.RevokeSession(ctx, adminID+1, other2.ID); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign session, got %v", err)
	}

	if err := svc.RevokeOtherSessions(ctx, adminID, currentHash); err != nil {
		t.Fatalf("RevokeOtherSessions: %v", err)
	}
	views, _ = svc.ListSessions(ctx, adminID, currentHash)
	if len(views) != 1 || !views[0].IsCurrent {
		t.Fatalf("expected only the current session to remain, got %d", len(views))
	}

	if err := svc.RevokeAllSessions(ctx, adminID); err != nil {
		t.Fatalf("RevokeAllSessions: %v", err)
	}
	views, _ = svc.ListSessions(ctx, adminID, currentHash)
	if len(views) != 0 {
		t.Fatalf("expected no sessions, got %d", len(views))
	}
}

func TestHashTokenStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatal("hash must be deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatal("distinct tokens must hash differently")
	}
	if len(HashToken("abc")) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(HashToken("abc")))
	}
}
