// internal/service/auth/auth.go
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"portfolio-service/internal/domain/admin"
	"portfolio-service/internal/pkg/deviceinfo"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// adminStore is the persistence surface the orchestrator needs for admins.
type adminStore interface {
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
	FindByID(ctx context.Context, id int64) (*admin.Admin, error)
	Create(ctx context.Context, a *admin.Admin) error
	RecordLoginSuccess(ctx context.Context, id int64) error
	RecordLoginFailure(ctx context.Context, id int64, attempts int, lockUntil *time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	ResetPassword(ctx context.Context, id int64, passwordHash string) error
}

// sessionStore is the persistence surface for session rows.
type sessionStore interface {
	Create(ctx context.Context, s *admin.Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*admin.Session, error)
	ListByAdmin(ctx context.Context, adminID int64) ([]admin.Session, error)
	DeleteByID(ctx context.Context, id uuid.UUID, adminID int64) error
	DeleteAllExcept(ctx context.Context, adminID int64, tokenHash string) error
	DeleteAll(ctx context.Context, adminID int64) error
}

// enricher resolves a request's user agent and IP into device metadata.
type enricher interface {
	Enrich(ctx context.Context, userAgent, ip string) deviceinfo.DeviceInfo
}

// Service orchestrates registration, login, the bearer-token gate and
// session management.
type Service struct {
	admins   adminStore
	sessions sessionStore
	tokens   *jwt.Service
	devices  enricher
	logger   *zap.Logger

	resetSecretCode  string
	lockoutThreshold int
	lockoutDuration  time.Duration

	// tracks in-flight background session writes
	background sync.WaitGroup
}

type Config struct {
	ResetSecretCode  string
	LockoutThreshold int
	LockoutDuration  time.Duration
}

func NewService(
	admins adminStore,
	sessions sessionStore,
	tokens *jwt.Service,
	devices enricher,
	logger *zap.Logger,
	cfg Config,
) *Service {
	threshold := cfg.LockoutThreshold
	if threshold <= 0 {
		threshold = 5
	}
	duration := cfg.LockoutDuration
	if duration <= 0 {
		duration = 15 * time.Minute
	}
	return &Service{
		admins:           admins,
		sessions:         sessions,
		tokens:           tokens,
		devices:          devices,
		logger:           logger,
		resetSecretCode:  cfg.ResetSecretCode,
		lockoutThreshold: threshold,
		lockoutDuration:  duration,
	}
}

// HashToken derives the stored lookup key for a raw bearer token. Raw
// tokens never reach the database.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Register creates a new admin account and logs it straight in.
func (s *Service) Register(ctx context.Context, req *admin.RegisterRequest) (*admin.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to hash password")
	}

	a := &admin.Admin{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         "admin",
	}

	if err := s.admins.Create(ctx, a); err != nil {
		if errors.Is(err, xerrors.ErrConflict) {
			return nil, xerrors.ErrConflict
		}
		return nil, xerrors.Wrap(err, "failed to create admin")
	}

	token, err := s.tokens.Issue(a.ID, a.Email, a.TokenVersion)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to issue token")
	}

	s.recordSession(a.ID, token, req.IPAddress, req.UserAgent)

	s.logger.Info("admin registered", zap.Int64("admin_id", a.ID), zap.String("email", a.Email))

	return &admin.AuthResponse{Token: token, Admin: admin.PublicInfoOf(a)}, nil
}

// Login authenticates credentials under the lockout policy and issues a
// bearer token. An active lock is checked before the password so a locked
// account rejects even the correct password.
func (s *Service) Login(ctx context.Context, req *admin.LoginRequest) (*admin.AuthResponse, error) {
	a, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, xerrors.Wrap(err, "failed to look up admin")
	}

	now := time.Now()
	if a.LockUntil.Valid && a.LockUntil.Time.After(now) {
		return nil, &xerrors.LockedError{Until: a.LockUntil.Time}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.recordFailure(ctx, a)
	}

	if err := s.admins.RecordLoginSuccess(ctx, a.ID); err != nil {
		s.logger.Warn("failed to record login success", zap.Int64("admin_id", a.ID), zap.Error(err))
	}

	token, err := s.tokens.Issue(a.ID, a.Email, a.TokenVersion)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to issue token")
	}

	s.recordSession(a.ID, token, req.IPAddress, req.UserAgent)

	s.logger.Info("admin logged in", zap.Int64("admin_id", a.ID), zap.String("ip", req.IPAddress))

	return &admin.AuthResponse{Token: token, Admin: admin.PublicInfoOf(a)}, nil
}

// recordFailure advances the attempt counter and opens a lock window when
// the threshold is reached. The count is read-modify-write without a
// transaction, so two concurrent failures can collapse into one step.
func (s *Service) recordFailure(ctx context.Context, a *admin.Admin) error {
	attempts := a.LoginAttempts + 1

	var lockUntil *time.Time
	if attempts >= s.lockoutThreshold {
		t := time.Now().Add(s.lockoutDuration)
		lockUntil = &t
		attempts = 0
	}

	if err := s.admins.RecordLoginFailure(ctx, a.ID, attempts, lockUntil); err != nil {
		s.logger.Warn("failed to record login failure", zap.Int64("admin_id", a.ID), zap.Error(err))
	}

	if lockUntil != nil {
		s.logger.Warn("admin account locked",
			zap.Int64("admin_id", a.ID),
			zap.Time("lock_until", *lockUntil),
		)
		return &xerrors.LockedError{Until: *lockUntil}
	}

	return xerrors.ErrInvalidCredentials
}

// recordSession stores the session row for a freshly issued token in the
// background. Session bookkeeping must never block or fail a login.
func (s *Service) recordSession(adminID int64, token, ip, userAgent string) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sess := &admin.Session{
			AdminID:    adminID,
			TokenHash:  HashToken(token),
			IPAddress:  ip,
			UserAgent:  userAgent,
			DeviceInfo: s.devices.Enrich(ctx, userAgent, ip),
			ExpiresAt:  time.Now().Add(s.tokens.TTL),
		}

		if err := s.sessions.Create(ctx, sess); err != nil {
			s.logger.Warn("failed to record session",
				zap.Int64("admin_id", adminID),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all background session writes have finished. Called
// during shutdown so a login right before exit still gets its session row.
func (s *Service) Wait() {
	s.background.Wait()
}

// Authenticate is the bearer-token gate. A token authorizes a request only
// when it verifies structurally, its session row is still live, and its
// embedded revocation epoch matches the account's current one. It returns
// the admin and the token hash identifying the caller's session.
func (s *Service) Authenticate(ctx context.Context, token string) (*admin.Admin, string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, "", xerrors.ErrInvalidToken
	}

	tokenHash := HashToken(token)

	if _, err := s.sessions.FindByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, "", xerrors.ErrSessionRevoked
		}
		return nil, "", xerrors.Wrap(err, "failed to look up session")
	}

	a, err := s.admins.FindByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, "", xerrors.ErrUnauthorized
		}
		return nil, "", xerrors.Wrap(err, "failed to look up admin")
	}

	if claims.TokenVersion != a.TokenVersion {
		return nil, "", xerrors.ErrSessionRevoked
	}

	return a, tokenHash, nil
}

// ChangePassword verifies the current password, installs the new hash and
// advances the revocation epoch, then drops every stored session. All
// outstanding tokens die on both checks of the gate.
func (s *Service) ChangePassword(ctx context.Context, adminID int64, req *admin.ChangePasswordRequest) error {
	a, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		return xerrors.Wrap(err, "failed to look up admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return xerrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return xerrors.Wrap(err, "failed to hash password")
	}

	if err := s.admins.UpdatePassword(ctx, adminID, string(hash)); err != nil {
		return xerrors.Wrap(err, "failed to update password")
	}

	if err := s.sessions.DeleteAll(ctx, adminID); err != nil {
		s.logger.Warn("failed to clear sessions after password change",
			zap.Int64("admin_id", adminID), zap.Error(err))
	}

	s.logger.Info("admin changed password", zap.Int64("admin_id", adminID))
	return nil
}

// ResetPasswordWithCode is the recovery path for an operator who lost both
// password and sessions: a pre-shared secret code authorizes a reset. The
// reset clears any lockout and advances the revocation epoch.
func (s *Service) ResetPasswordWithCode(ctx context.Context, req *admin.ResetPasswordRequest) error {
	a, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrNotFound
		}
		return xerrors.Wrap(err, "failed to look up admin")
	}

	if s.resetSecretCode == "" || req.SecretCode != s.resetSecretCode {
		return xerrors.ErrInvalidSecretCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return xerrors.Wrap(err, "failed to hash password")
	}

	if err := s.admins.ResetPassword(ctx, a.ID, string(hash)); err != nil {
		return xerrors.Wrap(err, "failed to reset password")
	}

	if err := s.sessions.DeleteAll(ctx, a.ID); err != nil {
		s.logger.Warn("failed to clear sessions after password reset",
			zap.Int64("admin_id", a.ID), zap.Error(err))
	}

	s.logger.Info("admin password reset", zap.Int64("admin_id", a.ID))
	return nil
}

// ListSessions returns the caller's sessions with the row matching the
// presented token marked as current.
func (s *Service) ListSessions(ctx context.Context, adminID int64, currentTokenHash string) ([]admin.SessionView, error) {
	sessions, err := s.sessions.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, xerrors.Wrap(err, "failed to list sessions")
	}

	views := make([]admin.SessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, admin.SessionView{
			Session:   sess,
			IsCurrent: sess.TokenHash == currentTokenHash,
		})
	}
	return views, nil
}

// RevokeSession removes one of the caller's sessions by ID.
func (s *Service) RevokeSession(ctx context.Context, adminID int64, sessionID uuid.UUID) error {
	return s.sessions.DeleteByID(ctx, sessionID, adminID)
}

// RevokeOtherSessions logs out every device except the calling one.
func (s *Service) RevokeOtherSessions(ctx context.Context, adminID int64, currentTokenHash string) error {
	return s.sessions.DeleteAllExcept(ctx, adminID, currentTokenHash)
}

// RevokeAllSessions logs out every device, the calling one included.
func (s *Service) RevokeAllSessions(ctx context.Context, adminID int64) error {
	return s.sessions.DeleteAll(ctx, adminID)
}
