// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio-service/internal/config"
	"portfolio-service/internal/db"
	authHandler "portfolio-service/internal/handlers/auth"
	contactHandler "portfolio-service/internal/handlers/contact"
	profileHandler "portfolio-service/internal/handlers/profile"
	projectHandler "portfolio-service/internal/handlers/projects"
	settingsHandler "portfolio-service/internal/handlers/settings"
	skillHandler "portfolio-service/internal/handlers/skills"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/deviceinfo"
	"portfolio-service/internal/pkg/jwt"
	"portfolio-service/internal/pkg/ratelimit"
	"portfolio-service/internal/repository/postgres"
	authService "portfolio-service/internal/service/auth"
	contactService "portfolio-service/internal/service/contact"
	profileService "portfolio-service/internal/service/profile"
	projectService "portfolio-service/internal/service/project"
	settingsService "portfolio-service/internal/service/settings"
	skillService "portfolio-service/internal/service/skill"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	pool    *pgxpool.Pool
	redis   *redis.Client
	authSvc *authService.Service
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		engine: gin.New(),
		logger: logger,
	}
}

// Start wires the whole service together and begins serving.
func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB()
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis (optional, rate limiting degrades without it) -----
	if s.cfg.RedisAddr != "" {
		client, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			s.logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			s.redis = client
		}
	} else {
		s.logger.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	// ----- JWT -----
	tokenService, err := jwt.NewService(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build token service: %w", err)
	}

	// ----- Rate Limiter & Device Enrichment -----
	limiter := ratelimit.NewLimiter(s.redis)
	enricher := deviceinfo.NewEnricher(s.logger)

	// ----- Repositories -----
	adminRepo := postgres.NewAdminRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	skillRepo := postgres.NewSkillRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	// ----- Services -----
	authSvc := authService.NewService(adminRepo, sessionRepo, tokenService, enricher, s.logger, authService.Config{
		ResetSecretCode:  s.cfg.ResetSecretCode,
		LockoutThreshold: s.cfg.LockoutThreshold,
		LockoutDuration:  s.cfg.LockoutDuration,
	})
	s.authSvc = authSvc
	profileSvc := profileService.NewService(profileRepo, s.logger)
	skillSvc := skillService.NewService(skillRepo, s.logger)
	projectSvc := projectService.NewService(projectRepo, s.logger)
	contactSvc := contactService.NewService(contactRepo, s.logger)
	settingsSvc := settingsService.NewService(settingsRepo, s.logger)

	// ----- Handlers -----
	handlers := &Handlers{
		Auth:     authHandler.NewAuthHandler(authSvc, limiter, s.logger),
		Profile:  profileHandler.NewProfileHandler(profileSvc),
		Skills:   skillHandler.NewSkillHandler(skillSvc),
		Projects: projectHandler.NewProjectHandler(projectSvc),
		Contact:  contactHandler.NewContactHandler(contactSvc),
		Settings: settingsHandler.NewSettingsHandler(settingsSvc),

		AuthMiddleware:   middleware.AuthMiddleware(authSvc),
		ContactRateLimit: middleware.ContactRateLimit(limiter, s.logger),
	}

	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	SetupRouter(s.engine, handlers)

	s.http = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	s.logger.Info("server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases connections.
func (s *Server) Shutdown(ctx context.Context) error {
	var firstErr error

	if s.http != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			firstErr = err
		}
	}

	if s.authSvc != nil {
		s.authSvc.Wait()
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.pool != nil {
		s.pool.Close()
	}

	return firstErr
}
