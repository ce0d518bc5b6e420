// Package server defines the Server container that composes the API's
// shared dependencies and owns their lifecycle:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - PostgreSQL pool
//   - Redis client
//   - image storage
//   - background job worker (asynq) and its email client
//   - the http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/ecoleta/internal/config"
	"github.com/deppfellow/ecoleta/internal/database"
	"github.com/deppfellow/ecoleta/internal/lib/email"
	"github.com/deppfellow/ecoleta/internal/lib/job"
	"github.com/deppfellow/ecoleta/internal/lib/upload"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/ecoleta/internal/logger"
)

// Server is the application container; it is not the HTTP server itself.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService
	DB            *database.Database
	Redis         *redis.Client
	Uploads       *upload.Storage
	Job           *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes its dependencies.
//
// A failing database or upload directory aborts startup. Redis being
// unreachable is only logged: the API keeps serving reads and registration,
// and confirmation emails are skipped until Redis is back.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	uploads, err := upload.NewStorage(cfg.Upload, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
	}

	jobService := job.NewJobService(logger, cfg, email.NewClient(cfg, logger))

	// asynq.Server.Start returns once the workers are running.
	if err := jobService.Start(); err != nil {
		logger.Error().Err(err).Msg("Failed to start job server, confirmation emails are disabled")
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Uploads:       uploads,
		Job:           jobService,
	}, nil
}

// SetupHTTPServer configures the net/http server around handler.
// Timeouts in config are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops and returns
// http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then releases the job workers, Redis and the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			shutdownErr = errors.Join(shutdownErr, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if err := s.DB.Close(); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("failed to close database connection: %w", err))
	}

	return shutdownErr
}
