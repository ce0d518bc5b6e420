// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - the API enqueues tasks (producer) through JobService.Client
//   - the same process runs workers (consumer) through an asynq.Server
//
// The only task today is the confirmation email sent after a collection
// point is registered.
package job

import (
	"github.com/deppfellow/ecoleta/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// PointRegisteredSender delivers the registration confirmation.
// *email.Client implements it.
type PointRegisteredSender interface {
	SendPointRegisteredEmail(to string, pointID int64, pointName, city, uf string) error
}

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	emails PointRegisteredSender
	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks the larger worker share:
//
//	critical: 6
//	default:  3
//	low:      1
func NewJobService(logger *zerolog.Logger, cfg *config.Config, emails PointRegisteredSender) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   &asynqLogger{logger: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		emails: emails,
		logger: logger,
	}
}

// Mux returns the task routing table: task type -> handler.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPointRegistered, j.handlePointRegisteredTask)
	return mux
}

// Start starts the worker server in the background. It returns once the
// workers are running.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return err
	}

	return nil
}

// Stop waits for in-flight tasks, stops the workers and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
