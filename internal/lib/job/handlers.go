package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handlePointRegisteredTask sends the confirmation email for a newly
// registered point. Returning an error makes Asynq schedule a retry.
func (j *JobService) handlePointRegisteredTask(ctx context.Context, t *asynq.Task) error {
	var p PointRegisteredPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal point registered payload: %w: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskPointRegistered).
		Int64("point_id", p.PointID).
		Logger()

	log.Info().Msg("Processing point registered task")

	if err := j.emails.SendPointRegisteredEmail(p.To, p.PointID, p.Name, p.City, p.UF); err != nil {
		log.Error().Err(err).Msg("Failed to send point registered email")
		return err
	}

	log.Info().Msg("Successfully sent point registered email")

	return nil
}
