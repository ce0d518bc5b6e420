package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskPointRegistered is the job type name stored in Redis.
	TaskPointRegistered = "point:registered"
)

// PointRegisteredPayload is the JSON payload of a point registration
// confirmation.
type PointRegisteredPayload struct {
	PointID int64  `json:"point_id"`
	To      string `json:"to"`
	Name    string `json:"name"`
	City    string `json:"city"`
	UF      string `json:"uf"`
}

// NewPointRegisteredTask constructs the confirmation email task.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): confirmations are not urgent
//   - Timeout(30s): abandon a provider call that hangs
func NewPointRegisteredTask(p PointRegisteredPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPointRegistered,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
