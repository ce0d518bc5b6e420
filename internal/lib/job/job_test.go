package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to       string
	pointID  int64
	name     string
	city, uf string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) SendPointRegisteredEmail(to string, pointID int64, pointName, city, uf string) error {
	f.sent = append(f.sent, sentEmail{to, pointID, pointName, city, uf})
	return f.err
}

func newTestJobService(s PointRegisteredSender) *JobService {
	log := zerolog.Nop()
	return &JobService{emails: s, logger: &log}
}

func TestNewPointRegisteredTask(t *testing.T) {
	task, err := NewPointRegisteredTask(PointRegisteredPayload{
		PointID: 3, To: "a@b.com", Name: "Coleta", City: "Recife", UF: "PE",
	})
	require.NoError(t, err)

	assert.Equal(t, TaskPointRegistered, task.Type())

	var got map[string]any
	require.NoError(t, json.Unmarshal(task.Payload(), &got))
	assert.Equal(t, float64(3), got["point_id"])
	assert.Equal(t, "a@b.com", got["to"])
	assert.Equal(t, "PE", got["uf"])
}

func TestHandlePointRegisteredTask(t *testing.T) {
	fs := &fakeSender{}
	j := newTestJobService(fs)

	task, err := NewPointRegisteredTask(PointRegisteredPayload{
		PointID: 9, To: "x@y.com", Name: "Eco", City: "Natal", UF: "RN",
	})
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	require.Len(t, fs.sent, 1)
	assert.Equal(t, sentEmail{"x@y.com", 9, "Eco", "Natal", "RN"}, fs.sent[0])
}

func TestHandlePointRegisteredTask_SendFailureIsRetried(t *testing.T) {
	j := newTestJobService(&fakeSender{err: errors.New("provider down")})

	task, err := NewPointRegisteredTask(PointRegisteredPayload{PointID: 1, To: "x@y.com"})
	require.NoError(t, err)

	err = j.handlePointRegisteredTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandlePointRegisteredTask_BadPayloadSkipsRetry(t *testing.T) {
	fs := &fakeSender{}
	j := newTestJobService(fs)

	err := j.handlePointRegisteredTask(context.Background(), asynq.NewTask(TaskPointRegistered, []byte("{")))
	require.Error(t, err)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, fs.sent)
}
