// Package activity tells the application tracking side
// about new messages in job threads.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/nakamauwu/hirechat/types"
)

const (
	TypeMessageActivity = "application:message_activity"

	defaultQueue    = "applications"
	defaultMaxRetry = 5
	defaultTimeout  = time.Minute
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// AsynqSink enqueues one task per message activity.
// The application tracking workers consume them from Redis.
type AsynqSink struct {
	client enqueuer
	Queue  string
}

func NewAsynqSink(redisURL string) (*AsynqSink, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse asynq redis uri: %w", err)
	}

	return &AsynqSink{
		client: asynq.NewClient(opt),
		Queue:  defaultQueue,
	}, nil
}

func NewMessageActivityTask(in types.ApplicationActivity) (*asynq.Task, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("json marshal message activity: %w", err)
	}

	return asynq.NewTask(TypeMessageActivity, payload), nil
}

// ParseMessageActivityTask decodes the payload of a task built by [NewMessageActivityTask].
func ParseMessageActivityTask(task *asynq.Task) (types.ApplicationActivity, error) {
	var out types.ApplicationActivity
	if task.Type() != TypeMessageActivity {
		return out, fmt.Errorf("unexpected task type %q", task.Type())
	}

	if err := json.Unmarshal(task.Payload(), &out); err != nil {
		return out, fmt.Errorf("json unmarshal message activity: %w", err)
	}

	return out, nil
}

func (s *AsynqSink) MessageActivity(ctx context.Context, in types.ApplicationActivity) error {
	task, err := NewMessageActivityTask(in)
	if err != nil {
		return err
	}

	queue := s.Queue
	if queue == "" {
		queue = defaultQueue
	}

	_, err = s.client.EnqueueContext(ctx, task,
		asynq.Queue(queue),
		asynq.MaxRetry(defaultMaxRetry),
		asynq.Timeout(defaultTimeout),
	)
	if err != nil {
		return fmt.Errorf("enqueue message activity: %w", err)
	}

	return nil
}

func (s *AsynqSink) Close() error {
	return s.client.Close()
}

// LogSink only logs message activity.
// Used when no application queue is configured.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) MessageActivity(ctx context.Context, in types.ApplicationActivity) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "application message activity",
		"job_posting_id", in.JobPostingID,
		"candidate_id", in.CandidateID,
		"conversation_id", in.ConversationID,
		"message_id", in.MessageID,
	)
	return nil
}
