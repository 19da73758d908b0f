package jobs

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
	"github.com/sandeepkv93/notes-ai-backend/internal/service"
)

// Client submits jobs to the queue.
type Client struct {
	client *asynq.Client
}

func NewClient(redisOpts asynq.RedisClientOpt) *Client {
	return &Client{client: asynq.NewClient(redisOpts)}
}

func (c *Client) EnqueueVerificationCode(ctx context.Context, msg service.VerificationCodeMessage) (*asynq.TaskInfo, error) {
	task, err := NewVerificationCodeTask(msg)
	if err != nil {
		return nil, err
	}
	return c.client.EnqueueContext(ctx, task, asynq.Queue(QueueDefault))
}

func (c *Client) Close() error {
	return c.client.Close()
}

// QueueCodeNotifier hands codes to the worker instead of talking to the
// relay inline. A successful enqueue counts as a successful dispatch.
type QueueCodeNotifier struct {
	client *Client
}

func NewQueueCodeNotifier(client *Client) *QueueCodeNotifier {
	return &QueueCodeNotifier{client: client}
}

func (n *QueueCodeNotifier) SendVerificationCode(ctx context.Context, msg service.VerificationCodeMessage) error {
	if _, err := n.client.EnqueueVerificationCode(ctx, msg); err != nil {
		observability.RecordMailDispatch(ctx, "queue", "failure")
		return err
	}
	observability.RecordMailDispatch(ctx, "queue", "success")
	return nil
}
