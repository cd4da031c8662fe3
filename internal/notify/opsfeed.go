package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const opsFeedKeyPrefix = "ops_feed:"

// OpsFeedNotifier pushes alert messages onto a per-recipient Redis list
// consumed by the operations dashboard. Delivery is the enqueue itself; a
// failed LPUSH is reported as a channel failure.
type OpsFeedNotifier struct {
	redisClient *redis.Client
}

// NewOpsFeedNotifier creates the ops feed channel.
func NewOpsFeedNotifier(client *redis.Client) *OpsFeedNotifier {
	return &OpsFeedNotifier{redisClient: client}
}

// Name implements Notifier.
func (p *OpsFeedNotifier) Name() string { return "opsfeed" }

// Send enqueues the message on the recipient's feed.
func (p *OpsFeedNotifier) Send(ctx context.Context, recipient string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal ops feed message: %w", err)
	}
	if err := p.redisClient.LPush(ctx, opsFeedKeyPrefix+recipient, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish message to ops feed: %w", err)
	}
	return nil
}
