package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

// Publisher announces finished extractions on a Redis pub/sub channel.
type Publisher struct {
	rdb     goredis.Cmdable
	channel string
}

// NewPublisher creates a publisher for the given channel.
func NewPublisher(rdb goredis.Cmdable, channel string) *Publisher {
	return &Publisher{rdb: rdb, channel: channel}
}

// ExtractionCompleted publishes the summary as JSON.
func (p *Publisher) ExtractionCompleted(ctx context.Context, summary domain.ExtractionSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("redis.Publisher: marshal: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis.Publisher: publish %s: %w", p.channel, err)
	}
	return nil
}
