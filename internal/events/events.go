package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"device-checkout-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Event types published after a transition commits
const (
	TypeRequestSubmitted = "request.submitted"
	TypeRequestProcessed = "request.processed"
	TypeRequestCancelled = "request.cancelled"
)

// Event is the JSON payload fanned out to subscribers. Subscribers re-read device state
// through the API; the payload only says what changed.
type Event struct {
	Type         string    `json:"type"`
	RequestID    string    `json:"request_id"`
	DeviceID     string    `json:"device_id"`
	ActorID      string    `json:"actor_id"`
	RequestType  string    `json:"request_type"`
	Status       string    `json:"status"`
	DeviceStatus string    `json:"device_status,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher delivers events. Delivery is best effort and never affects the committed transition.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// redisClient is the subset of *redis.Client the publisher needs
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher publishes events on a redis pub/sub channel
type RedisPublisher struct {
	client  redisClient
	channel string
	timeout time.Duration
}

// NewRedisPublisher creates a publisher on channel
func NewRedisPublisher(client redisClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, timeout: 2 * time.Second}
}

// Publish sends event as JSON
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, p.channel, err)
	}
	return nil
}

// NopPublisher drops every event; used when no redis address is configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// PublishAsync publishes in the background and logs failures. The request context is
// detached so a finished HTTP request does not cancel delivery.
func PublishAsync(ctx context.Context, p Publisher, event Event) {
	detached := context.WithoutCancel(ctx)
	go func() {
		if err := p.Publish(detached, event); err != nil {
			logger.WithContext(detached).WithError(err).
				WithField("event", event.Type).
				Warn("failed to publish event")
		}
	}()
}

// NewRedisClient opens a client and verifies it with PING
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}
