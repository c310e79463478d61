package notify

import (
	"context"
	"encoding/json"
	"fmt"

	model "gig-hire/internal/models"
	"gig-hire/utils"

	"github.com/redis/go-redis/v9"
)

// DeliverFunc delivers a notification to a locally connected actor
type DeliverFunc func(ctx context.Context, actorID string, n model.Notification) bool

// relayEnvelope is the message published on the relay channel
type relayEnvelope struct {
	Origin  string `json:"origin"`
	ActorID string `json:"actor_id"`
	Message string `json:"message"`
}

// RedisRelay fans notifications out to every instance over Redis pub/sub.
// Pub/sub does not buffer for absent subscribers, which keeps delivery
// at-most-once.
type RedisRelay struct {
	client  *redis.Client
	channel string
	origin  string
}

// NewRedisRelay publishes and subscribes on channel. origin identifies this
// process so it ignores its own messages.
func NewRedisRelay(client *redis.Client, channel, origin string) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, origin: origin}
}

// Publish implements Publisher
func (r *RedisRelay) Publish(ctx context.Context, actorID string, n model.Notification) error {
	payload, err := json.Marshal(relayEnvelope{Origin: r.origin, ActorID: actorID, Message: n.Message})
	if err != nil {
		return fmt.Errorf("relay: encode envelope: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("relay: publish to %s: %w", r.channel, err)
	}
	return nil
}

// Run subscribes to the relay channel and hands each foreign message to
// deliver until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context, deliver DeliverFunc) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("relay: subscribe to %s: %w", r.channel, err)
	}
	utils.Info("relay: subscribed", map[string]any{"channel": r.channel, "origin": r.origin})

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.handle(ctx, msg.Payload, deliver)
		}
	}
}

func (r *RedisRelay) handle(ctx context.Context, payload string, deliver DeliverFunc) {
	var env relayEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		utils.Warn("relay: malformed envelope", map[string]any{"error": err.Error()})
		return
	}
	if env.Origin == r.origin || env.ActorID == "" {
		return
	}
	deliver(ctx, env.ActorID, model.Notification{Message: env.Message})
}
