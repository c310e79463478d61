package notify

import (
	"context"
	"time"

	model "gig-hire/internal/models"
	"gig-hire/utils"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=notify

// Transport delivers a payload over one live channel
type Transport interface {
	Send(ctx context.Context, channel string, n model.Notification) error
}

// Locator finds the live channel of an actor. *presence.Registry implements it.
type Locator interface {
	Lookup(actorID string) (string, bool)
}

// Publisher forwards a notification for an actor that is not connected to
// this process, so that another instance holding the connection can deliver it.
type Publisher interface {
	Publish(ctx context.Context, actorID string, n model.Notification) error
}

const defaultRelayTimeout = 2 * time.Second

// Dispatcher delivers notifications at most once, without retries or queuing.
// Delivery problems are logged and never reported to the caller.
type Dispatcher struct {
	presence  Locator
	transport Transport
	relay     Publisher

	relayTimeout time.Duration
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithRelay forwards notifications for actors that are offline locally
func WithRelay(p Publisher) Option {
	return func(d *Dispatcher) { d.relay = p }
}

// WithRelayTimeout bounds how long a relay publish may take
func WithRelayTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.relayTimeout = timeout
		}
	}
}

// NewDispatcher creates a dispatcher that resolves actors through presence
// and writes to transport
func NewDispatcher(presence Locator, transport Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		presence:     presence,
		transport:    transport,
		relayTimeout: defaultRelayTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notify sends n to actorID's live channel. If the actor is not connected here
// the message is handed to the relay, if any, and otherwise dropped.
func (d *Dispatcher) Notify(ctx context.Context, actorID string, n model.Notification) {
	if d.DeliverLocal(ctx, actorID, n) {
		return
	}
	if d.relay == nil {
		return
	}

	// the caller's request may already be finished; the publish is bounded on its own
	relayCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.relayTimeout)
	defer cancel()

	if err := d.relay.Publish(relayCtx, actorID, n); err != nil {
		utils.Warn("notify: relay publish failed", map[string]any{
			"actor_id": actorID,
			"error":    err.Error(),
		})
	}
}

// DeliverLocal attempts delivery through this process's presence registry and
// reports whether the actor was connected here.
func (d *Dispatcher) DeliverLocal(ctx context.Context, actorID string, n model.Notification) bool {
	channel, ok := d.presence.Lookup(actorID)
	if !ok {
		utils.Debug("notify: actor offline", map[string]any{"actor_id": actorID})
		return false
	}

	if err := d.transport.Send(ctx, channel, n); err != nil {
		utils.Warn("notify: delivery failed", map[string]any{
			"actor_id": actorID,
			"channel":  channel,
			"error":    err.Error(),
		})
		return true
	}

	utils.Debug("notify: delivered", map[string]any{"actor_id": actorID, "channel": channel})
	return true
}
