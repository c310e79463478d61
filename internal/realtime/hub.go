// Package realtime keeps one websocket per connected actor and pushes
// notifications to it. Connections are announced to and withdrawn from the
// presence registry as they open and close.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gig-hire/internal/auth"
	model "gig-hire/internal/models"
	"gig-hire/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	// ErrUnknownChannel is returned by Send for a channel that is not open here
	ErrUnknownChannel = errors.New("realtime: unknown channel")
	// ErrOutboxFull is returned by Send when the connection is not keeping up
	ErrOutboxFull = errors.New("realtime: outbox full")
	// ErrHubClosed is returned by Send after Close
	ErrHubClosed = errors.New("realtime: hub closed")
)

// Presence receives connection lifecycle events. *presence.Registry implements it.
type Presence interface {
	Register(actorID, channel string) bool
	Unregister(channel string) []string
}

// Options tunes the hub
type Options struct {
	OutboxSize     int
	WriteTimeout   time.Duration
	AllowedOrigins []string
	CookieName     string
}

const (
	defaultOutboxSize   = 16
	defaultWriteTimeout = 5 * time.Second
	maxFrameSize        = 4096
)

// clientFrame is what browsers may send after connecting
type clientFrame struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

type conn struct {
	actorID string
	ws      *websocket.Conn
	outbox  chan model.Notification
	done    chan struct{}
	once    sync.Once
}

func (c *conn) stop() {
	c.once.Do(func() { close(c.done) })
}

// Hub owns the open websocket connections of this process
type Hub struct {
	presence Presence
	verifier auth.Verifier
	opts     Options
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	conns  map[string]*conn // key: channel
	closed bool
	wg     sync.WaitGroup
}

// NewHub creates a hub that authenticates upgrades with verifier
func NewHub(presence Presence, verifier auth.Verifier, opts Options) *Hub {
	if opts.OutboxSize <= 0 {
		opts.OutboxSize = defaultOutboxSize
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.CookieName == "" {
		opts.CookieName = "token"
	}

	h := &Hub{
		presence: presence,
		verifier: verifier,
		opts:     opts,
		conns:    make(map[string]*conn),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		// not a browser
		return true
	}
	for _, allowed := range h.opts.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// ServeWS handles GET /ws
func (h *Hub) ServeWS(c *gin.Context) {
	actorID, err := h.verifier.Verify(auth.Credential(c, h.opts.CookieName))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("authentication required: %w", err), "authentication required")
		utils.Warn("ServeWS: rejected upgrade", map[string]any{"error": err.Error()})
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		utils.Warn("ServeWS: upgrade failed", map[string]any{"actor_id": actorID, "error": err.Error()})
		return
	}

	channel := utils.GenerateID()
	cn := &conn{
		actorID: actorID,
		ws:      ws,
		outbox:  make(chan model.Notification, h.opts.OutboxSize),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = ws.Close()
		return
	}
	h.conns[channel] = cn
	h.wg.Add(2)
	h.mu.Unlock()

	h.presence.Register(actorID, channel)
	utils.Info("ServeWS: connected", map[string]any{"actor_id": actorID, "channel": channel})

	go h.writeLoop(channel, cn)
	go h.readLoop(channel, cn)
}

// Send queues n on channel without blocking
func (h *Hub) Send(_ context.Context, channel string, n model.Notification) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrHubClosed
	}
	cn, ok := h.conns[channel]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	select {
	case <-cn.done:
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	case cn.outbox <- n:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrOutboxFull, channel)
	}
}

// Len returns the number of open connections
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close terminates every connection and waits for their goroutines
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	conns := make([]*conn, 0, len(h.conns))
	for _, cn := range h.conns {
		conns = append(conns, cn)
	}
	h.mu.Unlock()

	for _, cn := range conns {
		cn.stop()
		_ = cn.ws.Close()
	}
	h.wg.Wait()
}

func (h *Hub) readLoop(channel string, cn *conn) {
	defer h.wg.Done()
	defer h.disconnect(channel, cn)

	cn.ws.SetReadLimit(maxFrameSize)
	for {
		_, data, err := cn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Debug("realtime: read error", map[string]any{"channel": channel, "error": err.Error()})
			}
			return
		}
		h.handleFrame(channel, cn, data)
	}
}

// handleFrame accepts add-user announcements for the authenticated actor
// only. Any other frame is ignored.
func (h *Hub) handleFrame(channel string, cn *conn, data []byte) {
	var f clientFrame
	if err := json.Unmarshal(data, &f); err != nil || f.Type != "add-user" {
		return
	}
	if f.UserID != cn.actorID {
		utils.Warn("realtime: add-user for another actor ignored", map[string]any{
			"channel":  channel,
			"actor_id": cn.actorID,
			"user_id":  f.UserID,
		})
		return
	}
	h.presence.Register(cn.actorID, channel)
}

func (h *Hub) writeLoop(channel string, cn *conn) {
	defer h.wg.Done()

	for {
		select {
		case <-cn.done:
			return
		case n := <-cn.outbox:
			_ = cn.ws.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout))
			if err := cn.ws.WriteJSON(n); err != nil {
				utils.Warn("realtime: write failed", map[string]any{"channel": channel, "error": err.Error()})
				_ = cn.ws.Close()
				return
			}
		}
	}
}

func (h *Hub) disconnect(channel string, cn *conn) {
	cn.stop()
	_ = cn.ws.Close()

	h.mu.Lock()
	delete(h.conns, channel)
	h.mu.Unlock()

	removed := h.presence.Unregister(channel)
	utils.Info("realtime: disconnected", map[string]any{
		"actor_id": cn.actorID,
		"channel":  channel,
		"removed":  len(removed),
	})
}
