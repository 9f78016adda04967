package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// subscriberBuffer bounds the per-subscriber event queue. A subscriber
// that falls this far behind starts losing events (logged at Warn);
// the alternative would be stalling the connection read loop for every
// consumer.
const subscriberBuffer = 64

// defaultRequestTimeout bounds RPC calls that don't specify their own.
const defaultRequestTimeout = 30 * time.Second

// Conn is the gateway connection surface consumed by the streaming
// engine. *Client implements it; tests substitute fakes.
type Conn interface {
	// Request performs one RPC round-trip.
	Request(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error)
	// SendMessage fires a user message at a session. idempotencyKey
	// doubles as the runId correlating all resulting events.
	SendMessage(ctx context.Context, sessionKey, text, idempotencyKey string, opts SendOptions) error
	// History fetches up to limit recent messages for a session key.
	History(ctx context.Context, sessionKey string, limit int) (*HistoryResponse, error)
	// DeleteSession discards the remote ephemeral session state.
	DeleteSession(ctx context.Context, sessionKey string) error
	// Subscribe returns a channel of pushed events for one logical
	// channel plus an unsubscribe func. Unsubscribe is idempotent and
	// closes the channel.
	Subscribe(channel string) (<-chan Event, func())
}

// frame is the wire envelope. type is "req", "res", or "event".
type frame struct {
	Type   string          `json:"type"`
	ID     string          `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *frameError     `json:"error,omitempty"`
	Event  *Event          `json:"event,omitempty"`
}

type frameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *frameError) Err() error {
	return fmt.Errorf("gateway error %d: %s", e.Code, e.Message)
}

// Client is one persistent connection to a gateway instance. It is
// shared by all concurrent requests targeting that instance; runId
// filtering on the subscriber side is the only isolation between them.
type Client struct {
	instanceID string
	conn       *websocket.Conn

	writeMu sync.Mutex

	pendingMu sync.Mutex
	pending   map[string]chan frame

	subMu     sync.RWMutex
	subs      map[string]map[int]chan Event
	nextSubID int

	closeOnce sync.Once
	closed    chan struct{}
}

// Dial connects to a gateway instance and starts the read loop.
func Dial(ctx context.Context, instanceID, url string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial gateway %s: %w", instanceID, err)
	}
	// Agent responses and tool output can be large.
	conn.SetReadLimit(16 << 20)

	c := &Client{
		instanceID: instanceID,
		conn:       conn,
		pending:    make(map[string]chan frame),
		subs:       make(map[string]map[int]chan Event),
		closed:     make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// InstanceID returns the id of the instance this client is connected to.
func (c *Client) InstanceID() string { return c.instanceID }

// Close tears down the connection, fails all in-flight requests, and
// closes every subscriber channel.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.closed)

		c.pendingMu.Lock()
		for id, ch := range c.pending {
			close(ch)
			delete(c.pending, id)
		}
		c.pendingMu.Unlock()

		c.subMu.Lock()
		for channel, subs := range c.subs {
			for id, ch := range subs {
				close(ch)
				delete(subs, id)
			}
			delete(c.subs, channel)
		}
		c.subMu.Unlock()

		_ = c.conn.Close(websocket.StatusNormalClosure, "")
	})
	return nil
}

func (c *Client) readLoop() {
	defer func() { _ = c.Close() }()

	for {
		_, data, err := c.conn.Read(context.Background())
		if err != nil {
			select {
			case <-c.closed:
			default:
				slog.Warn("Gateway connection closed",
					"instance_id", c.instanceID, "error", err)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			slog.Warn("Invalid gateway frame",
				"instance_id", c.instanceID, "error", err)
			continue
		}

		switch f.Type {
		case "res":
			c.resolvePending(f)
		case "event":
			if f.Event != nil {
				c.dispatchEvent(*f.Event)
			}
		}
	}
}

func (c *Client) resolvePending(f frame) {
	c.pendingMu.Lock()
	ch, ok := c.pending[f.ID]
	if ok {
		delete(c.pending, f.ID)
	}
	c.pendingMu.Unlock()
	if ok {
		ch <- f
		close(ch)
	}
}

// dispatchEvent fans an event out to all subscribers of its channel.
// Slow subscribers lose events rather than stalling the read loop.
func (c *Client) dispatchEvent(ev Event) {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	for _, ch := range c.subs[ev.Channel] {
		select {
		case ch <- ev:
		default:
			slog.Warn("Dropping gateway event for slow subscriber",
				"instance_id", c.instanceID, "channel", ev.Channel)
		}
	}
}

// Subscribe implements Conn.
func (c *Client) Subscribe(channel string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	c.subMu.Lock()
	select {
	case <-c.closed:
		c.subMu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}
	if c.subs[channel] == nil {
		c.subs[channel] = make(map[int]chan Event)
	}
	id := c.nextSubID
	c.nextSubID++
	c.subs[channel][id] = ch
	c.subMu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			c.subMu.Lock()
			if subs := c.subs[channel]; subs != nil {
				if _, ok := subs[id]; ok {
					delete(subs, id)
					close(ch)
				}
			}
			c.subMu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Request implements Conn.
func (c *Client) Request(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	rawParams, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal %s params: %w", method, err)
	}

	id := uuid.New().String()
	respCh := make(chan frame, 1)

	c.pendingMu.Lock()
	select {
	case <-c.closed:
		c.pendingMu.Unlock()
		return nil, fmt.Errorf("gateway %s: connection closed", c.instanceID)
	default:
	}
	c.pending[id] = respCh
	c.pendingMu.Unlock()

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.write(reqCtx, frame{Type: "req", ID: id, Method: method, Params: rawParams}); err != nil {
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
		return nil, fmt.Errorf("send %s request: %w", method, err)
	}

	select {
	case resp, ok := <-respCh:
		if !ok {
			return nil, fmt.Errorf("gateway %s: connection closed", c.instanceID)
		}
		if resp.Error != nil {
			return nil, resp.Error.Err()
		}
		return resp.Result, nil
	case <-reqCtx.Done():
		c.pendingMu.Lock()
		delete(c.pending, id)
		c.pendingMu.Unlock()
		return nil, fmt.Errorf("%s request: %w", method, reqCtx.Err())
	}
}

func (c *Client) write(ctx context.Context, f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// SendMessage implements Conn.
func (c *Client) SendMessage(ctx context.Context, sessionKey, text, idempotencyKey string, opts SendOptions) error {
	params := map[string]any{
		"sessionKey":     sessionKey,
		"message":        text,
		"idempotencyKey": idempotencyKey,
	}
	if len(opts.Attachments) > 0 {
		params["attachments"] = opts.Attachments
	}
	_, err := c.Request(ctx, "chat.send", params, defaultRequestTimeout)
	return err
}

// History implements Conn.
func (c *Client) History(ctx context.Context, sessionKey string, limit int) (*HistoryResponse, error) {
	result, err := c.Request(ctx, "chat.history", map[string]any{
		"sessionKey": sessionKey,
		"limit":      limit,
	}, 10*time.Second)
	if err != nil {
		return nil, err
	}
	var resp HistoryResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, fmt.Errorf("decode chat.history response: %w", err)
	}
	return &resp, nil
}

// DeleteSession implements Conn.
func (c *Client) DeleteSession(ctx context.Context, sessionKey string) error {
	_, err := c.Request(ctx, "sessions.delete", map[string]any{"key": sessionKey}, 10*time.Second)
	return err
}
