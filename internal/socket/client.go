package socket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"github.com/ivanpodgorny/lieferspatz/internal/metrics"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Frame сообщение сокета: имя события и его данные.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Handler func(data json.RawMessage) error

// Client подключение к серверу уведомлений. После каждого подключения
// вызывает обработчик OnConnect, входящие события передает обработчикам,
// зарегистрированным через On. При разрыве переподключается с
// экспоненциальной задержкой.
type Client struct {
	url       string
	dialer    *websocket.Dialer
	log       *zap.Logger
	handlers  map[string]Handler
	onConnect func(c *Client) error
	conn      *websocket.Conn
	backoff   func() backoff.BackOff
	mu        sync.Mutex
	writeMu   sync.Mutex
}

func New(url string, log *zap.Logger) *Client {
	return &Client{
		url:      url,
		dialer:   websocket.DefaultDialer,
		log:      log,
		handlers: map[string]Handler{},
		backoff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(500*time.Millisecond),
				backoff.WithMaxInterval(30*time.Second),
				backoff.WithMaxElapsedTime(0),
			)
		},
	}
}

// On регистрирует обработчик события. Вызывать до Run.
func (c *Client) On(event string, h Handler) {
	c.handlers[event] = h
}

// OnConnect задает действие, выполняемое после каждого подключения.
func (c *Client) OnConnect(fn func(c *Client) error) {
	c.onConnect = fn
}

// Emit отправляет событие серверу.
func (c *Client) Emit(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return inerr.ErrNotConnected
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := conn.WriteJSON(Frame{Event: event, Data: data}); err != nil {
		return err
	}
	metrics.SocketEventsTotal.WithLabelValues(event, "out").Inc()

	return nil
}

// Run подключается к серверу и читает события до отмены контекста.
func (c *Client) Run(ctx context.Context) error {
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		c.serve(ctx, conn)

		if ctx.Err() != nil {
			return nil
		}
		c.log.Warn("socket disconnected, reconnecting")
	}
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	var conn *websocket.Conn

	operation := func() error {
		var err error
		conn, _, err = c.dialer.DialContext(ctx, c.url, nil)

		return err
	}
	notify := func(err error, d time.Duration) {
		c.log.Warn("socket dial failed", zap.Error(err), zap.Duration("retry_in", d))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(c.backoff(), ctx), notify); err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.url, err)
	}

	return conn, nil
}

func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	metrics.SocketConnected.Set(1)
	c.log.Info("socket connected", zap.String("url", c.url))

	done := make(chan struct{})
	defer func() {
		close(done)
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		_ = conn.Close()
		metrics.SocketConnected.Set(0)
	}()

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	if c.onConnect != nil {
		if err := c.onConnect(c); err != nil {
			c.log.Error("socket on connect failed", zap.Error(err))
		}
	}

	for {
		frame := Frame{}
		if err := conn.ReadJSON(&frame); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				c.log.Warn("malformed socket frame", zap.Error(err))

				continue
			}
			if ctx.Err() == nil {
				c.log.Warn("socket read failed", zap.Error(err))
			}

			return
		}

		c.handle(frame)
	}
}

func (c *Client) handle(f Frame) {
	metrics.SocketEventsTotal.WithLabelValues(f.Event, "in").Inc()

	h, ok := c.handlers[f.Event]
	if !ok {
		c.log.Debug("unhandled socket event", zap.String("event", f.Event))

		return
	}

	if err := h(f.Data); err != nil {
		c.log.Error("socket event handler failed", zap.String("event", f.Event), zap.Error(err))
	}
}
