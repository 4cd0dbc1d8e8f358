// internal/transport/client.go

// Package transport maintains the receive-only websocket connection to
// the ontime service. It owns reconnect and heartbeat entirely; the
// engine only observes lifecycle transitions through Events callbacks.
package transport

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Path of the ontime websocket endpoint.
	wsPath = "/ws"

	reconnectDelay = 2 * time.Second
	pingInterval   = 10 * time.Second
	pongWait       = 3 * pingInterval
	writeWait      = 5 * time.Second
)

// Events are the callbacks fired on the connection lifecycle.
// Any nil callback is skipped. Callbacks must not block: the read
// loop stalls while they run.
type Events struct {
	OnConnected    func()
	OnDisconnected func()
	OnError        func(err error)
	OnMessage      func(raw []byte)
}

// Client dials the ontime feed and keeps redialing until its context
// is cancelled. It never sends application data.
type Client struct {
	url    string
	events Events
	dialer *websocket.Dialer
}

// New builds a client for the given ontime host and port.
func New(host string, port int, events Events) *Client {
	u := url.URL{
		Scheme: "ws",
		Host:   host + ":" + strconv.Itoa(port),
		Path:   wsPath,
	}

	return &Client{
		url:    u.String(),
		events: events,
		dialer: websocket.DefaultDialer,
	}
}

// URL returns the websocket endpoint the client dials.
func (c *Client) URL() string {
	return c.url
}

// Run blocks until ctx is cancelled, dialing and serving connections
// with a fixed delay between attempts.
func (c *Client) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := c.dialer.DialContext(ctx, c.url, nil) //nolint:bodyclose // gorilla owns the response body
		if err != nil {
			log.Debug().Err(err).Str("url", c.url).Msg("transport: dial failed")
			if !sleepCtx(ctx, reconnectDelay) {
				return
			}
			continue
		}

		log.Info().Str("url", c.url).Msg("transport: connected")
		fire(c.events.OnConnected)

		c.serve(ctx, conn)

		log.Info().Msg("transport: disconnected")
		fire(c.events.OnDisconnected)

		if !sleepCtx(ctx, reconnectDelay) {
			return
		}
	}
}

// serve reads messages until the connection dies or ctx is cancelled.
func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("transport: error closing websocket")
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Heartbeat and ctx-cancel watcher. Closing the connection is what
	// unblocks the read loop below.
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				_ = conn.Close()
				return
			case <-ticker.C:
				deadline := time.Now().Add(writeWait)
				if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
					log.Debug().Err(err).Msg("transport: ping failed")
					_ = conn.Close()
					return
				}
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Warn().Err(err).Msg("transport: read error")
				fireErr(c.events.OnError, err)
			}
			return
		}

		if c.events.OnMessage != nil {
			c.events.OnMessage(raw)
		}
	}
}

// sleepCtx waits d or until ctx is cancelled. Reports whether the
// full delay elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func fire(f func()) {
	if f != nil {
		f()
	}
}

func fireErr(f func(error), err error) {
	if f != nil {
		f(err)
	}
}
