// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cogentcore.org/core/base/logx"
	"github.com/gorilla/websocket"
)

// SocketSource reads JSON [Reading] frames from a websocket endpoint,
// typically the browser-side hand-landmark classifier. It reconnects
// with backoff on connection loss and keeps only the latest reading:
// if the consumer lags, stale readings are dropped, never queued.
type SocketSource struct {

	// URL is the websocket endpoint (ws:// or wss://).
	URL string

	// Backoff is the initial reconnect delay, doubled up to MaxBackoff.
	Backoff time.Duration `default:"500ms"`

	// MaxBackoff caps the reconnect delay.
	MaxBackoff time.Duration `default:"10s"`

	mu       sync.Mutex
	conn     *websocket.Conn
	readings chan Reading
	done     chan struct{}
}

// NewSocketSource returns a source for the given endpoint.
func NewSocketSource(url string) *SocketSource {
	return &SocketSource{URL: url, Backoff: 500 * time.Millisecond, MaxBackoff: 10 * time.Second}
}

// Start dials the endpoint and launches the read loop. The returned
// channel carries at most the latest reading and closes when the
// context is canceled or Close is called.
func (ss *SocketSource) Start(ctx context.Context) (<-chan Reading, error) {
	if ss.URL == "" {
		return nil, fmt.Errorf("gesture.SocketSource: no URL")
	}
	ss.readings = make(chan Reading, 1)
	ss.done = make(chan struct{})
	go ss.run(ctx)
	return ss.readings, nil
}

func (ss *SocketSource) run(ctx context.Context) {
	defer close(ss.readings)
	backoff := ss.Backoff
	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, ss.URL, nil)
		if err != nil {
			logx.PrintfDebug("gesture: dial %s: %v", ss.URL, err)
			select {
			case <-ctx.Done():
				return
			case <-ss.done:
				return
			case <-time.After(backoff):
			}
			if backoff *= 2; backoff > ss.MaxBackoff {
				backoff = ss.MaxBackoff
			}
			continue
		}
		backoff = ss.Backoff
		ss.mu.Lock()
		ss.conn = conn
		ss.mu.Unlock()

		// unblock ReadJSON when the context is canceled
		stop := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
			case <-ss.done:
			case <-stop:
			}
			conn.Close()
		}()

		for {
			var rd Reading
			if err := conn.ReadJSON(&rd); err != nil {
				close(stop)
				break
			}
			ss.publish(rd)
		}

		select {
		case <-ctx.Done():
			return
		case <-ss.done:
			return
		default: // connection dropped; redial
		}
	}
}

// publish delivers a reading, overwriting a pending stale one.
func (ss *SocketSource) publish(rd Reading) {
	select {
	case ss.readings <- rd:
		return
	default:
	}
	select {
	case <-ss.readings:
	default:
	}
	select {
	case ss.readings <- rd:
	default:
	}
}

// Close releases the socket and stops the read loop.
func (ss *SocketSource) Close() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.done != nil {
		select {
		case <-ss.done:
		default:
			close(ss.done)
		}
	}
	if ss.conn != nil {
		return ss.conn.Close()
	}
	return nil
}
