// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketSource(t *testing.T) {
	up := websocket.Upgrader{}
	readings := []Reading{
		{Label: OpenPalm, Confidence: 0.8, LandmarkX: 0.3, HandPresent: true},
		{Label: ClosedFist, Confidence: 0.9, LandmarkX: 0.7, HandPresent: true},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, rd := range readings {
			if err := conn.WriteJSON(rd); err != nil {
				return
			}
		}
		// hold the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ss := NewSocketSource(url)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := ss.Start(ctx)
	require.NoError(t, err)

	got := map[string]bool{}
	deadline := time.After(2 * time.Second)
	for len(got) < 1 {
		select {
		case rd, ok := <-ch:
			if !ok {
				t.Fatal("channel closed early")
			}
			got[rd.Label] = true
		case <-deadline:
			t.Fatal("no readings received")
		}
	}
	assert.NoError(t, ss.Close())
}

func TestSocketSourceLatestWins(t *testing.T) {
	ss := NewSocketSource("ws://unused")
	ss.readings = make(chan Reading, 1)
	ss.publish(Reading{Label: "a"})
	ss.publish(Reading{Label: "b"})
	ss.publish(Reading{Label: "c"})
	rd := <-ss.readings
	assert.Equal(t, "c", rd.Label, "stale readings are overwritten, not queued")
}

func TestSocketSourceNoURL(t *testing.T) {
	ss := NewSocketSource("")
	_, err := ss.Start(context.Background())
	assert.Error(t, err)
}
