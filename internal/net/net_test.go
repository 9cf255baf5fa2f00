package net

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkBoard/internal/state"
	"InkBoard/internal/store"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + wsPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func read(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(data)
}

func TestHubBroadcast(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(Handler(h, "test", "ws://example"))
	defer srv.Close()

	h.Broadcast([]byte("one"))
	conn := dial(t, srv)
	assert.Equal(t, "one", read(t, conn))

	h.Broadcast([]byte("two"))
	assert.Equal(t, "two", read(t, conn))
	assert.Equal(t, 1, h.Count())
}

func TestPublishKeepsLatest(t *testing.T) {
	h := NewHub()
	h.Publish([]byte("a"))
	h.Publish([]byte("b"))
	h.Publish([]byte("c"))
	assert.Equal(t, "c", string(<-h.pending))
}

func TestMirror(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(Handler(h, "test", "ws://example"))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	s := state.NewSurface()
	stop := Mirror(s, h)
	defer stop()

	require.Eventually(t, func() bool { return h.Last() != nil }, 5*time.Second, 10*time.Millisecond)
	conn := dial(t, srv)
	read(t, conn)

	st := state.NewStroke(state.DefaultStyle())
	st.Samples = []state.Sample{state.NewSample(0, 0, 0.5), state.NewSample(10, 10, 0.5)}
	s.AddStroke(state.Foreground, st)

	got, err := store.Load(strings.NewReader(read(t, conn)))
	require.NoError(t, err)
	require.Equal(t, 1, got.StrokeCount(state.Foreground))
	assert.Equal(t, st.ID, got.Strokes(state.Foreground)[0].ID)
}

func TestHandlerSnapshotAndStatus(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(Handler(h, "desk", "ws://example/ws"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + snapshotPath)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	h.Broadcast([]byte(`{"version":1}`))
	resp, err = http.Get(srv.URL + snapshotPath)
	require.NoError(t, err)
	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, 1, body["version"])

	resp, err = http.Get(srv.URL + statusPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	var st Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, Status{Name: "desk", URL: "ws://example/ws"}, st)
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "ws://192.168.1.4:8420/ws", ShareURL("192.168.1.4", 8420))
	assert.Equal(t, "ws://[::1]:80/ws", ShareURL("::1", 80))
}
