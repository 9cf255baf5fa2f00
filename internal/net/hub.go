package net

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeWait = 5 * time.Second

// Hub fans surface snapshots out to websocket viewers. Each viewer gets
// the latest snapshot on connect and every later one as it is published.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	last  []byte

	pending  chan []byte
	upgrader websocket.Upgrader

	Logger zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		conns:   make(map[*websocket.Conn]struct{}),
		pending: make(chan []byte, 1),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		Logger: zerolog.Nop(),
	}
}

// Count is the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Last returns the most recently broadcast snapshot.
func (h *Hub) Last() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// ServeHTTP upgrades the request and keeps the viewer registered until it
// disconnects. Viewers never send anything meaningful; reads only detect
// the close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn().Err(err).Msg("[NET] websocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	if h.last != nil {
		h.write(conn, h.last)
	}
	h.mu.Unlock()
	h.Logger.Info().Str("Remote", conn.RemoteAddr().String()).Msg("[NET] viewer connected")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(conn)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
		h.Logger.Info().Str("Remote", conn.RemoteAddr().String()).Msg("[NET] viewer disconnected")
	}
}

// write must be called with h.mu held.
func (h *Hub) write(conn *websocket.Conn, data []byte) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.Logger.Debug().Err(err).Str("Remote", conn.RemoteAddr().String()).Msg("[NET] write failed")
		return false
	}
	return true
}

// Broadcast sends data to every viewer now, dropping viewers that fail.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	h.last = data
	var dead []*websocket.Conn
	for conn := range h.conns {
		if !h.write(conn, data) {
			dead = append(dead, conn)
		}
	}
	h.mu.Unlock()
	for _, conn := range dead {
		h.remove(conn)
	}
}

// Publish queues data for the Run loop without blocking. When the loop
// is behind, older snapshots are replaced by newer ones.
func (h *Hub) Publish(data []byte) {
	for {
		select {
		case h.pending <- data:
			return
		default:
		}
		select {
		case <-h.pending:
		default:
		}
	}
}

// Run broadcasts published snapshots until ctx is done, then disconnects
// every viewer.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case data := <-h.pending:
			h.Broadcast(data)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()
	for conn := range conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
		conn.Close()
	}
}
