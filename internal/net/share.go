// Package net shares a live, read-only view of a drawing surface with
// other machines on the local network.
package net

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/mdns"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	wsPath       = "/ws"
	snapshotPath = "/snapshot"
	statusPath   = "/status"
)

// Status is served as JSON on /status.
type Status struct {
	Name    string `json:"name"`
	Viewers int    `json:"viewers"`
	URL     string `json:"url"`
}

// Share serves a Hub over HTTP and advertises it with mDNS.
type Share struct {
	Hub  *Hub
	Name string
	URL  string

	srv    *http.Server
	mdns   *mdns.Server
	cancel context.CancelFunc
	done   chan struct{}
	Logger zerolog.Logger
}

// Handler routes the websocket feed, the last snapshot and a status page.
func Handler(h *Hub, name, url string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(wsPath, h)
	mux.HandleFunc(snapshotPath, func(w http.ResponseWriter, r *http.Request) {
		data := h.Last()
		if data == nil {
			http.Error(w, "no snapshot yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})
	mux.HandleFunc(statusPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Status{Name: name, Viewers: h.Count(), URL: url})
	})
	return mux
}

// StartShare listens on port and starts broadcasting. mDNS failure is
// logged and otherwise ignored since the link still works.
func StartShare(ctx context.Context, h *Hub, name string, port int, logger zerolog.Logger) (*Share, error) {
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on port %d", port)
	}
	port = ln.Addr().(*net.TCPAddr).Port

	ctx, cancel := context.WithCancel(ctx)
	s := &Share{
		Hub:    h,
		Name:   name,
		URL:    ShareURL(GetOutgoingIP(), port),
		cancel: cancel,
		done:   make(chan struct{}),
		Logger: logger,
	}
	s.srv = &http.Server{
		Handler:           Handler(h, name, s.URL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("[NET] share server stopped")
		}
	}()

	if s.mdns, err = advertise(name, port); err != nil {
		logger.Warn().Err(err).Msg("[NET] mDNS advertisement unavailable")
	}
	logger.Info().Str("URL", s.URL).Msg("[NET] sharing surface")
	return s, nil
}

// Close stops advertising, disconnects viewers and shuts the server down.
func (s *Share) Close() error {
	if s.mdns != nil {
		s.mdns.Shutdown()
	}
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	err := s.srv.Shutdown(ctx)
	<-s.done
	if err != nil {
		return errors.Wrap(err, "share shutdown")
	}
	return nil
}
