// internal/spectate/server.go
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
)

const writeTimeout = 2 * time.Second

// Message is one frame of the spectator feed.
type Message struct {
	Seq      uint64       `json:"seq"`
	Snapshot app.Snapshot `json:"snapshot"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Server рассылает зрителям последний снимок игры по websocket.
// Publish вызывается из игрового тика, рассылка идёт в своей горутине.
type Server struct {
	addr   string
	hz     int
	logger *slog.Logger

	mu      sync.Mutex
	latest  *app.Snapshot
	seq     uint64
	sent    uint64
	clients map[string]*client

	listener net.Listener
	ready    chan struct{}
}

func NewServer(addr string, logger *slog.Logger) *Server {
	return &Server{
		addr:    addr,
		hz:      config.SpectateHz,
		logger:  logger.With("component", "spectate"),
		clients: make(map[string]*client),
		ready:   make(chan struct{}),
	}
}

// Publish stores snap as the latest state. Older unsent snapshots are dropped.
func (s *Server) Publish(snap app.Snapshot) {
	s.mu.Lock()
	s.latest = &snap
	s.seq++
	s.mu.Unlock()
}

// Clients returns the number of connected spectators.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Addr returns the listening address once Run has started listening.
func (s *Server) Addr() string {
	<-s.ready
	return s.listener.Addr().String()
}

// Handler returns the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // зрители подключаются с любых origin
	})
	if err != nil {
		s.logger.Error("failed to accept", "error", err)
		return
	}
	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, 1)}
	ctx := conn.CloseRead(r.Context())

	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	s.logger.Info("spectator connected", "client_id", c.id, "remote", r.RemoteAddr)

	err = s.writeLoop(ctx, c)

	s.mu.Lock()
	delete(s.clients, c.id)
	s.mu.Unlock()
	conn.Close(websocket.StatusNormalClosure, "bye")
	s.logger.Info("spectator disconnected", "client_id", c.id, "error", err)
}

func (s *Server) writeLoop(ctx context.Context, c *client) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return fmt.Errorf("write to %s: %w", c.id, err)
			}
		}
	}
}

// Broadcast sends the latest snapshot to every spectator if it changed since
// the previous broadcast. Slow clients skip frames.
func (s *Server) Broadcast() error {
	s.mu.Lock()
	if s.latest == nil || s.seq == s.sent {
		s.mu.Unlock()
		return nil
	}
	msg := Message{Seq: s.seq, Snapshot: *s.latest}
	s.sent = s.seq
	targets := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		targets = append(targets, c)
	}
	s.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode snapshot %d: %w", msg.Seq, err)
	}
	for _, c := range targets {
		select {
		case c.send <- data:
		default:
			s.logger.Debug("spectator lagging, frame dropped", "client_id", c.id, "seq", msg.Seq)
		}
	}
	return nil
}

func (s *Server) broadcastLoop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.hz))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Broadcast(); err != nil {
				s.logger.Error("broadcast failed", "error", err)
			}
		}
	}
}

// Run listens on the configured address and broadcasts until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = ln
	close(s.ready)

	eg, ctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("spectator feed started", "addr", ln.Addr().String(), "hz", s.hz)

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		return s.broadcastLoop(ctx)
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
