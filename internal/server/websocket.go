package server

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/magefree/duel-server-go/internal/config"
	"github.com/magefree/duel-server-go/internal/fileio"
	"github.com/magefree/duel-server-go/internal/game"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultMaxMessageSize = 4 << 20
)

// Runner plays a decoded session and streams its results.
type Runner interface {
	Stream(ctx context.Context, in *fileio.Input, emit func(game.Result) error) error
}

// RunnerFactory creates a fresh runner, and so a fresh scoreboard, per connection.
type RunnerFactory func() Runner

// StatusMessage is the final frame of a connection.
type StatusMessage struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// SessionHandler accepts one input document per websocket connection, plays
// it and streams every result record back as a JSON text frame.
type SessionHandler struct {
	newRunner      RunnerFactory
	logger         *zap.Logger
	upgrader       websocket.Upgrader
	writeWait      time.Duration
	maxMessageSize int64
}

// NewSessionHandler builds the websocket endpoint.
func NewSessionHandler(cfg config.WebSocketConfig, newRunner RunnerFactory, logger *zap.Logger) *SessionHandler {
	h := &SessionHandler{
		newRunner:      newRunner,
		logger:         logger,
		writeWait:      cfg.WriteTimeout,
		maxMessageSize: cfg.MaxMessageSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	if h.writeWait <= 0 {
		h.writeWait = defaultWriteWait
	}
	if h.maxMessageSize <= 0 {
		h.maxMessageSize = defaultMaxMessageSize
	}
	return h
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.maxMessageSize)
	_, message, err := conn.ReadMessage()
	if err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			h.logger.Warn("websocket read error", zap.Error(err))
		}
		return
	}

	in, err := fileio.DecodeInput(bytes.NewReader(message), fileio.FormatJSON)
	if err != nil {
		h.finish(conn, StatusMessage{Status: "error", Error: err.Error()})
		return
	}

	count := 0
	err = h.newRunner().Stream(r.Context(), in, func(res game.Result) error {
		count++
		return h.write(conn, res)
	})
	if err != nil {
		h.logger.Warn("session aborted", zap.Error(err), zap.Int("results", count))
		h.finish(conn, StatusMessage{Status: "error", Results: count, Error: err.Error()})
		return
	}
	h.finish(conn, StatusMessage{Status: "done", Results: count})
}

func (h *SessionHandler) write(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}

func (h *SessionHandler) finish(conn *websocket.Conn, msg StatusMessage) {
	if err := h.write(conn, msg); err != nil {
		h.logger.Debug("failed to send status", zap.Error(err))
		return
	}
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, msg.Status)
	_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(h.writeWait))
}

// StartWebSocketServer serves the session endpoint until ctx is cancelled.
func StartWebSocketServer(ctx context.Context, cfg config.WebSocketConfig, newRunner RunnerFactory, logger *zap.Logger) error {
	path := cfg.Path
	if path == "" {
		path = "/session"
	}
	mux := http.NewServeMux()
	mux.Handle(path, NewSessionHandler(cfg, newRunner, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting WebSocket server",
			zap.String("address", cfg.Address),
			zap.String("path", path),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
