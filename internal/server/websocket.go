package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/errors"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/logging"
	"github.com/srikrishnadeveloper/ONESTOPDEV-sub001/internal/tools"
)

// Time allowed to write a reply to the peer.
const writeWait = 10 * time.Second

// LiveRequest is a message sent by a live editor.
type LiveRequest struct {
	ID      string            `json:"id"`
	Tool    string            `json:"tool"`
	Input   string            `json:"input"`
	Options map[string]string `json:"options,omitempty"`
}

// LiveReply answers the LiveRequest with the same ID.
type LiveReply struct {
	ID       string          `json:"id"`
	Response *tools.Response `json:"response,omitempty"`
	Error    *APIError       `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.config.AllowedOrigins,
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "WebSocket upgrade rejected", "origin", r.Header.Get("Origin"))
		return
	}
	defer conn.CloseNow()

	conn.SetReadLimit(s.maxBodyBytes)

	session := &liveSession{
		conn:     conn,
		registry: s.registry,
		debounce: s.config.Debounce,
		logger:   s.logger,
	}
	session.run(r.Context())
}

// liveSession serves one connection. Requests that arrive within the
// debounce window of a newer request are dropped without a reply; only the
// latest one runs.
type liveSession struct {
	conn     *websocket.Conn
	registry *tools.Registry
	debounce time.Duration
	logger   logging.Logger
}

func (ls *liveSession) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	incoming := make(chan LiveRequest, 16)
	go ls.readLoop(ctx, incoming)

	var (
		latest  *LiveRequest
		timer   *time.Timer
		settled <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			ls.conn.Close(websocket.StatusGoingAway, "server shutting down")
			return

		case req, ok := <-incoming:
			if !ok {
				return
			}
			if ls.debounce <= 0 {
				ls.process(ctx, req)
				continue
			}
			latest = &req
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(ls.debounce)
			settled = timer.C

		case <-settled:
			settled = nil
			if latest != nil {
				req := *latest
				latest = nil
				ls.process(ctx, req)
			}
		}
	}
}

// readLoop decodes messages until the connection fails. Malformed messages
// are answered with an error and do not end the session.
func (ls *liveSession) readLoop(ctx context.Context, incoming chan<- LiveRequest) {
	defer close(incoming)

	for {
		typ, data, err := ls.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
				ls.logger.Debug(ctx, "WebSocket read ended", "error", err.Error())
			}
			return
		}
		if typ != websocket.MessageText {
			ls.reply(ctx, LiveReply{Error: &APIError{
				Type:    string(errors.ErrorTypeInvalidInput),
				Code:    errors.ErrCodeInvalidJSON,
				Message: "messages must be JSON text",
			}})
			continue
		}

		var req LiveRequest
		if err := json.Unmarshal(data, &req); err != nil {
			ls.reply(ctx, LiveReply{Error: &APIError{
				Type:    string(errors.ErrorTypeInvalidInput),
				Code:    errors.ErrCodeInvalidJSON,
				Message: "message is not a valid live request: " + err.Error(),
			}})
			continue
		}

		select {
		case incoming <- req:
		case <-ctx.Done():
			return
		}
	}
}

func (ls *liveSession) process(ctx context.Context, req LiveRequest) {
	resp, err := ls.registry.Run(ctx, req.Tool, tools.Request{Input: req.Input, Options: req.Options})
	reply := LiveReply{ID: req.ID, Response: resp}
	if err != nil {
		reply.Response = nil
		reply.Error, _ = toAPIError(err)
	}
	ls.reply(ctx, reply)
}

func (ls *liveSession) reply(ctx context.Context, reply LiveReply) {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()

	if err := wsjson.Write(ctx, ls.conn, reply); err != nil {
		ls.logger.Debug(ctx, "WebSocket write failed", "id", reply.ID, "error", err.Error())
	}
}
