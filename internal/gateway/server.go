// Package gateway is the development stand-in for the messaging-network
// connector: a websocket endpoint that feeds inbound events to the dialogue
// core and streams outbound actions back, plus health and metrics routes.
// Production connectors live outside this repository and talk the same
// transport types.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"zapdesk/callguard"
	"zapdesk/dispatch"
	"zapdesk/internal/observability"
	"zapdesk/transport"
)

// inboundFrame is one client frame: a conversational message or a batch of
// call-signaling events.
type inboundFrame struct {
	Type    string                    `json:"type"`
	Message *transport.InboundMessage `json:"message,omitempty"`
	Calls   []transport.CallEvent     `json:"calls,omitempty"`
}

type Server struct {
	logger     *slog.Logger
	dispatcher *dispatch.Dispatcher
	guard      *callguard.Guard
	hub        *Hub
	upgrader   websocket.Upgrader
}

func New(logger *slog.Logger, dispatcher *dispatch.Dispatcher, guard *callguard.Guard, hub *Hub, allowAnyOrigin bool) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:     logger,
		dispatcher: dispatcher,
		guard:      guard,
		hub:        hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				if allowAnyOrigin {
					return true
				}
				origin := strings.TrimSpace(r.Header.Get("Origin"))
				if origin == "" {
					// Non-browser clients often omit Origin. Allow them.
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				if u.Scheme != "http" && u.Scheme != "https" {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})
	r.Get("/v1/ws", s.handleWS)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws_upgrade_error", "error", err.Error())
		return
	}
	s.hub.add(conn)
	defer func() {
		s.hub.remove(conn)
		_ = conn.Close()
	}()
	s.logger.Info("ws_client_connected", "remote", r.RemoteAddr)

	ctx := r.Context()
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			s.logger.Info("ws_client_disconnected", "remote", r.RemoteAddr, "reason", err.Error())
			return
		}
		var frame inboundFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			s.logger.Warn("ws_frame_error", "error", err.Error())
			continue
		}
		s.route(ctx, frame)
	}
}

func (s *Server) route(ctx context.Context, frame inboundFrame) {
	switch frame.Type {
	case "message":
		if frame.Message == nil || strings.TrimSpace(frame.Message.JID) == "" {
			s.logger.Warn("ws_frame_error", "error", "message frame without message or jid")
			return
		}
		if err := s.dispatcher.EnqueueMessage(ctx, *frame.Message); err != nil {
			s.logger.Warn("event_enqueue_error", "jid", frame.Message.JID, "error", err.Error())
		}
	case "call":
		s.guard.HandleCalls(ctx, frame.Calls)
	default:
		s.logger.Warn("ws_frame_error", "error", "unknown frame type", "type", frame.Type)
	}
}
