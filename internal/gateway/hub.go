package gateway

import (
	"context"
	"errors"
	"sync"

	"github.com/gorilla/websocket"

	"zapdesk/transport"
)

// outboundFrame is one action serialized onto every connected socket.
type outboundFrame struct {
	Type      string              `json:"type"`
	To        string              `json:"to,omitempty"`
	Text      string              `json:"text,omitempty"`
	Data      []byte              `json:"data,omitempty"`
	Caption   string              `json:"caption,omitempty"`
	MimeType  string              `json:"mime_type,omitempty"`
	FileName  string              `json:"file_name,omitempty"`
	Menu      *transport.MenuSpec `json:"menu,omitempty"`
	CallID    string              `json:"call_id,omitempty"`
	CallerJID string              `json:"caller_jid,omitempty"`
}

// Hub implements transport.Sender over the set of currently connected
// websocket clients. With no client connected, sends fail; the core treats
// that like any other transport failure (logged, not fatal).
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]*sync.Mutex
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]*sync.Mutex)}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = &sync.Mutex{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *Hub) broadcast(frame outboundFrame) error {
	h.mu.Lock()
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.conns))
	for conn, wmu := range h.conns {
		targets[conn] = wmu
	}
	h.mu.Unlock()

	if len(targets) == 0 {
		return errors.New("gateway: no transport client connected")
	}

	var firstErr error
	for conn, wmu := range targets {
		// gorilla/websocket allows one concurrent writer per conn.
		wmu.Lock()
		err := conn.WriteJSON(frame)
		wmu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (h *Hub) SendText(_ context.Context, to, text string) error {
	return h.broadcast(outboundFrame{Type: "text", To: to, Text: text})
}

func (h *Hub) SendImage(_ context.Context, to string, data []byte, caption string) error {
	return h.broadcast(outboundFrame{Type: "image", To: to, Data: data, Caption: caption})
}

func (h *Hub) SendDocument(_ context.Context, to string, data []byte, mimeType, fileName string) error {
	return h.broadcast(outboundFrame{Type: "document", To: to, Data: data, MimeType: mimeType, FileName: fileName})
}

func (h *Hub) SendMenu(_ context.Context, to string, menu transport.MenuSpec) error {
	return h.broadcast(outboundFrame{Type: "menu", To: to, Menu: &menu})
}

func (h *Hub) RejectCall(_ context.Context, callID, callerJID string) error {
	return h.broadcast(outboundFrame{Type: "reject_call", CallID: callID, CallerJID: callerJID})
}
