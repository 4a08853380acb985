// Package callguard rejects incoming voice/video calls exactly once per
// call id, even when the connector re-delivers the same signaling event.
package callguard

import (
	"context"
	"log/slog"
	"sync"

	"zapdesk/internal/observability"
	"zapdesk/transport"
)

// Sender is the slice of the connector the guard needs.
type Sender interface {
	RejectCall(ctx context.Context, callID, callerJID string) error
	SendText(ctx context.Context, to, text string) error
}

const rejectNotice = "📞 *Chamada Rejeitada*\n\nDesculpe, não aceito chamadas de voz ou vídeo. Use mensagens para atendimento rápido e eficiente! 😊"

// Guard tracks which call ids were already rejected. A terminate event
// forgets the id, so the set stays bounded by the number of live calls.
type Guard struct {
	sender  Sender
	logger  *slog.Logger
	metrics *observability.Metrics

	mu       sync.Mutex
	rejected map[string]struct{}
}

func New(sender Sender, logger *slog.Logger, metrics *observability.Metrics) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		sender:   sender,
		logger:   logger,
		metrics:  metrics,
		rejected: make(map[string]struct{}),
	}
}

// HandleCalls processes a batch of signaling events. Transport failures are
// logged and never abort the sibling action or the rest of the batch.
func (g *Guard) HandleCalls(ctx context.Context, calls []transport.CallEvent) {
	for _, call := range calls {
		if !call.IsIncoming {
			continue
		}

		switch call.Status {
		case transport.CallRinging:
			if g.alreadyRejected(call.ID) {
				continue
			}
			g.logger.Info("call_ringing", "call_id", call.ID, "from", call.From)
			if err := g.sender.RejectCall(ctx, call.ID, call.From); err != nil {
				g.logger.Warn("call_reject_error", "call_id", call.ID, "error", err.Error())
			}
			// Marked regardless of the reject outcome so a re-delivered
			// ringing event cannot trigger a second notification.
			g.markRejected(call.ID)
			if g.metrics != nil {
				g.metrics.CallsRejected.Inc()
			}
			if err := g.sender.SendText(ctx, call.From, rejectNotice); err != nil {
				g.logger.Warn("call_notice_error", "call_id", call.ID, "error", err.Error())
			}
		case transport.CallTerminate:
			g.forget(call.ID)
		}
	}
}

func (g *Guard) alreadyRejected(callID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.rejected[callID]
	return ok
}

func (g *Guard) markRejected(callID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rejected[callID] = struct{}{}
}

func (g *Guard) forget(callID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rejected, callID)
}
