// Package dispatch fans inbound events out to one worker goroutine per
// correspondent. Serializing per correspondent keeps the engine's
// read-session / write-session sequence free of stale reads when the same
// person sends two messages back to back; different correspondents still
// run concurrently up to a global limit.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"zapdesk/dialog"
	"zapdesk/internal/observability"
	"zapdesk/transport"
)

type job struct {
	ID      string
	Message transport.InboundMessage
}

type Dispatcher struct {
	engine  *dialog.Engine
	sender  transport.Sender
	logger  *slog.Logger
	metrics *observability.Metrics

	ctx       context.Context
	sem       chan struct{}
	queueSize int

	mu      sync.Mutex
	workers map[string]chan job
}

// New builds a dispatcher whose workers live until ctx is done.
func New(ctx context.Context, engine *dialog.Engine, sender transport.Sender, logger *slog.Logger, metrics *observability.Metrics, maxConcurrency, queueSize int) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if maxConcurrency <= 0 {
		maxConcurrency = 3
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Dispatcher{
		engine:    engine,
		sender:    sender,
		logger:    logger,
		metrics:   metrics,
		ctx:       ctx,
		sem:       make(chan struct{}, maxConcurrency),
		queueSize: queueSize,
		workers:   make(map[string]chan job),
	}
}

// EnqueueMessage queues one inbound event on its correspondent's worker,
// starting the worker on first contact. Blocks only when that worker's
// queue is full.
func (d *Dispatcher) EnqueueMessage(ctx context.Context, msg transport.InboundMessage) error {
	j := job{ID: uuid.NewString(), Message: msg}

	d.mu.Lock()
	jobs := d.workerLocked(msg.JID)
	d.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-d.ctx.Done():
		return d.ctx.Err()
	case jobs <- j:
		return nil
	}
}

func (d *Dispatcher) workerLocked(jid string) chan job {
	if jobs, ok := d.workers[jid]; ok {
		return jobs
	}
	jobs := make(chan job, d.queueSize)
	d.workers[jid] = jobs
	if d.metrics != nil {
		d.metrics.ActiveWorkers.Inc()
	}
	go d.run(jid, jobs)
	return jobs
}

func (d *Dispatcher) run(jid string, jobs <-chan job) {
	defer func() {
		if d.metrics != nil {
			d.metrics.ActiveWorkers.Dec()
		}
	}()
	for {
		select {
		case <-d.ctx.Done():
			return
		case j := <-jobs:
			select {
			case d.sem <- struct{}{}:
			case <-d.ctx.Done():
				return
			}
			d.handle(j)
			<-d.sem
		}
	}
}

func (d *Dispatcher) handle(j job) {
	msg := j.Message
	intent, name := dialog.Classify(msg)
	if d.metrics != nil {
		d.metrics.Events.WithLabelValues(intent.Kind.String()).Inc()
	}

	// Non-actionable payloads must not advance any state.
	if intent.Kind == dialog.IntentNone {
		d.logger.Debug("event_skip_empty", "event_id", j.ID, "jid", msg.JID)
		return
	}

	d.logger.Debug("event_received",
		"event_id", j.ID,
		"jid", msg.JID,
		"intent", intent.Kind.String(),
		"name", name,
	)

	actions := d.engine.Handle(d.ctx, msg.JID, msg.AltJID, intent, name)
	for _, a := range actions {
		if err := transport.Deliver(d.ctx, d.sender, a); err != nil {
			d.logger.Warn("action_send_error",
				"event_id", j.ID,
				"kind", string(a.Kind),
				"to", a.To,
				"error", err.Error(),
			)
			continue
		}
		if d.metrics != nil {
			d.metrics.Actions.WithLabelValues(string(a.Kind)).Inc()
		}
	}
}
