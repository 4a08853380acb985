package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"zapdesk/catalog"
	"zapdesk/contact"
	"zapdesk/internal/observability"
	"zapdesk/linkcodec"
	"zapdesk/session"
	"zapdesk/transport"
)

// MuteDuration is how long a correspondent is paused after repeated
// unrecognized messages.
const MuteDuration = 24 * time.Hour

// Config carries the process-level settings the engine needs.
type Config struct {
	// AdminJID receives support notifications. Empty skips the
	// notification but still completes the client-facing flow.
	AdminJID string

	BannerPath string
	APKPath    string
}

// Engine is the per-correspondent dialogue state machine. It owns all
// writes to the session store.
type Engine struct {
	sessions *session.Store
	catalog  *catalog.Catalog
	contacts contact.Getter
	cfg      Config
	logger   *slog.Logger
	metrics  *observability.Metrics

	now      func() time.Time
	readFile func(string) ([]byte, error)
}

type Option func(*Engine)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithReadFile overrides asset loading, for tests.
func WithReadFile(read func(string) ([]byte, error)) Option {
	return func(e *Engine) { e.readFile = read }
}

func NewEngine(sessions *session.Store, cat *catalog.Catalog, contacts contact.Getter, cfg Config, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	e := &Engine{
		sessions: sessions,
		catalog:  cat,
		contacts: contacts,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Handle runs one event through the decision list and returns the outbound
// actions in delivery order. Rules are exclusive: the first match wins.
func (e *Engine) Handle(ctx context.Context, jid, altJID string, intent Intent, displayName string) []transport.Action {
	st := e.sessions.Get(jid)
	nowMS := e.now().UnixMilli()

	// Mute gate. The keyword exemption only inspects free text, so
	// selections pass through untouched.
	if intent.Kind != IntentSelection && st.MuteUntil > nowMS && !MatchesReset(intent.Text) {
		e.logger.Debug("event_drop_muted", "jid", jid, "mute_until", st.MuteUntil)
		if e.metrics != nil {
			e.metrics.MutedDrops.Inc()
		}
		return nil
	}

	// Reset / greeting. IntentNone lands here too for completeness, though
	// the dispatcher drops empty events before they reach the engine.
	if intent.Kind == IntentGreeting || intent.Kind == IntentNone {
		e.sessions.Set(jid, 0, 0)
		return e.welcome(jid)
	}

	if intent.Kind == IntentSelection {
		if plan, ok := e.catalog.FindPlan(intent.SelectionID); ok {
			e.sessions.Set(jid, 0, 0)
			return []transport.Action{
				transport.TextAction(jid, fmt.Sprintf(msgPlanChosen, plan.Nome, plan.Valor)),
				transport.TextAction(jid, plan.PixManual),
			}
		}
	}

	if intent.Kind == IntentFreeText {
		if help, ok := e.catalog.MatchHelp(intent.Text); ok {
			e.sessions.Set(jid, 0, 0)
			title := help.Titulo
			if title == "" {
				title = msgHelpDefaultTitle
			}
			out := []transport.Action{
				transport.TextAction(jid, fmt.Sprintf(msgHelp, title, help.Resposta)),
			}
			if help.Link != "" {
				out = append(out, transport.MenuAction(jid, linkMenu(linkcodec.Encode(help.Link))))
			}
			return out
		}
	}

	if intent.Kind == IntentSelection {
		e.sessions.Set(jid, 0, 0)
		return e.handleSelection(ctx, jid, altJID, intent.SelectionID)
	}

	// Unrecognized free text: escalate, then pause.
	level := st.Level + 1
	if level == 1 {
		e.sessions.Set(jid, 1, 0)
		e.logger.Info("event_unrecognized", "jid", jid, "name", displayName, "level", 1)
		return []transport.Action{transport.MenuAction(jid, SupportOnlyMenu())}
	}
	e.sessions.Set(jid, 0, nowMS+MuteDuration.Milliseconds())
	e.logger.Info("correspondent_paused", "jid", jid, "name", displayName, "hours", 24)
	return []transport.Action{transport.TextAction(jid, msgPaused)}
}

func (e *Engine) welcome(jid string) []transport.Action {
	var out []transport.Action
	if data, err := e.readFile(e.cfg.BannerPath); err == nil {
		out = append(out, transport.ImageAction(jid, data, welcomeCaption))
	}
	// A missing banner is skipped silently; the menu still goes out.
	return append(out, transport.MenuAction(jid, MainMenu()))
}

func (e *Engine) handleSelection(ctx context.Context, jid, altJID, id string) []transport.Action {
	if linkcodec.IsToken(id) {
		link, err := linkcodec.Decode(id)
		if err != nil {
			e.logger.Warn("link_decode_error", "jid", jid, "token", id, "error", err.Error())
			return []transport.Action{transport.TextAction(jid, msgLinkError)}
		}
		return []transport.Action{
			transport.TextAction(jid, fmt.Sprintf(msgLinkReveal, link)),
			transport.MenuAction(jid, MainMenu()),
		}
	}

	switch id {
	case ButtonRenew:
		buttons := make([]transport.Button, 0, len(e.catalog.Plans)+1)
		for _, p := range e.catalog.Plans {
			buttons = append(buttons, transport.Button{ID: p.ID, Text: p.Nome + " - " + p.Valor})
		}
		buttons = append(buttons, transport.Button{ID: ButtonBack, Text: labelBack})
		return []transport.Action{transport.MenuAction(jid, transport.MenuSpec{
			Title:   menuPlansTitle,
			Text:    menuPlansText,
			Footer:  menuPlansFooter,
			Buttons: buttons,
		})}

	case ButtonTrial:
		out := []transport.Action{transport.TextAction(jid, msgTrial)}
		if data, err := e.readFile(e.cfg.APKPath); err == nil {
			out = append(out, transport.DocumentAction(jid, data, apkMimeType, apkFileName))
		} else {
			e.logger.Warn("trial_asset_error", "path", e.cfg.APKPath, "error", err.Error())
			out = append(out, transport.TextAction(jid, msgTrialAssetError))
		}
		return out

	case ButtonReseller:
		var out []transport.Action
		if len(e.catalog.Resellers) > 0 {
			var b strings.Builder
			b.WriteString(msgResellerHeader)
			for _, t := range e.catalog.Resellers {
				fmt.Fprintf(&b, "*%d* | *R$ %.2f* | *R$ %.2f*\n", t.Creditos, t.ValorUnitario, t.ValorTotal)
			}
			b.WriteString(msgResellerFooter)
			out = append(out, transport.TextAction(jid, b.String()))
		} else {
			out = append(out, transport.TextAction(jid, msgResellerEmpty))
		}
		return append(out, transport.MenuAction(jid, MainMenu()))

	case ButtonSupport:
		out := []transport.Action{transport.TextAction(jid, msgSupportAck)}
		number := contact.Resolve(ctx, e.contacts, jid, altJID, e.logger)
		if e.cfg.AdminJID != "" {
			out = append(out, transport.TextAction(e.cfg.AdminJID,
				fmt.Sprintf(msgSupportNotify, number, "https://wa.me/"+number)))
		}
		e.logger.Info("support_requested", "jid", jid, "number", number, "admin_notified", e.cfg.AdminJID != "")
		return append(out, transport.MenuAction(jid, MainMenu()))

	case ButtonBack:
		return []transport.Action{transport.MenuAction(jid, MainMenu())}
	}

	// Only reachable when the renderer offers an id the engine does not
	// know; an integration error, not a user-facing one.
	e.logger.Debug("selection_unknown", "jid", jid, "id", id)
	return nil
}
