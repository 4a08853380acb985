// Package contact resolves a correspondent's canonical phone number. The
// network hands out several identity spellings (linked-device ids, legacy
// domains, alternate jids); support routing needs plain digits to build the
// admin notification, so resolution walks an ordered fallback chain and
// never fails outright.
package contact

import (
	"context"
	"log/slog"

	"zapdesk/internal/jidutil"
)

type Contact struct {
	JID         string `json:"jid"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Getter is implemented by the connector's contact directory. Lookups are
// best-effort; an error or a miss just moves resolution to the next step.
type Getter interface {
	GetContact(ctx context.Context, jid string) (Contact, bool, error)
}

// Resolve returns the best digits-only number for a correspondent.
// Order: alternate jid, directory lookup, normalized jid, raw jid. The last
// step always succeeds syntactically (possibly with an empty result when the
// jid carries no digits at all).
func Resolve(ctx context.Context, getter Getter, jid, altJID string, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}

	if altJID != "" {
		if digits := jidutil.Digits(jidutil.User(altJID)); digits != "" {
			return digits
		}
	}

	if getter != nil {
		c, ok, err := getter.GetContact(ctx, jid)
		switch {
		case err != nil:
			logger.Debug("contact_lookup_error", "jid", jid, "error", err.Error())
		case ok && c.PhoneNumber != "":
			if digits := jidutil.Digits(c.PhoneNumber); digits != "" {
				return digits
			}
		}
	}

	if digits := jidutil.Digits(jidutil.User(jidutil.Normalize(jid))); digits != "" {
		return digits
	}

	return jidutil.Digits(jidutil.User(jid))
}
