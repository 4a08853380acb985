// Package jidutil has small helpers for picking phone digits out of the
// messaging network's jid addressing scheme (user[:device]@domain).
package jidutil

import "strings"

// User returns the part of jid before the '@', or the whole string when
// there is none.
func User(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		return jid[:i]
	}
	return jid
}

// Normalize strips the device suffix from the user part and maps the legacy
// domain to the canonical one, e.g. "5511999:12@c.us" -> "5511999@s.whatsapp.net".
func Normalize(jid string) string {
	user := User(jid)
	if i := strings.IndexByte(user, ':'); i >= 0 {
		user = user[:i]
	}
	domain := ""
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		domain = jid[i+1:]
	}
	if domain == "" || domain == "c.us" {
		domain = "s.whatsapp.net"
	}
	return user + "@" + domain
}

// Digits keeps only the decimal digits of s. May be empty.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
