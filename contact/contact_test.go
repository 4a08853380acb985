package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeGetter struct {
	contact Contact
	found   bool
	err     error
}

func (f *fakeGetter) GetContact(context.Context, string) (Contact, bool, error) {
	return f.contact, f.found, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name   string
		jid    string
		altJID string
		getter Getter
		want   string
	}{
		{
			name:   "alternate jid wins",
			jid:    "opaque-lid@lid",
			altJID: "5511999000111@s.whatsapp.net",
			getter: &fakeGetter{contact: Contact{PhoneNumber: "+55 21 0000"}, found: true},
			want:   "5511999000111",
		},
		{
			name:   "directory lookup",
			jid:    "opaque-lid@lid",
			getter: &fakeGetter{contact: Contact{PhoneNumber: "+55 (11) 98888-7777"}, found: true},
			want:   "5511988887777",
		},
		{
			name:   "lookup error falls through to normalization",
			jid:    "5511999:33@c.us",
			getter: &fakeGetter{err: errors.New("offline")},
			want:   "5511999",
		},
		{
			name: "no getter, raw parsing",
			jid:  "5511888@s.whatsapp.net",
			want: "5511888",
		},
		{
			name: "digitless jid yields empty",
			jid:  "abc@lid",
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(context.Background(), tc.getter, tc.jid, tc.altJID, testLogger())
			if got != tc.want {
				t.Fatalf("Resolve() = %q, want %q", got, tc.want)
			}
		})
	}
}
