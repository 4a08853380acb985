// Package linkcodec turns an arbitrary URI into a short opaque token that
// fits the id-length budget of interactive buttons, and back.
//
// The encoding truncates to a fixed budget without checking whether the URI
// fits: a token is a true inverse only for URIs whose base64 form is at most
// 20 characters (15 raw bytes). Longer URIs decode to a truncated, possibly
// malformed string. That limitation comes from the button-id channel and is
// deliberate; widening the budget would need the target transport's id
// limits confirmed first.
package linkcodec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Tag prefixes every token so selection routing can recognize link buttons.
const Tag = "link_"

const encodedBudget = 20

// ErrDecode reports a token whose payload is not valid base64 after padding
// normalization.
var ErrDecode = errors.New("linkcodec: invalid token")

// Encode builds a button id for uri. The result is at most 25 characters.
func Encode(uri string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(uri))
	if len(enc) > encodedBudget {
		enc = enc[:encodedBudget]
	}
	return Tag + enc
}

// IsToken reports whether a selection id was produced by Encode.
func IsToken(id string) bool {
	return strings.HasPrefix(id, Tag)
}

// Decode reverses Encode. Tokens built from URIs beyond the budget still
// decode without error, but to a different string than the original.
func Decode(token string) (string, error) {
	payload := strings.TrimPrefix(token, Tag)
	payload = strings.TrimRight(payload, "=")
	raw, err := base64.RawStdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(raw), nil
}
