package dialog

import "strings"

// IntentKind is the closed set of actionable categories an inbound event
// can fall into. The connector only ever produces the four payload shapes
// the classifier knows, so there is nothing to extend.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentGreeting
	IntentFreeText
	IntentSelection
)

func (k IntentKind) String() string {
	switch k {
	case IntentGreeting:
		return "greeting"
	case IntentFreeText:
		return "free_text"
	case IntentSelection:
		return "selection"
	}
	return "none"
}

// Intent is the normalized form of one inbound event. Text is set for
// Greeting and FreeText, SelectionID for Selection.
type Intent struct {
	Kind        IntentKind
	Text        string
	SelectionID string
}

// Reset keywords. Case-insensitive substring containment over this literal
// set, exactly; no tokenization.
var resetKeywords = []string{"menu", "oi", "ola", "olá", "iniciar", "bom", "teste"}

// MatchesReset reports whether text contains one of the reset keywords.
func MatchesReset(text string) bool {
	lower := strings.ToLower(text)
	for _, key := range resetKeywords {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}
