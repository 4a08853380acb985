package dialog

import (
	"encoding/json"
	"strings"

	"zapdesk/transport"
)

// DefaultDisplayName stands in when the event carries no push name.
const DefaultDisplayName = "Cliente"

// Classify normalizes one inbound event into an Intent plus the display
// name to use for the correspondent.
//
// Four payload shapes are handled: plain conversation text, extended text,
// an interactive response whose JSON parameter block carries the selected
// id, and the legacy template button reply carrying it directly. A JSON
// parse failure is not an error; the selection is simply absent and the
// event falls through to text evaluation. An event with neither text nor
// selection is IntentNone and must not advance any state.
func Classify(msg transport.InboundMessage) (Intent, string) {
	name := strings.TrimSpace(msg.PushName)
	if name == "" {
		name = DefaultDisplayName
	}

	var text, selected string
	switch {
	case msg.Conversation != "":
		text = msg.Conversation
	case msg.ExtendedText != "":
		text = msg.ExtendedText
	case msg.InteractiveResponse != nil:
		var params struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal([]byte(msg.InteractiveResponse.ParamsJSON), &params); err == nil {
			selected = params.ID
		}
	case msg.TemplateButtonReply != nil:
		selected = msg.TemplateButtonReply.SelectedID
	}

	switch {
	case selected != "":
		return Intent{Kind: IntentSelection, SelectionID: selected}, name
	case text != "":
		if MatchesReset(text) {
			return Intent{Kind: IntentGreeting, Text: text}, name
		}
		return Intent{Kind: IntentFreeText, Text: text}, name
	}
	return Intent{Kind: IntentNone}, name
}
