package dialog

import (
	"testing"

	"zapdesk/transport"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		msg      transport.InboundMessage
		wantKind IntentKind
		wantText string
		wantSel  string
		wantName string
	}{
		{
			name:     "plain text",
			msg:      transport.InboundMessage{Conversation: "quanto custa?", PushName: "Ana"},
			wantKind: IntentFreeText,
			wantText: "quanto custa?",
			wantName: "Ana",
		},
		{
			name:     "extended text",
			msg:      transport.InboundMessage{ExtendedText: "preciso de ajuda"},
			wantKind: IntentFreeText,
			wantText: "preciso de ajuda",
			wantName: DefaultDisplayName,
		},
		{
			name:     "greeting keyword",
			msg:      transport.InboundMessage{Conversation: "Bom dia!"},
			wantKind: IntentGreeting,
			wantText: "Bom dia!",
			wantName: DefaultDisplayName,
		},
		{
			name: "interactive response",
			msg: transport.InboundMessage{
				InteractiveResponse: &transport.InteractiveResponse{ParamsJSON: `{"id":"btn_suporte"}`},
			},
			wantKind: IntentSelection,
			wantSel:  "btn_suporte",
			wantName: DefaultDisplayName,
		},
		{
			name: "interactive response with broken json",
			msg: transport.InboundMessage{
				InteractiveResponse: &transport.InteractiveResponse{ParamsJSON: `{"id":`},
			},
			wantKind: IntentNone,
			wantName: DefaultDisplayName,
		},
		{
			name: "template button reply",
			msg: transport.InboundMessage{
				TemplateButtonReply: &transport.TemplateButtonReply{SelectedID: "btn_renovar"},
			},
			wantKind: IntentSelection,
			wantSel:  "btn_renovar",
			wantName: DefaultDisplayName,
		},
		{
			name:     "empty payload",
			msg:      transport.InboundMessage{},
			wantKind: IntentNone,
			wantName: DefaultDisplayName,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, name := Classify(tc.msg)
			if intent.Kind != tc.wantKind {
				t.Fatalf("Classify() kind = %v, want %v", intent.Kind, tc.wantKind)
			}
			if intent.Text != tc.wantText {
				t.Fatalf("Classify() text = %q, want %q", intent.Text, tc.wantText)
			}
			if intent.SelectionID != tc.wantSel {
				t.Fatalf("Classify() selection = %q, want %q", intent.SelectionID, tc.wantSel)
			}
			if name != tc.wantName {
				t.Fatalf("Classify() name = %q, want %q", name, tc.wantName)
			}
		})
	}
}

func TestMatchesReset(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{text: "menu", want: true},
		{text: "MENU", want: true},
		{text: "quero o menu principal", want: true},
		{text: "Olá!", want: true},
		{text: "bom dia", want: true},
		{text: "xyzw", want: false},
		{text: "", want: false},
	}
	for _, tc := range cases {
		if got := MatchesReset(tc.text); got != tc.want {
			t.Fatalf("MatchesReset(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
