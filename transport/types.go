// Package transport defines the boundary between the dialogue core and the
// messaging-network connector. The connector (session management, pairing,
// reconnects) lives outside this repository; everything crossing the wire in
// either direction is described by the types here.
package transport

import "context"

// InboundMessage is one conversational event from a correspondent. Exactly
// one of the payload fields is expected to be set; the classifier treats
// events with none of them as non-actionable.
type InboundMessage struct {
	JID      string `json:"jid"`
	AltJID   string `json:"alt_jid,omitempty"`
	PushName string `json:"push_name,omitempty"`

	Conversation        string               `json:"conversation,omitempty"`
	ExtendedText        string               `json:"extended_text,omitempty"`
	InteractiveResponse *InteractiveResponse `json:"interactive_response,omitempty"`
	TemplateButtonReply *TemplateButtonReply `json:"template_button_reply,omitempty"`
}

// InteractiveResponse carries the JSON parameter block of an interactive
// button reply. ParamsJSON is opaque here; the classifier extracts the
// selected id from it.
type InteractiveResponse struct {
	ParamsJSON string `json:"params_json"`
}

// TemplateButtonReply is the legacy button reply shape carrying the selected
// id directly.
type TemplateButtonReply struct {
	SelectedID string `json:"selected_id"`
}

type CallStatus string

const (
	CallRinging   CallStatus = "ringing"
	CallTerminate CallStatus = "terminate"
)

// CallEvent is one voice/video signaling event. The connector may re-deliver
// the same event; de-duplication is the call guard's job.
type CallEvent struct {
	ID         string     `json:"id"`
	From       string     `json:"from"`
	IsIncoming bool       `json:"is_incoming"`
	Status     CallStatus `json:"status"`
}

type Button struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MenuSpec describes an interactive button menu. The engine only constructs
// these; rendering belongs to the connector.
type MenuSpec struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	Footer  string   `json:"footer"`
	Buttons []Button `json:"buttons"`
}

type ActionKind string

const (
	ActionText     ActionKind = "text"
	ActionImage    ActionKind = "image"
	ActionDocument ActionKind = "document"
	ActionMenu     ActionKind = "menu"
)

// Action is one outbound step decided by the engine. Actions are delivered
// in the order the engine returns them.
type Action struct {
	Kind ActionKind `json:"kind"`
	To   string     `json:"to"`

	Text     string    `json:"text,omitempty"`
	Data     []byte    `json:"data,omitempty"`
	Caption  string    `json:"caption,omitempty"`
	MimeType string    `json:"mime_type,omitempty"`
	FileName string    `json:"file_name,omitempty"`
	Menu     *MenuSpec `json:"menu,omitempty"`
}

func TextAction(to, text string) Action {
	return Action{Kind: ActionText, To: to, Text: text}
}

func ImageAction(to string, data []byte, caption string) Action {
	return Action{Kind: ActionImage, To: to, Data: data, Caption: caption}
}

func DocumentAction(to string, data []byte, mimeType, fileName string) Action {
	return Action{Kind: ActionDocument, To: to, Data: data, MimeType: mimeType, FileName: fileName}
}

func MenuAction(to string, menu MenuSpec) Action {
	return Action{Kind: ActionMenu, To: to, Menu: &menu}
}

// Sender is implemented by the connector. Every method is best-effort: the
// core logs failures and moves on, it never retries.
type Sender interface {
	SendText(ctx context.Context, to, text string) error
	SendImage(ctx context.Context, to string, data []byte, caption string) error
	SendDocument(ctx context.Context, to string, data []byte, mimeType, fileName string) error
	SendMenu(ctx context.Context, to string, menu MenuSpec) error
	RejectCall(ctx context.Context, callID, callerJID string) error
}

// Deliver routes one action to the matching Sender method.
func Deliver(ctx context.Context, s Sender, a Action) error {
	switch a.Kind {
	case ActionText:
		return s.SendText(ctx, a.To, a.Text)
	case ActionImage:
		return s.SendImage(ctx, a.To, a.Data, a.Caption)
	case ActionDocument:
		return s.SendDocument(ctx, a.To, a.Data, a.MimeType, a.FileName)
	case ActionMenu:
		menu := MenuSpec{}
		if a.Menu != nil {
			menu = *a.Menu
		}
		return s.SendMenu(ctx, a.To, menu)
	}
	return nil
}
