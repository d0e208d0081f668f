// Package botproto implements the line-delimited JSON bot protocol: the
// frame types exchanged with an external engine subprocess, and a
// concrete Channel that launches one and frames its stdin/stdout.
package botproto

// WireLocation is a placement as it appears on the wire.
type WireLocation struct {
	Kind        string `json:"kind"`
	Orientation string `json:"orientation"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

// WireMove is a move as it appears on the wire: a location plus spin.
type WireMove struct {
	Location WireLocation `json:"location"`
	Spin     string       `json:"spin"`
}

// BotMessage is any line received from a bot, discriminated by Type.
// Unknown-variant or malformed inbound lines never reach this type; the
// channel drops them upstream.
type BotMessage struct {
	Type string `json:"type"`

	// "suggestion"
	Moves []WireMove `json:"moves,omitempty"`

	// "error"
	Reason string `json:"reason,omitempty"`
}

const (
	MsgInfo       = "info"
	MsgSuggestion = "suggestion"
	MsgReady      = "ready"
	MsgError      = "error"
)

// randomizerInfo describes the 7-bag state sent in a "start" frame.
type randomizerInfo struct {
	Kind    string   `json:"type"`
	BagUsed []string `json:"bag_used"`
}

// StartFrame announces (or re-announces, after garbage is deposited) a
// side's current board and queue state to its bot.
type StartFrame struct {
	Type       string         `json:"type"`
	Hold       *string        `json:"hold"`
	Queue      []string       `json:"queue"`
	Combo      int            `json:"combo"`
	BackToBack bool           `json:"back_to_back"`
	Board      [][]*string    `json:"board"`
	Randomizer randomizerInfo `json:"randomizer"`
}

// SuggestFrame asks the bot for its next move.
type SuggestFrame struct {
	Type string `json:"type"`
}

// NewSuggestFrame returns a ready-to-send SuggestFrame.
func NewSuggestFrame() SuggestFrame { return SuggestFrame{Type: "suggest"} }

// PlayFrame tells the bot which of its suggested moves was accepted.
type PlayFrame struct {
	Type string   `json:"type"`
	Move WireMove `json:"move"`
}

// NewPieceFrame streams one newly drawn piece to the bot.
type NewPieceFrame struct {
	Type  string `json:"type"`
	Piece string `json:"piece"`
}

// StopFrame tells the bot to abandon any outstanding suggestion request.
type StopFrame struct {
	Type string `json:"type"`
}

// RulesFrame announces the rule set at match start.
type RulesFrame struct {
	Type       string `json:"type"`
	Randomizer string `json:"randomizer"`
}

// NewRulesFrame returns the (currently only) supported rule set frame.
func NewRulesFrame() RulesFrame {
	return RulesFrame{Type: "rules", Randomizer: "seven_bag"}
}

// QuitFrame tells the bot to exit.
type QuitFrame struct {
	Type string `json:"type"`
}

// NewQuitFrame returns a ready-to-send QuitFrame.
func NewQuitFrame() QuitFrame { return QuitFrame{Type: "quit"} }
