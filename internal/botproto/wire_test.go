package botproto

import (
	"testing"

	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/game"
)

func TestToSuggestionDecodesWireMove(t *testing.T) {
	mv := WireMove{
		Location: WireLocation{Kind: "T", Orientation: "East", X: 4, Y: 19},
		Spin:     "Full",
	}
	s, err := ToSuggestion(mv)
	if err != nil {
		t.Fatalf("ToSuggestion returned error: %v", err)
	}
	if s.Location.Piece != board.T || s.Location.Rotation != board.East {
		t.Fatalf("decoded location = %+v, want piece T rotation East", s.Location)
	}
	if s.Spin != board.Full {
		t.Fatalf("decoded spin = %v, want Full", s.Spin)
	}
}

func TestToSuggestionRejectsUnknownFields(t *testing.T) {
	tests := []WireMove{
		{Location: WireLocation{Kind: "X", Orientation: "North"}},
		{Location: WireLocation{Kind: "T", Orientation: "Sideways"}},
		{Location: WireLocation{Kind: "T", Orientation: "North"}, Spin: "Ultra"},
	}
	for _, mv := range tests {
		if _, err := ToSuggestion(mv); err == nil {
			t.Errorf("ToSuggestion(%+v) should have returned an error", mv)
		}
	}
}

func TestEmptySpinDecodesToNoSpin(t *testing.T) {
	mv := WireMove{Location: WireLocation{Kind: "O", Orientation: "North"}}
	s, err := ToSuggestion(mv)
	if err != nil {
		t.Fatalf("ToSuggestion returned error: %v", err)
	}
	if s.Spin != board.NoSpin {
		t.Errorf("empty spin should decode to NoSpin, got %v", s.Spin)
	}
}

func TestFromPlayedMovePrefersRawEcho(t *testing.T) {
	raw := WireMove{Location: WireLocation{Kind: "S", Orientation: "West", X: 1, Y: 2}, Spin: "Mini"}
	played := game.PlayedMove{Original: game.Suggestion{Raw: raw}}
	if got := FromPlayedMove(played); got != raw {
		t.Errorf("FromPlayedMove should echo the raw wire move verbatim, got %+v", got)
	}
}

func TestFromPlayedMoveReconstructsWithoutRaw(t *testing.T) {
	played := game.PlayedMove{Original: game.Suggestion{
		Location: board.PieceLocation{Piece: board.J, Rotation: board.South, X: 2, Y: 3},
		Spin:     board.NoSpin,
	}}
	got := FromPlayedMove(played)
	if got.Location.Kind != "J" || got.Location.Orientation != "South" {
		t.Errorf("reconstructed move = %+v, want kind J orientation South", got)
	}
}

func TestBuildStartFrame(t *testing.T) {
	s := game.New()
	s.RefillQueue(5, nil)

	frame := BuildStartFrame(s)
	if frame.Type != "start" {
		t.Errorf("frame.Type = %q, want start", frame.Type)
	}
	if len(frame.Queue) != 5 {
		t.Errorf("frame.Queue length = %d, want 5", len(frame.Queue))
	}
	if frame.Hold != nil {
		t.Errorf("fresh state should have no hold piece")
	}
	if len(frame.Board) != board.Height || len(frame.Board[0]) != board.Width {
		t.Fatalf("frame.Board dims = %dx%d, want %dx%d", len(frame.Board), len(frame.Board[0]), board.Height, board.Width)
	}
	for y, row := range frame.Board {
		for x, cell := range row {
			if cell != nil {
				t.Errorf("fresh board cell (%d,%d) should be nil, got %q", x, y, *cell)
			}
		}
	}
}
