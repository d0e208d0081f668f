package botproto

import (
	"fmt"

	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/game"
)

func pieceFromWire(s string) (board.Piece, error) {
	switch s {
	case "I":
		return board.I, nil
	case "O":
		return board.O, nil
	case "T":
		return board.T, nil
	case "L":
		return board.L, nil
	case "J":
		return board.J, nil
	case "S":
		return board.S, nil
	case "Z":
		return board.Z, nil
	default:
		return 0, fmt.Errorf("botproto: unknown piece %q", s)
	}
}

func rotationFromWire(s string) (board.Rotation, error) {
	switch s {
	case "North":
		return board.North, nil
	case "East":
		return board.East, nil
	case "South":
		return board.South, nil
	case "West":
		return board.West, nil
	default:
		return 0, fmt.Errorf("botproto: unknown orientation %q", s)
	}
}

func spinFromWire(s string) (board.Spin, error) {
	switch s {
	case "None", "":
		return board.NoSpin, nil
	case "Mini":
		return board.Mini, nil
	case "Full":
		return board.Full, nil
	default:
		return 0, fmt.Errorf("botproto: unknown spin %q", s)
	}
}

// ToSuggestion decodes one wire move into a domain Suggestion. Malformed
// pieces/orientations/spins make the move unparseable; the caller should
// skip it like any other rejected candidate rather than treat it as a
// channel error.
func ToSuggestion(mv WireMove) (game.Suggestion, error) {
	piece, err := pieceFromWire(mv.Location.Kind)
	if err != nil {
		return game.Suggestion{}, err
	}
	rot, err := rotationFromWire(mv.Location.Orientation)
	if err != nil {
		return game.Suggestion{}, err
	}
	spin, err := spinFromWire(mv.Spin)
	if err != nil {
		return game.Suggestion{}, err
	}
	return game.Suggestion{
		Location: board.PieceLocation{Piece: piece, Rotation: rot, X: mv.Location.X, Y: mv.Location.Y},
		Spin:     spin,
		Raw:      mv,
	}, nil
}

// FromPlayedMove builds the wire move echoed back in a "play" frame.
func FromPlayedMove(p game.PlayedMove) WireMove {
	if raw, ok := p.Original.Raw.(WireMove); ok {
		return raw
	}
	loc := p.Original.Location
	return WireMove{
		Location: WireLocation{
			Kind:        loc.Piece.String(),
			Orientation: loc.Rotation.String(),
			X:           loc.X,
			Y:           loc.Y,
		},
		Spin: p.Original.Spin.String(),
	}
}

func pieceStr(p board.Piece) *string {
	s := p.String()
	return &s
}

// cellStr maps a board cell to its wire representation: nil for Empty,
// "G" for Garbage, the piece letter otherwise.
func cellStr(c board.CellColor) *string {
	if c == board.Empty {
		return nil
	}
	if p, ok := c.Piece(); ok {
		s := p.String()
		return &s
	}
	g := "G"
	return &g
}

// BuildStartFrame converts a side's current game state into the "start"
// frame the bot must be (re-)sent whenever its board changes.
func BuildStartFrame(s *game.State) StartFrame {
	queue := make([]string, 0, len(s.Queue()))
	for _, p := range s.Queue() {
		queue = append(queue, p.String())
	}

	var hold *string
	if h, ok := s.Hold(); ok {
		hold = pieceStr(h)
	}

	rows := s.Board.Rows()
	wireRows := make([][]*string, board.Height)
	for y := 0; y < board.Height; y++ {
		row := make([]*string, board.Width)
		for x := 0; x < board.Width; x++ {
			row[x] = cellStr(rows[y][x])
		}
		wireRows[y] = row
	}

	bagUsed := make([]string, 0, len(s.ResidualBag()))
	for _, p := range s.ResidualBag() {
		bagUsed = append(bagUsed, p.String())
	}

	return StartFrame{
		Type:       "start",
		Hold:       hold,
		Queue:      queue,
		Combo:      s.Combo(),
		BackToBack: s.BackToBack(),
		Board:      wireRows,
		Randomizer: randomizerInfo{Kind: "seven_bag", BagUsed: bagUsed},
	}
}
