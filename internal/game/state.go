// Package game holds the per-side game state: board, piece queue, hold
// slot, 7-bag residual, combo/back-to-back tracking, and the pending
// garbage queue, plus the operations the match driver uses to apply a
// bot's suggestion and to run the garbage economy.
package game

import (
	"math/rand"

	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/config"
	"github.com/tetris-bot-protocol/battletris/internal/movegen"
)

// pendingGarbage is one queued incoming attack awaiting its deposit time.
type pendingGarbage struct {
	amount    int
	depositAt int64
}

// State is one side's complete game state.
type State struct {
	Board       *board.Board
	queue       []board.Piece
	hold        *board.Piece
	bag         []board.Piece
	combo       int
	backToBack  bool
	garbage     []pendingGarbage
	garbageHole int
}

// New creates a fresh side: empty board, empty hold, a full residual
// bag, and a randomized initial garbage-hole column.
func New() *State {
	return &State{
		Board:       board.NewBoard(),
		bag:         append([]board.Piece(nil), board.Pieces[:]...),
		garbageHole: rand.Intn(board.Width),
	}
}

// Queue returns the current piece queue, front first.
func (s *State) Queue() []board.Piece {
	return s.queue
}

// Hold returns the held piece, if any.
func (s *State) Hold() (board.Piece, bool) {
	if s.hold == nil {
		return 0, false
	}
	return *s.hold, true
}

// Combo returns the current combo counter (0 means no combo in progress).
func (s *State) Combo() int { return s.combo }

// BackToBack returns the current back-to-back flag.
func (s *State) BackToBack() bool { return s.backToBack }

// RefillQueue draws uniformly random pieces from the residual bag (by
// swap-remove) until the queue reaches size, repopulating the bag with
// all seven pieces whenever it empties. onNewPiece is invoked once per
// newly drawn piece, in draw order, so the caller can stream them to a
// bot.
func (s *State) RefillQueue(size int, onNewPiece func(board.Piece)) {
	for len(s.queue) < size {
		i := rand.Intn(len(s.bag))
		p := s.bag[i]
		s.bag[i] = s.bag[len(s.bag)-1]
		s.bag = s.bag[:len(s.bag)-1]

		s.queue = append(s.queue, p)
		if onNewPiece != nil {
			onNewPiece(p)
		}
		if len(s.bag) == 0 {
			s.bag = append(s.bag, board.Pieces[:]...)
		}
	}
}

// ResidualBag returns the pieces still undrawn in the current bag.
func (s *State) ResidualBag() []board.Piece {
	return s.bag
}

// Suggestion is one candidate move a bot returned, as decoded off the
// wire: a final placement plus the spin the bot believes it carries.
type Suggestion struct {
	Location board.PieceLocation
	Spin     board.Spin
	Raw      interface{} // the original wire move, echoed back in a play frame
}

// PlayedMove is what the driver needs to know to schedule follow-up
// events after a suggestion is accepted.
type PlayedMove struct {
	Original       Suggestion
	DidClear       bool
	PlacementDelay int
	ClearDelay     int
	GarbageSent    int
}

// PlaySuggestion tries each candidate move in order and applies the
// first one that is legal: its piece must be the current piece or the
// swap (hold, or next-in-queue if hold is empty) piece, and its
// (canonical location, spin) must be a key the move generator produced
// for that piece. Returns ok=false if no candidate is accepted, meaning
// this side has lost.
func (s *State) PlaySuggestion(suggested []Suggestion, cfg *config.Config) (PlayedMove, bool) {
	if len(s.queue) < 2 {
		return PlayedMove{}, false
	}

	current := s.queue[0]
	swap := s.queue[1]
	if s.hold != nil {
		swap = *s.hold
	}

	var nextMoves, holdMoves map[movegen.Key]int
	haveNextMoves, haveHoldMoves := false, false

	for _, mv := range suggested {
		loc := mv.Location.CanonicalForm()

		var group *map[movegen.Key]int
		var have *bool
		var piece board.Piece
		switch {
		case loc.Piece == current:
			group, have, piece = &nextMoves, &haveNextMoves, current
		case loc.Piece == swap:
			group, have, piece = &holdMoves, &haveHoldMoves, swap
		default:
			continue
		}

		if !*have {
			*group = movegen.Generate(s.Board, piece, cfg.Delays.Movement, cfg.Delays.Softdrop)
			*have = true
		}

		placementDelay, ok := (*group)[movegen.Key{Loc: loc, Spin: mv.Spin}]
		if !ok {
			continue
		}

		cleared := s.Board.Place(loc)
		s.queue = s.queue[1:]
		if loc.Piece != current {
			if s.hold == nil {
				s.queue = s.queue[1:]
			}
			h := current
			s.hold = &h
		}

		clearDelay, garbageSent := s.computeAttack(cleared, mv.Spin, cfg)

		return PlayedMove{
			Original:       mv,
			DidClear:       cleared > 0,
			PlacementDelay: placementDelay,
			ClearDelay:     clearDelay,
			GarbageSent:    garbageSent,
		}, true
	}

	return PlayedMove{}, false
}

// CounterGarbage consumes the pending-garbage FIFO head-first against
// amount, monotonically reducing both the queue and amount. The
// residual amount (possibly 0) is returned for the caller to forward to
// the opponent.
func (s *State) CounterGarbage(amount int) int {
	for amount > 0 && len(s.garbage) > 0 {
		head := &s.garbage[0]
		if head.amount <= amount {
			amount -= head.amount
			s.garbage = s.garbage[1:]
		} else {
			head.amount -= amount
			amount = 0
		}
	}
	return amount
}

// QueueGarbage appends one pending incoming attack to the FIFO tail.
func (s *State) QueueGarbage(amount int, depositAt int64) {
	s.garbage = append(s.garbage, pendingGarbage{amount: amount, depositAt: depositAt})
}

// AddGarbage pops every head entry due at or before now, generates a
// hole column per row per the messiness/change-on-attack rules, deposits
// them onto the board in one call, and returns the hole-column sequence
// (empty if nothing was due).
func (s *State) AddGarbage(now int64, cfg *config.Config) []int {
	var holes []int
	for len(s.garbage) > 0 && s.garbage[0].depositAt <= now {
		entry := s.garbage[0]
		s.garbage = s.garbage[1:]
		for i := 0; i < entry.amount; i++ {
			change := (i == 0 && cfg.Garbage.ChangeOnAttack) || rand.Float64() < cfg.Garbage.Messiness
			if change {
				h := rand.Intn(board.Width - 1)
				if h == s.garbageHole {
					h = board.Width - 1
				}
				s.garbageHole = h
			}
			holes = append(holes, s.garbageHole)
		}
	}
	s.Board.AddGarbage(holes)
	return holes
}
