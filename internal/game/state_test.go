package game

import (
	"testing"

	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/config"
	"github.com/tetris-bot-protocol/battletris/internal/movegen"
)

func TestRefillQueueFillsToSizeAndStreamsEachPiece(t *testing.T) {
	s := New()
	var streamed []board.Piece
	s.RefillQueue(5, func(p board.Piece) { streamed = append(streamed, p) })

	if len(s.queue) != 5 {
		t.Fatalf("queue length = %d, want 5", len(s.queue))
	}
	if len(streamed) != 5 {
		t.Fatalf("streamed %d pieces, want 5", len(streamed))
	}
}

func TestRefillQueueRepopulatesBagWhenEmptied(t *testing.T) {
	s := New()
	// Draw all 7 pieces plus 2 more: the bag must have repopulated at
	// least once, so the residual bag should have 5 left (7 - 2).
	s.RefillQueue(9, nil)
	if len(s.queue) != 9 {
		t.Fatalf("queue length = %d, want 9", len(s.queue))
	}
	if len(s.bag) != 5 {
		t.Fatalf("residual bag length = %d, want 5", len(s.bag))
	}
}

func TestRefillQueueBagFairness(t *testing.T) {
	s := New()
	s.RefillQueue(7, nil)

	seen := map[board.Piece]int{}
	for _, p := range s.queue {
		seen[p]++
	}
	for _, p := range board.Pieces {
		if seen[p] != 1 {
			t.Fatalf("piece %v drawn %d times in one bag, want exactly once", p, seen[p])
		}
	}
}

func TestCounterGarbageMonotonic(t *testing.T) {
	s := New()
	s.QueueGarbage(3, 100)
	s.QueueGarbage(4, 200)

	remainder := s.CounterGarbage(5)
	if remainder != 0 {
		t.Fatalf("countering 5 against a 3+4 queue should fully absorb, remainder = %d", remainder)
	}
	if len(s.garbage) != 1 || s.garbage[0].amount != 2 {
		t.Fatalf("expected one entry with 2 remaining, got %+v", s.garbage)
	}

	remainder = s.CounterGarbage(10)
	if remainder != 8 {
		t.Fatalf("countering 10 against a remaining 2 should leave remainder 8, got %d", remainder)
	}
	if len(s.garbage) != 0 {
		t.Fatalf("garbage queue should be empty, got %+v", s.garbage)
	}
}

func TestAddGarbageDepositsOnlyDueEntries(t *testing.T) {
	s := New()
	s.QueueGarbage(2, 100)
	s.QueueGarbage(3, 300)

	cfg := config.PPT()
	holes := s.AddGarbage(150, &cfg)
	if len(holes) != 2 {
		t.Fatalf("expected only the first entry (2 rows) due by time 150, got %d holes", len(holes))
	}
	if len(s.garbage) != 1 {
		t.Fatalf("second entry should still be pending, garbage = %+v", s.garbage)
	}

	holes = s.AddGarbage(300, &cfg)
	if len(holes) != 3 {
		t.Fatalf("expected the second entry (3 rows) to become due, got %d holes", len(holes))
	}
}

func TestAddGarbageChangeOnAttackMovesHole(t *testing.T) {
	cfg := config.PPT()
	cfg.Garbage.ChangeOnAttack = true
	cfg.Garbage.Messiness = 0

	for i := 0; i < 50; i++ {
		s := New()
		prior := s.garbageHole
		s.QueueGarbage(1, 0)
		holes := s.AddGarbage(0, &cfg)
		if len(holes) != 1 {
			t.Fatalf("expected 1 hole, got %d", len(holes))
		}
		if holes[0] == prior {
			t.Fatalf("first row of an attack must change the hole column, stayed at %d", prior)
		}
		if holes[0] < 0 || holes[0] >= board.Width {
			t.Fatalf("hole column %d out of range", holes[0])
		}
	}
}

func TestPlaySuggestionRejectsUnreachablePlacement(t *testing.T) {
	s := New()
	s.RefillQueue(2, nil)
	cfg := config.PPT()

	bogus := Suggestion{
		Location: board.PieceLocation{Piece: s.queue[0], Rotation: board.North, X: 4, Y: 39},
		Spin:     board.NoSpin,
	}
	_, ok := s.PlaySuggestion([]Suggestion{bogus}, &cfg)
	if ok {
		t.Fatal("a placement the move generator never produced should not be accepted")
	}
}

func TestPlaySuggestionAcceptsAGeneratedMove(t *testing.T) {
	s := New()
	s.RefillQueue(2, nil)
	cfg := config.PPT()

	current := s.queue[0]
	moves := movegen.Generate(s.Board, current, cfg.Delays.Movement, cfg.Delays.Softdrop)
	if len(moves) == 0 {
		t.Fatal("expected at least one generated move on an empty board")
	}
	var key movegen.Key
	for k := range moves {
		key = k
		break
	}

	suggestion := Suggestion{Location: key.Loc, Spin: key.Spin}
	played, ok := s.PlaySuggestion([]Suggestion{suggestion}, &cfg)
	if !ok {
		t.Fatal("a move the generator actually produced should be accepted")
	}
	if len(s.queue) != 1 {
		t.Fatalf("queue should have advanced by one, len = %d", len(s.queue))
	}
	_ = played
}
