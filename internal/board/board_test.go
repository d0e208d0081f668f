package board

import "testing"

func TestGetBounds(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name     string
		x, y     int
		occupied bool
	}{
		{"left wall", -1, 5, true},
		{"right wall", Width, 5, true},
		{"floor", 3, -1, true},
		{"open above ceiling", 3, Height, false},
		{"open above ceiling far", 3, Height + 50, false},
		{"empty interior cell", 5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Get(tc.x, tc.y); got != tc.occupied {
				t.Errorf("Get(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.occupied)
			}
		})
	}
}

func TestPlaceClearsFullRows(t *testing.T) {
	b := NewBoard()
	for x := 0; x < Width-4; x++ {
		b.cells[0][x] = Garbage
	}

	// I piece, North orientation, spans columns X-1..X+2: X=7 covers 6,7,8,9.
	cleared := b.Place(PieceLocation{Piece: I, Rotation: North, X: 7, Y: 0})
	if cleared != 1 {
		t.Fatalf("cleared = %d, want 1", cleared)
	}
	if !b.rowEmpty(0) {
		t.Errorf("row 0 should be empty after the only full row was cleared and compacted")
	}
}

func TestIsPC(t *testing.T) {
	b := NewBoard()
	if !b.IsPC() {
		t.Errorf("a fresh board should be a perfect clear")
	}
	b.cells[0][0] = Garbage
	if b.IsPC() {
		t.Errorf("board with a filled bottom row cell should not be a perfect clear")
	}
}

func TestStackHeight(t *testing.T) {
	b := NewBoard()
	if h := b.StackHeight(); h != 0 {
		t.Fatalf("StackHeight() on empty board = %d, want 0", h)
	}
	b.cells[0][0] = Garbage
	b.cells[1][0] = Garbage
	if h := b.StackHeight(); h != 2 {
		t.Fatalf("StackHeight() = %d, want 2", h)
	}
}

func TestAddGarbageShiftsAndLeavesHole(t *testing.T) {
	b := NewBoard()
	b.cells[0][0] = Garbage // pre-existing stack

	b.AddGarbage([]int{3})

	for x := 0; x < Width; x++ {
		if x == 3 {
			if b.cells[0][x] != Empty {
				t.Errorf("hole column should be empty, cells[0][%d] = %v", x, b.cells[0][x])
			}
			continue
		}
		if b.cells[0][x] != Garbage {
			t.Errorf("non-hole column should be garbage, cells[0][%d] = %v", x, b.cells[0][x])
		}
	}
	if b.cells[1][0] != Garbage {
		t.Errorf("the pre-existing row should have shifted up to row 1")
	}
}

func TestAddGarbageMultipleRowsOrder(t *testing.T) {
	b := NewBoard()
	b.AddGarbage([]int{0, 9})

	if b.cells[0][9] != Empty {
		t.Errorf("row 0's hole should be at column 9 (holes deposited bottom-up)")
	}
	if b.cells[1][0] != Empty {
		t.Errorf("row 1's hole should be at column 0")
	}
}
