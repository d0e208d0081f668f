package board

// Width and Height are the playfield dimensions. Row 0 is the bottom.
const (
	Width  = 10
	Height = 40
)

var emptyRow [Width]CellColor

// Board is the 40x10 playfield.
type Board struct {
	cells [Height][Width]CellColor
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get reports whether the cell at (x, y) should be treated as occupied.
// Any x outside [0,10) or any y<0 is treated as a wall/floor (occupied);
// the board is open above row 39.
func (b *Board) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 {
		return true
	}
	if y >= Height {
		return false
	}
	return b.cells[y][x] != Empty
}

// At returns the raw cell color at (x, y). Callers must pass in-range
// coordinates.
func (b *Board) At(x, y int) CellColor {
	return b.cells[y][x]
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y][x] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) rowEmpty(y int) bool {
	return b.cells[y] == emptyRow
}

// Place writes loc's four cells with its piece color, clears and
// compacts any full rows, and returns the number of rows cleared. The
// caller must only pass a loc whose cells all satisfy 0<=x<10, 0<=y<40.
func (b *Board) Place(loc PieceLocation) int {
	for _, c := range loc.Cells() {
		b.cells[c[1]][c[0]] = PieceColor(loc.Piece)
	}

	row := 0
	for i := 0; i < Height; i++ {
		if b.rowFull(i) {
			continue
		}
		b.cells[row] = b.cells[i]
		row++
	}
	for i := row; i < Height; i++ {
		b.cells[i] = emptyRow
	}
	return Height - row
}

// IsPC reports whether the board is a perfect clear: row 0 entirely
// empty implies the whole field is empty, since place never leaves a
// suspended configuration.
func (b *Board) IsPC() bool {
	return b.rowEmpty(0)
}

// StackHeight returns the index of the lowest fully-empty row scanning
// from the bottom, i.e. how tall the stack currently is.
func (b *Board) StackHeight() int {
	for y := 0; y < Height; y++ {
		if b.rowEmpty(y) {
			return y
		}
	}
	return Height
}

// AddGarbage shifts every existing row up by len(holes) and fills the
// bottom len(holes) rows with Garbage cells, leaving one empty column
// per row at holes[len(holes)-1-y] (holes are deposited bottom-up in
// the order given). Rows shifted beyond row 39 are discarded.
func (b *Board) AddGarbage(holes []int) {
	n := len(holes)
	if n == 0 {
		return
	}
	for y := Height - 1; y >= 0; y-- {
		if y < n {
			var row [Width]CellColor
			for x := range row {
				row[x] = Garbage
			}
			row[holes[n-1-y]] = Empty
			b.cells[y] = row
		} else {
			b.cells[y] = b.cells[y-n]
		}
	}
}

// Rows returns a snapshot of the full grid, bottom row first, suitable
// for serializing into a "start" frame.
func (b *Board) Rows() [Height][Width]CellColor {
	return b.cells
}
