package board

// Spin classifies a placement as a non-spin, a mini T-spin, or a full
// T-spin. Only T pieces ever carry Mini or Full.
type Spin int8

const (
	NoSpin Spin = iota
	Mini
	Full
)

func (s Spin) String() string {
	switch s {
	case NoSpin:
		return "None"
	case Mini:
		return "Mini"
	case Full:
		return "Full"
	default:
		return "Spin(?)"
	}
}

// ClassifySpin determines the spin of a just-accepted rotation. kick is
// the index (0..4) of the wall-kick candidate that was unobstructed.
// Non-T pieces always yield NoSpin.
func ClassifySpin(b *Board, loc PieceLocation, kick int) Spin {
	if loc.Piece != T {
		return NoSpin
	}

	var miniCorners, normCorners int

	check := func(dx, dy int) bool {
		r := loc.Rotation.rotate(offset{dx, dy})
		return b.Get(loc.X+r.dx, loc.Y+r.dy)
	}

	if check(-1, 1) {
		miniCorners++
	}
	if check(1, 1) {
		miniCorners++
	}
	if check(-1, -1) {
		normCorners++
	}
	if check(1, -1) {
		normCorners++
	}

	switch {
	case normCorners+miniCorners < 3:
		return NoSpin
	case miniCorners < 2 && kick != 4:
		return Mini
	default:
		return Full
	}
}
