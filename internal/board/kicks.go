package board

// kickOffsets returns the SRS offset table entries for a piece in a given
// rotation. Index i of kickOffsets(piece, from) paired against index i of
// kickOffsets(piece, to) gives the i-th wall-kick candidate translation
// when rotating piece from "from" to "to". O has a single entry (no real
// kick); I has its own 5-entry table; T, J, L, S, Z share the common
// 5-entry table.
func kickOffsets(p Piece, r Rotation) []offset {
	switch p {
	case O:
		switch r {
		case North:
			return []offset{{0, 0}}
		case East:
			return []offset{{0, -1}}
		case South:
			return []offset{{-1, -1}}
		case West:
			return []offset{{-1, 0}}
		}
	case I:
		switch r {
		case North:
			return []offset{{0, 0}, {-1, 0}, {2, 0}, {-1, 0}, {2, 0}}
		case East:
			return []offset{{-1, 0}, {0, 0}, {0, 0}, {0, 1}, {0, -2}}
		case South:
			return []offset{{-1, 1}, {1, 1}, {-2, 1}, {1, 0}, {-2, 0}}
		case West:
			return []offset{{0, 1}, {0, 1}, {0, 1}, {0, -1}, {0, 2}}
		}
	default: // T, J, L, S, Z
		switch r {
		case North:
			return []offset{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}
		case East:
			return []offset{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}
		case South:
			return []offset{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}
		case West:
			return []offset{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}
		}
	}
	return nil
}
