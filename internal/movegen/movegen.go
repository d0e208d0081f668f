// Package movegen implements the best-first search that, given a board
// and a piece, enumerates every reachable locked placement together
// with the minimum input-cost (in virtual-time units) to reach it.
package movegen

import (
	"container/heap"

	"github.com/tetris-bot-protocol/battletris/internal/board"
)

// Key identifies a distinct final placement: a canonical location plus
// the spin it was locked with.
type Key struct {
	Loc  board.PieceLocation
	Spin board.Spin
}

// cost is a (base, softdrop) pair: base accumulates movement/rotation
// delay plus any softdrop absorbed at the next non-drop transition;
// softdrop accumulates independently, is added into base whenever a
// shift or rotation is taken, and then resets. A lock records base
// alone, so a soft-drop run that ends in a lock adds nothing to the
// recorded cost.
type cost struct {
	base, softdrop int
}

// less reports whether a is strictly better than b: smaller base first,
// ties broken by smaller softdrop.
func (a cost) less(b cost) bool {
	if a.base != b.base {
		return a.base < b.base
	}
	return a.softdrop < b.softdrop
}

func (a cost) equal(b cost) bool {
	return a.base == b.base && a.softdrop == b.softdrop
}

// node is a position reached during the search: an actual (non-canonical)
// location carrying whatever spin classification it was last given.
type node struct {
	loc  board.PieceLocation
	spin board.Spin
}

type queueItem struct {
	node node
	cost cost
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost.less(pq[j].cost) }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(queueItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Pieces spawn at column 4 (center-left of the 10-wide field) on row
// 19, falling back to row 20 when obstructed. No further fallback.
const spawnX = 4

var spawnRows = [2]int{19, 20}

// Generate searches best-first from the spawn position over
// left/right/rotate/soft-drop transitions and returns, for every
// reachable locked placement, the minimum base cost (in virtual-time
// units) to reach it. An empty map means the piece could not even
// spawn.
func Generate(b *board.Board, piece board.Piece, movementDelay, softdropDelay int) map[Key]int {
	start := board.PieceLocation{Piece: piece, Rotation: board.North, X: spawnX, Y: spawnRows[0]}
	if start.Obstructed(b) {
		start.Y = spawnRows[1]
		if start.Obstructed(b) {
			return map[Key]int{}
		}
	}

	reached := map[node]cost{}
	pq := &priorityQueue{}
	startNode := node{loc: start, spin: board.NoSpin}
	reached[startNode] = cost{}
	heap.Push(pq, queueItem{node: startNode, cost: cost{}})

	moves := map[Key]int{}

	reach := func(n node, c cost) {
		if stored, ok := reached[n]; !ok || c.less(stored) {
			reached[n] = c
			heap.Push(pq, queueItem{node: n, cost: c})
		}
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(queueItem)
		cur, curCost := item.node, item.cost
		if stored, ok := reached[cur]; !ok || !stored.equal(curCost) {
			continue // stale entry
		}

		// Left / right.
		for _, dx := range [2]int{-1, 1} {
			next := cur.loc
			next.X += dx
			if !next.Obstructed(b) {
				reach(node{loc: next, spin: board.NoSpin}, cost{
					base: curCost.base + curCost.softdrop + movementDelay,
				})
			}
		}

		// Rotate cw / ccw: first unobstructed kick candidate wins.
		for _, target := range [2]board.Rotation{cur.loc.Rotation.CW(), cur.loc.Rotation.CCW()} {
			for kick, cand := range cur.loc.Rotate(target) {
				if cand.Obstructed(b) {
					continue
				}
				spin := board.ClassifySpin(b, cand, kick)
				reach(node{loc: cand, spin: spin}, cost{
					base: curCost.base + curCost.softdrop + movementDelay,
				})
				break
			}
		}

		// Down.
		down := cur.loc
		down.Y--
		if down.Obstructed(b) {
			key := Key{Loc: cur.loc.CanonicalForm(), Spin: cur.spin}
			if existing, ok := moves[key]; !ok || curCost.base < existing {
				moves[key] = curCost.base
			}
		} else {
			reach(node{loc: down, spin: board.NoSpin}, cost{
				base:     curCost.base,
				softdrop: curCost.softdrop + softdropDelay,
			})
		}
	}

	return moves
}
