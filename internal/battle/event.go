package battle

import "container/heap"

// Side identifies one of the two competitors.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Kind is the event variant. The numeric values double as the tie-break
// priority within a virtual-time quantum: lower value goes first, so
// outgoing garbage lands before garbage checks, which run before new
// move requests, which run before polls.
type Kind int

const (
	KindSendGarbage Kind = iota
	KindCheckGarbage
	KindRequestMove
	KindPollMove
)

// Event is one scheduled occurrence on the virtual clock.
type Event struct {
	Side Side
	Time int64
	Kind Kind

	// GarbageAmount is meaningful only for KindSendGarbage.
	GarbageAmount int
	// RequestedAt is meaningful only for KindPollMove: the virtual time
	// the RequestMove that spawned this poll was issued at.
	RequestedAt int64
}

// eventQueue is a container/heap priority queue ordered by (Time, Kind)
// ascending, so Pop always returns the earliest, highest-priority event.
type eventQueue []Event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].Time != q[j].Time {
		return q[i].Time < q[j].Time
	}
	return q[i].Kind < q[j].Kind
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(Event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ heap.Interface = (*eventQueue)(nil)
