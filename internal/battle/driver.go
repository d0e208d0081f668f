// Package battle owns the match driver: the event heap, the virtual
// clock, the wall-clock pacer, and the two side states it interleaves
// into one running match between two bot channels.
package battle

import (
	"container/heap"
	"time"

	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/botproto"
	"github.com/tetris-bot-protocol/battletris/internal/config"
	"github.com/tetris-bot-protocol/battletris/internal/game"
)

// pollTimeoutMs is the sole per-response deadline: an outstanding move
// request that has gone unanswered this long hands the match to the
// opponent.
const pollTimeoutMs = 500

// Battle runs one match between two already-launched bot channels.
type Battle struct {
	cfg      *config.Config
	states   [2]*game.State
	channels [2]botproto.Channel
}

// New builds a battle from a validated config and the two sides'
// channels, in Left/Right order.
func New(cfg *config.Config, left, right botproto.Channel) *Battle {
	return &Battle{
		cfg:      cfg,
		states:   [2]*game.State{game.New(), game.New()},
		channels: [2]botproto.Channel{left, right},
	}
}

// State returns a side's game state, mostly useful for tests and
// post-match inspection.
func (b *Battle) State(s Side) *game.State { return b.states[s] }

// Run drives the match to completion. cancelled is polled after every
// sleep; once it reports true the match stops and returns (0, false)
// without a decided winner. A normal decided match returns the winning
// side and true.
func (b *Battle) Run(cancelled func() bool) (Side, bool) {
	cfg := b.cfg
	quanta := time.Duration(cfg.TimeQuantaMs) * time.Millisecond

	var eq eventQueue
	heap.Init(&eq)

	for _, side := range []Side{Left, Right} {
		b.states[side].RefillQueue(cfg.NextQueueSize, nil)
		b.channels[side].Send(botproto.NewRulesFrame())
		b.channels[side].Send(botproto.BuildStartFrame(b.states[side]))
		heap.Push(&eq, Event{Side: side, Time: int64(cfg.Delays.Start), Kind: KindRequestMove})
	}

	startWall := time.Now()
	var winner Side
	decided := false

mainLoop:
	for eq.Len() > 0 {
		ev := heap.Pop(&eq).(Event)

		target := startWall.Add(time.Duration(ev.Time) * quanta)
		if wait := time.Until(target); wait > 0 {
			time.Sleep(wait)
		}
		if cancelled != nil && cancelled() {
			return 0, false
		}

		current := time.Since(startWall).Milliseconds() / int64(cfg.TimeQuantaMs)

		switch ev.Kind {
		case KindRequestMove:
			b.channels[ev.Side].Send(botproto.NewSuggestFrame())
			heap.Push(&eq, Event{Side: ev.Side, Time: current + 1, Kind: KindPollMove, RequestedAt: current})

		case KindPollMove:
			msg, ok, err := b.channels[ev.Side].TryRecv()
			if err != nil {
				winner, decided = ev.Side.Other(), true
				break mainLoop
			}
			if !ok {
				heap.Push(&eq, Event{Side: ev.Side, Time: current + 1, Kind: KindPollMove, RequestedAt: ev.RequestedAt})
				if (current-ev.RequestedAt)*int64(cfg.TimeQuantaMs) > pollTimeoutMs {
					winner, decided = ev.Side.Other(), true
					break mainLoop
				}
				continue
			}

			if msg.Type != botproto.MsgSuggestion {
				// info/ready/error while a suggestion is outstanding: the
				// message is dropped and no poll is re-enqueued. This side
				// has no other event pending at this point, so it is not
				// polled again for the rest of the match.
				continue
			}

			suggestions := make([]game.Suggestion, 0, len(msg.Moves))
			for _, mv := range msg.Moves {
				s, err := botproto.ToSuggestion(mv)
				if err != nil {
					continue
				}
				suggestions = append(suggestions, s)
			}

			played, accepted := b.states[ev.Side].PlaySuggestion(suggestions, cfg)
			if !accepted {
				winner, decided = ev.Side.Other(), true
				break mainLoop
			}

			b.channels[ev.Side].Send(botproto.PlayFrame{Type: "play", Move: botproto.FromPlayedMove(played)})

			if played.DidClear && cfg.Garbage.Blocking {
				heap.Push(&eq, Event{
					Side: ev.Side,
					Time: current + int64(played.PlacementDelay) + int64(played.ClearDelay) + int64(cfg.Delays.Spawn),
					Kind: KindRequestMove,
				})
			} else {
				heap.Push(&eq, Event{
					Side: ev.Side,
					Time: current + int64(played.PlacementDelay) + int64(played.ClearDelay),
					Kind: KindCheckGarbage,
				})
			}

			if played.GarbageSent > 0 {
				heap.Push(&eq, Event{
					Side:          ev.Side,
					Time:          current + int64(played.PlacementDelay),
					Kind:          KindSendGarbage,
					GarbageAmount: played.GarbageSent,
				})
			}

			side := ev.Side
			b.states[side].RefillQueue(cfg.NextQueueSize, func(p board.Piece) {
				b.channels[side].Send(botproto.NewPieceFrame{Type: "new_piece", Piece: p.String()})
			})

		case KindSendGarbage:
			amount := ev.GarbageAmount
			if cfg.Garbage.Countering {
				amount = b.states[ev.Side].CounterGarbage(amount)
			}
			if amount > 0 {
				b.states[ev.Side.Other()].QueueGarbage(amount, current+int64(cfg.Delays.Garbage))
			}

		case KindCheckGarbage:
			holes := b.states[ev.Side].AddGarbage(current, cfg)
			if len(holes) > 0 {
				b.channels[ev.Side].Send(botproto.BuildStartFrame(b.states[ev.Side]))
			}
			heap.Push(&eq, Event{Side: ev.Side, Time: current + int64(cfg.Delays.Spawn), Kind: KindRequestMove})
		}
	}

	for eq.Len() > 0 {
		ev := heap.Pop(&eq).(Event)
		if ev.Kind == KindPollMove {
			_, _ = b.channels[ev.Side].RecvBlocking()
		}
	}

	if !decided {
		return 0, false
	}
	return winner, true
}
