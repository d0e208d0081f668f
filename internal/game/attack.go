package game

import (
	"github.com/tetris-bot-protocol/battletris/internal/board"
	"github.com/tetris-bot-protocol/battletris/internal/config"
)

// computeAttack updates combo/back-to-back from the line-clear count and
// spin of a just-applied placement and returns the clear delay and the
// garbage owed to the opponent.
func (s *State) computeAttack(cleared int, spin board.Spin, cfg *config.Config) (clearDelay, garbageSent int) {
	if cleared == 0 {
		s.combo = 0
		return 0, 0
	}

	isHard := spin != board.NoSpin || cleared == 4
	isPC := s.Board.IsPC()

	if isPC {
		clearDelay = cfg.Delays.PC[cleared-1]
	} else {
		clearDelay = cfg.Delays.Clear[cleared-1]
	}

	switch spin {
	case board.NoSpin:
		garbageSent = cfg.Garbage.Clear[cleared-1]
	case board.Mini:
		garbageSent = cfg.Garbage.Mini[cleared-1]
	case board.Full:
		garbageSent = cfg.Garbage.Spin[cleared-1]
	}

	if s.backToBack && isHard {
		garbageSent += cfg.Garbage.BackToBack
	}

	comboIdx := s.combo
	if comboIdx > len(cfg.Garbage.Combo)-1 {
		comboIdx = len(cfg.Garbage.Combo) - 1
	}
	garbageSent += cfg.Garbage.Combo[comboIdx]

	if isPC {
		if cfg.Garbage.PCAdditive {
			garbageSent += cfg.Garbage.PC[cleared-1]
		} else {
			garbageSent = cfg.Garbage.PC[cleared-1]
		}
	}

	s.backToBack = isHard
	s.combo++

	return clearDelay, garbageSent
}
