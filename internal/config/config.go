// Package config holds the immutable per-match BattleConfig consumed by
// the game-state, move-generator, and match-driver layers.
package config

import "fmt"

// Delays holds every quanta-denominated timing field.
type Delays struct {
	Start    int    `json:"start"`
	Spawn    int    `json:"spawn"`
	Movement int    `json:"movement"`
	Softdrop int    `json:"softdrop"`
	Clear    [4]int `json:"clear"`
	PC       [4]int `json:"pc"`
	Garbage  int    `json:"garbage"`
}

// Garbage holds every garbage-economy tuning field.
type Garbage struct {
	Clear          [4]int  `json:"clear"`
	Mini           [3]int  `json:"mini"`
	Spin           [3]int  `json:"spin"`
	BackToBack     int     `json:"back_to_back"`
	PC             [4]int  `json:"pc"`
	PCAdditive     bool    `json:"pc_additive"`
	Combo          []int   `json:"combo"`
	ChangeOnAttack bool    `json:"change_on_attack"`
	Messiness      float64 `json:"messiness"`
	Countering     bool    `json:"countering"`
	Blocking       bool    `json:"blocking"`
}

// Config is the complete, immutable BattleConfig for one match.
type Config struct {
	TimeQuantaMs  int     `json:"time_quanta_ms"`
	NextQueueSize int     `json:"next_queue_size"`
	Delays        Delays  `json:"delays"`
	Garbage       Garbage `json:"garbage"`
}

// Validate checks the range-restricted fields.
func (c *Config) Validate() error {
	if c.TimeQuantaMs < 1 || c.TimeQuantaMs >= 10000 {
		return fmt.Errorf("config: time_quanta_ms must be in [1, 10000), got %d", c.TimeQuantaMs)
	}
	if len(c.Garbage.Combo) == 0 {
		return fmt.Errorf("config: garbage.combo must not be empty")
	}
	return nil
}

// PPT returns the "ppt" preset named config: Puyo Puyo Tetris style
// attack tables and delays.
func PPT() Config {
	return Config{
		TimeQuantaMs:  16,
		NextQueueSize: 5,
		Delays: Delays{
			Start:    180,
			Spawn:    7,
			Movement: 2,
			Softdrop: 2,
			Clear:    [4]int{36, 41, 41, 46},
			PC:       [4]int{1, 1, 1, 1},
			Garbage:  30,
		},
		Garbage: Garbage{
			Clear:          [4]int{0, 1, 2, 4},
			Mini:           [3]int{0, 1, 2},
			Spin:           [3]int{2, 4, 6},
			BackToBack:     1,
			PC:             [4]int{10, 10, 10, 10},
			PCAdditive:     false,
			Combo:          []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4, 5},
			ChangeOnAttack: true,
			Messiness:      0.3,
			Countering:     true,
			Blocking:       false,
		},
	}
}

// Named resolves a config preset by name. "ppt" is the only preset
// currently shipped.
func Named(name string) (Config, error) {
	switch name {
	case "ppt":
		return PPT(), nil
	default:
		return Config{}, fmt.Errorf("config: unknown preset %q", name)
	}
}
