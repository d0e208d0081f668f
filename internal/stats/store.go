package stats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// PairStats tallies every match played between one ordered bot pair,
// keyed without regard to which side either bot played.
type PairStats struct {
	Played        int           `json:"played"`
	WinsA         int           `json:"wins_a"`
	WinsB         int           `json:"wins_b"`
	NoContests    int           `json:"no_contests"`
	TotalDuration time.Duration `json:"total_duration"`
}

// MatchResult is one completed (or cancelled) match to record.
type MatchResult struct {
	BotA, BotB string
	// Winner is BotA, BotB, or "" for no contest (cancelled match).
	Winner   string
	Duration time.Duration
}

// PairKey canonicalizes a bot pair so the ledger entry for (a, b) and
// (b, a) is the same record.
func PairKey(a, b string) string {
	if a <= b {
		return a + "|" + b
	}
	return b + "|" + a
}

// Store wraps BadgerDB for the match-result ledger.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the ledger database in the platform
// data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbDir)
}

// OpenAt opens the ledger database at an explicit directory.
func OpenAt(dbDir string) (*Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadPairStats loads the tally for a bot pair, returning a zero-value
// PairStats if the pair has never played.
func (s *Store) LoadPairStats(botA, botB string) (*PairStats, error) {
	stats := &PairStats{}
	key := []byte(PairKey(botA, botB))

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	return stats, err
}

// RecordMatch folds one completed match into its pair's running tally.
// The ledger is keyed by pair, not by individual bot, so WinsA/WinsB
// always refer to whichever of the pair is lexicographically first
// (matching PairKey) regardless of result.BotA/result.BotB order.
func (s *Store) RecordMatch(result MatchResult) error {
	first, second := result.BotA, result.BotB
	if first > second {
		first, second = second, first
	}

	stats, err := s.LoadPairStats(result.BotA, result.BotB)
	if err != nil {
		return err
	}

	stats.Played++
	stats.TotalDuration += result.Duration

	switch {
	case result.Winner == "":
		stats.NoContests++
	case result.Winner == first:
		stats.WinsA++
	case result.Winner == second:
		stats.WinsB++
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := []byte(PairKey(result.BotA, result.BotB))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Summary renders a one-line human-readable tally, in the order the
// pair's names sort.
func (p *PairStats) Summary(botA, botB string) string {
	first, second := botA, botB
	if first > second {
		first, second = second, first
	}
	return fmt.Sprintf("%s vs %s: played %d %s_wins %d %s_wins %d no_contests %d",
		first, second, p.Played, first, p.WinsA, second, p.WinsB, p.NoContests)
}
