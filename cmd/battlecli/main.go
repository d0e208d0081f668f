// Command battlecli runs one match between two bot-protocol
// subprocesses and reports the winner.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/tetris-bot-protocol/battletris/internal/battle"
	"github.com/tetris-bot-protocol/battletris/internal/botproto"
	"github.com/tetris-bot-protocol/battletris/internal/config"
	"github.com/tetris-bot-protocol/battletris/internal/stats"
)

var (
	preset     = flag.String("preset", "ppt", "named config preset to run under")
	configPath = flag.String("config", "", "path to a JSON config file, overrides -preset")
	noStats    = flag.Bool("no-stats", false, "skip recording the result to the match ledger")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		log.Fatal("usage: battlecli [flags] <bot-a-path> <bot-b-path>")
	}
	botAPath, botBPath := args[0], args[1]

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	left, err := botproto.Launch(botAPath)
	if err != nil {
		log.Fatalf("launching %s: %v", botAPath, err)
	}
	defer left.Close()

	right, err := botproto.Launch(botBPath)
	if err != nil {
		log.Fatalf("launching %s: %v", botBPath, err)
	}
	defer right.Close()

	b := battle.New(&cfg, left, right)

	start := time.Now()
	winner, decided := b.Run(nil)
	duration := time.Since(start)

	result := stats.MatchResult{BotA: botAPath, BotB: botBPath, Duration: duration}
	if decided {
		winnerPath := botAPath
		if winner == battle.Right {
			winnerPath = botBPath
		}
		result.Winner = winnerPath
		log.Printf("winner: %s (side=%s) in %s", winnerPath, winner, duration)
	} else {
		log.Printf("no winner (cancelled) after %s", duration)
	}

	if *noStats {
		return
	}
	if err := recordResult(result); err != nil {
		log.Printf("warning: could not record result: %v", err)
	}
}

func loadConfig(path, presetName string) (config.Config, error) {
	if path == "" {
		return config.Named(presetName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func recordResult(result stats.MatchResult) error {
	store, err := stats.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.RecordMatch(result); err != nil {
		return err
	}

	pair, err := store.LoadPairStats(result.BotA, result.BotB)
	if err != nil {
		return err
	}
	log.Print(strings.TrimSpace(pair.Summary(result.BotA, result.BotB)))
	return nil
}
