package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/meta"
)

func main() {
	numGames := flag.Int("n", meta.NUM_GAMES, "Number of games to play")
	side := flag.Int("side", meta.SIDE, "Side length of the board")
	players := flag.Int("players", meta.PLAYERS, "Number of players")
	othello := flag.Bool("othello", meta.OTHELLO, "Seed the four center cells (two players only)")
	bots := flag.String("bots", meta.STRATEGY, "Comma separated strategy per player, a single name is seated everywhere")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines each bot scores candidates with")
	workers := flag.Int("workers", 0, "Number of games played concurrently (0 for one per CPU)")
	seed := flag.Uint64("seed", 0, "Seed for the whole batch (0 for a random seed)")
	out := flag.String("out", "", "Directory to write experiment records to")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	matchUp, err := seat(*bots, *players, *goroutines)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -bots")
	}

	report, err := experiments.Run(experiments.Config{
		Name:      "reversi",
		Side:      *side,
		Players:   *players,
		Othello:   *othello,
		NumGames:  *numGames,
		Workers:   *workers,
		Seed:      *seed,
		MatchUps:  [][]metrics.AgentConfig{matchUp},
		OutputDir: *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	tally := report.Tallies[0]
	for player := 1; player <= *players; player++ {
		fmt.Printf("Player %d wins: %.2f%%\n", player, 100*tally.WinRate(player))
	}
	fmt.Printf("Ties: %.2f%%\n", 100*tally.TieRate())
	if report.Dir != "" {
		fmt.Printf("Records written to %s\n", report.Dir)
	}
}

// seat turns the -bots flag into one agent per player id.
func seat(bots string, players, goroutines int) ([]metrics.AgentConfig, error) {
	names := strings.Split(bots, ",")
	if len(names) == 1 {
		for len(names) < players {
			names = append(names, names[0])
		}
	}
	if len(names) != players {
		return nil, fmt.Errorf("got %d bots for %d players", len(names), players)
	}
	matchUp := make([]metrics.AgentConfig, players)
	for i, name := range names {
		matchUp[i] = metrics.AgentConfig{ID: i + 1, Strategy: strings.TrimSpace(name), Goroutines: goroutines}
	}
	return matchUp, nil
}
