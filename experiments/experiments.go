package experiments

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// Config describes a batch of bot-versus-bot games.
type Config struct {
	Name     string
	Side     int
	Players  int
	Othello  bool
	NumGames int // Per matchup
	Workers  int // Games played concurrently, runtime.NumCPU() if 0
	Seed     uint64
	// Each matchup seats one agent per player id, in order
	MatchUps  [][]metrics.AgentConfig
	OutputDir string // Records are written under this directory unless empty
}

// Tally aggregates the outcomes of one matchup.
type Tally struct {
	MatchUp []metrics.AgentConfig
	Games   int
	Wins    []int // Indexed by player id, Wins[0] is unused
	Ties    int
}

func (t Tally) WinRate(player int) float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Wins[player]) / float64(t.Games)
}

func (t Tally) TieRate() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.Ties) / float64(t.Games)
}

// Report is the result of Run. Nothing outside it is modified.
type Report struct {
	ID      uuid.UUID
	Seed    uint64
	Tallies []Tally // One per matchup
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Dir     string // Where records were written, if anywhere
}

type job struct {
	matchUp int
	seed    uint64
}

type result struct {
	outcome     []int
	gameMetric  metrics.GameMetric
	moveMetrics []metrics.MoveMetric
}

// Run plays config.NumGames games per matchup. Game seeds are drawn up front
// from config.Seed so results do not depend on the number of workers.
func Run(config Config) (Report, error) {
	if err := validate(config); err != nil {
		return Report{}, err
	}
	seed := config.Seed
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	report := Report{ID: uuid.New(), Seed: seed}
	start := time.Now()

	log.Info().Msgf("starting %s experiment %s with seed %d...", config.Name, report.ID, seed)

	rng := rand.New(rand.NewSource(seed))
	jobs := make([]job, 0, len(config.MatchUps)*config.NumGames)
	for mi := range config.MatchUps {
		for i := 0; i < config.NumGames; i++ {
			jobs = append(jobs, job{matchUp: mi, seed: rng.Uint64()})
		}
	}

	results := make([]result, len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)
	for ji, j := range jobs {
		g.Go(func() error {
			res, err := runGame(config, config.MatchUps[j.matchUp], j.seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", j.matchUp+1, ji+1, err)
			}
			results[ji] = res
			log.Info().Msgf("completed matchup %d of %d game %d with winners: %v",
				j.matchUp+1, len(config.MatchUps), ji%config.NumGames+1, res.outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report.Tallies = make([]Tally, len(config.MatchUps))
	for mi, matchUp := range config.MatchUps {
		report.Tallies[mi] = Tally{MatchUp: matchUp, Wins: make([]int, config.Players+1)}
	}
	for ji, res := range results {
		mi := jobs[ji].matchUp
		tally := &report.Tallies[mi]
		tally.Games++
		if len(res.outcome) == 1 {
			tally.Wins[res.outcome[0]]++
		} else {
			tally.Ties++
		}

		agents := make([]int, len(config.MatchUps[mi]))
		for seat, agent := range config.MatchUps[mi] {
			agents[seat] = agent.ID
		}
		report.Games = append(report.Games, metrics.GameRecord{
			ID:         ji + 1,
			MatchUp:    mi + 1,
			Agents:     agents,
			GameMetric: res.gameMetric,
		})
		for _, mm := range res.moveMetrics {
			report.Moves = append(report.Moves, metrics.MoveRecord{Game: ji + 1, MoveMetric: mm})
		}
	}

	log.Info().Msgf("completed %s experiment in %s", config.Name, time.Since(start))

	if config.OutputDir != "" {
		dir, err := write(config, report, start)
		if err != nil {
			return report, err
		}
		report.Dir = dir
	}
	return report, nil
}

func validate(config Config) error {
	if _, err := game.New(config.Side, config.Players, config.Othello); err != nil {
		return err
	}
	if config.NumGames <= 0 {
		return fmt.Errorf("number of games must be positive, got %d", config.NumGames)
	}
	if len(config.MatchUps) == 0 {
		return errors.New("no matchups to play")
	}
	for mi, matchUp := range config.MatchUps {
		if len(matchUp) != config.Players {
			return fmt.Errorf("matchup %d seats %d agents for %d players", mi+1, len(matchUp), config.Players)
		}
		for _, agent := range matchUp {
			if _, err := searcher.New(agent.Strategy); err != nil {
				return fmt.Errorf("matchup %d: %w", mi+1, err)
			}
		}
	}
	return nil
}

// runGame plays a single game; seed fixes every strategy's choices.
func runGame(config Config, matchUp []metrics.AgentConfig, seed uint64) (result, error) {
	g, err := game.New(config.Side, config.Players, config.Othello)
	if err != nil {
		return result{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	agents := make([]searcher.Strategy, len(matchUp))
	for seat, agent := range matchUp {
		agents[seat], err = searcher.New(agent.Strategy,
			searcher.WithSeed(rng.Uint64()),
			searcher.WithGoroutines(agent.Goroutines),
			searcher.WithMetrics(),
		)
		if err != nil {
			return result{}, err
		}
	}

	e, err := engine.NewLocalEngine(g, agents)
	if err != nil {
		return result{}, err
	}
	outcome, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{}, err
	}
	return result{outcome: outcome, gameMetric: gameMetric, moveMetrics: moveMetrics}, nil
}

func write(config Config, report Report, start time.Time) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name, report.ID)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	end := time.Now()
	err = writer.WriteSetup(metrics.Setup{
		ID:        report.ID,
		Name:      config.Name,
		Side:      config.Side,
		Players:   config.Players,
		Othello:   config.Othello,
		NumGames:  config.NumGames,
		Seed:      report.Seed,
		MatchUps:  config.MatchUps,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}

	var configs []metrics.AgentConfig
	seen := map[int]bool{}
	for _, matchUp := range config.MatchUps {
		for _, agent := range matchUp {
			if !seen[agent.ID] {
				seen[agent.ID] = true
				configs = append(configs, agent)
			}
		}
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
