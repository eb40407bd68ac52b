package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// LocalEngine drives one live game, asking the strategy seated at each
// player id (Agents[id-1]) for its move.
type LocalEngine struct {
	Game   *game.Game
	Agents []searcher.Strategy
}

func NewLocalEngine(g *game.Game, agents []searcher.Strategy) (*LocalEngine, error) {
	if len(agents) != g.NumPlayers() {
		return nil, fmt.Errorf("%d agents for a %d player game", len(agents), g.NumPlayers())
	}
	for i, agent := range agents {
		if agent == nil {
			return nil, fmt.Errorf("no agent for player %d", i+1)
		}
	}
	return &LocalEngine{
		Game:   g,
		Agents: agents,
	}, nil
}

func (e *LocalEngine) Run() ([]int, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Game.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %d is starting", gameMetric.StartingPlayer)

	for step := 1; !e.Game.Done(); step++ {
		player := e.Game.Turn()
		agent := e.Agents[player-1]

		move, searchMetric, err := searcher.Play(agent, e.Game)
		if err != nil {
			return nil, gameMetric, moveMetrics, fmt.Errorf("step %d, player %d (%s): %w", step, player, agent.Name(), err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		log.Debug().
			Int("step", step).
			Int("player", player).
			Str("strategy", agent.Name()).
			Stringer("move", move).
			Msg("move applied")
	}

	outcome := e.Game.Outcome()
	gameMetric.Winners = outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Ints("winners", outcome).Int("moves", gameMetric.TotalMoves).Msgf("game over\n%s", e.Game)
	return outcome, gameMetric, moveMetrics, nil
}
