package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/utils"
)

type greedyStrategy struct {
	config
}

// NewGreedy returns a one-ply strategy maximising the mover's piece count
// right after its move. Ties are broken uniformly at random.
func NewGreedy(options ...Option) Strategy {
	return &greedyStrategy{config: newConfig(options)}
}

func (s *greedyStrategy) Name() string {
	return "greedy"
}

func (s *greedyStrategy) FindMove(state game.State) (game.Position, metrics.SearchMetric, error) {
	collector := s.newCollector()
	collector.Start(s.Name(), s.goroutines)

	moves := state.AvailableMoves()
	if len(moves) == 0 {
		return game.Position{}, collector.Complete(), ErrNoMoves
	}

	player := state.Turn()
	results, err := s.evaluateAll(moves, func(move game.Position) (evaluation, error) {
		collector.AddCandidate()
		next, err := state.SimulateMoves([]game.Position{move})
		if err != nil {
			return evaluation{}, err
		}
		collector.AddSimulation()
		return evaluation{score: pieces(next, player)}, nil
	})
	if err != nil {
		return game.Position{}, collector.Complete(), err
	}

	scores := make([]float64, len(results))
	for i, e := range results {
		scores[i] = e.score
	}
	best := utils.Maxima(moves, scores)
	return best[s.rng.Intn(len(best))], collector.Complete(), nil
}
