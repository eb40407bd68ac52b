package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/utils"
)

type seerStrategy struct {
	config
}

// NewSeer returns a two-ply lookahead strategy. Each candidate is scored by
// the mover's expected piece count after the next player replies uniformly
// at random. A candidate that ends the game is taken immediately, scanning
// candidates in ascending order. A candidate whose resulting player has no
// reply is skipped; if every candidate is skipped the choice is uniform.
func NewSeer(options ...Option) Strategy {
	return &seerStrategy{config: newConfig(options)}
}

func (s *seerStrategy) Name() string {
	return "seer"
}

func (s *seerStrategy) FindMove(state game.State) (game.Position, metrics.SearchMetric, error) {
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
		if next.Done() {
			return evaluation{terminal: true}, nil
		}

		replies := next.AvailableMoves()
		if len(replies) == 0 {
			return evaluation{skip: true}, nil
		}
		total := 0.0
		for _, reply := range replies {
			final, err := next.SimulateMoves([]game.Position{reply})
			if err != nil {
				return evaluation{}, err
			}
			collector.AddSimulation()
			total += pieces(final, player)
		}
		return evaluation{score: total / float64(len(replies))}, nil
	})
	if err != nil {
		return game.Position{}, collector.Complete(), err
	}

	if last := len(results) - 1; results[last].terminal {
		return moves[last], collector.Complete(), nil
	}

	var candidates []game.Position
	var scores []float64
	for i, e := range results {
		if !e.skip {
			candidates = append(candidates, moves[i])
			scores = append(scores, e.score)
		}
	}
	if len(candidates) == 0 {
		return moves[s.rng.Intn(len(moves))], collector.Complete(), nil
	}
	best := utils.Maxima(candidates, scores)
	return best[s.rng.Intn(len(best))], collector.Complete(), nil
}
