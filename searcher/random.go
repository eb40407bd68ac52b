package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type randomStrategy struct {
	config
}

// NewRandom returns a strategy choosing uniformly among the available moves.
func NewRandom(options ...Option) Strategy {
	return &randomStrategy{config: newConfig(options)}
}

func (s *randomStrategy) Name() string {
	return "random"
}

func (s *randomStrategy) FindMove(state game.State) (game.Position, metrics.SearchMetric, error) {
	collector := s.newCollector()
	collector.Start(s.Name(), 1)

	moves := state.AvailableMoves()
	if len(moves) == 0 {
		return game.Position{}, collector.Complete(), ErrNoMoves
	}
	for range moves {
		collector.AddCandidate()
	}
	return moves[s.rng.Intn(len(moves))], collector.Complete(), nil
}
