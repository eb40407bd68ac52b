package searcher

import (
	"errors"
	"fmt"
	"strings"

	"reversi/experiments/metrics"
	"reversi/game"
)

var (
	// ErrNoMoves is returned when the player to move has no legal move.
	ErrNoMoves = errors.New("no available moves")
	// ErrUnknownStrategy is returned by New for an unrecognised name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy picks a move for the player whose turn it is. Candidate moves are
// explored only through SimulateMoves, so the state passed in is never modified.
type Strategy interface {
	Name() string
	FindMove(state game.State) (game.Position, metrics.SearchMetric, error)
}

// Names accepted by New, aliases included.
var Names = []string{"random", "greedy", "smart", "seer", "lookahead", "very-smart"}

func New(name string, options ...Option) (Strategy, error) {
	switch strings.ToLower(name) {
	case "random":
		return NewRandom(options...), nil
	case "greedy", "smart":
		return NewGreedy(options...), nil
	case "seer", "lookahead", "very-smart":
		return NewSeer(options...), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names, ", "))
}

// Play asks strategy for a move and applies it to the live game.
// On ErrNoMoves nothing is applied and the game is left untouched.
func Play(strategy Strategy, g *game.Game) (game.Position, metrics.SearchMetric, error) {
	move, metric, err := strategy.FindMove(g)
	if err != nil {
		return move, metric, err
	}
	if err := g.ApplyMove(move); err != nil {
		return move, metric, fmt.Errorf("%s chose %v: %w", strategy.Name(), move, err)
	}
	return move, metric, nil
}

// pieces is the number of cells player owns in state.
func pieces(state game.State, player int) float64 {
	return float64(state.Grid().Count(player))
}
