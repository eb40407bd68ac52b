package searcher

import (
	"golang.org/x/sync/errgroup"

	"reversi/game"
)

type evaluation struct {
	score    float64
	terminal bool // Ends the game: chosen at once, later candidates are irrelevant
	skip     bool // No score could be computed
}

type evaluator func(move game.Position) (evaluation, error)

// evaluateAll scores moves in order and returns the evaluations up to and
// including the first terminal one. With more than one goroutine every
// candidate is scored concurrently and the result is truncated afterwards,
// which yields the same answer as the sequential early exit.
func (c config) evaluateAll(moves []game.Position, evaluate evaluator) ([]evaluation, error) {
	results := make([]evaluation, len(moves))

	if c.goroutines <= 1 {
		for i, move := range moves {
			e, err := evaluate(move)
			if err != nil {
				return nil, err
			}
			results[i] = e
			if e.terminal {
				return results[:i+1], nil
			}
		}
		return results, nil
	}

	var g errgroup.Group
	g.SetLimit(c.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			e, err := evaluate(move)
			results[i] = e
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, e := range results {
		if e.terminal {
			return results[:i+1], nil
		}
	}
	return results, nil
}
