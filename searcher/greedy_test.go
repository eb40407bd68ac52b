package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

func TestGreedyFindMove(t *testing.T) {
	t.Run("picks the single best move", func(t *testing.T) {
		state := node(2, map[game.Position]*mockState{a: leaf(2, 3), b: leaf(2, 6), c: leaf(1, 9)})

		move, metric, err := NewGreedy(WithSeed(1), WithMetrics()).FindMove(state)

		require.NoError(t, err)
		require.Equal(t, b, move, "Only the mover's pieces should count")
		require.Equal(t, 3, metric.Candidates)
		require.Equal(t, 3, metric.Simulations, "One simulation per candidate")
	})

	t.Run("breaks ties at random", func(t *testing.T) {
		state := node(1, map[game.Position]*mockState{a: leaf(1, 3), b: leaf(1, 5), c: leaf(1, 5)})
		strategy := NewGreedy(WithSeed(5))

		seen := map[game.Position]int{}
		for i := 0; i < 200; i++ {
			move, _, err := strategy.FindMove(state)
			require.NoError(t, err)
			seen[move]++
		}

		require.Zero(t, seen[a], "Worse move should never be chosen")
		require.Positive(t, seen[b])
		require.Positive(t, seen[c])
	})

	t.Run("parallel evaluation picks the same move", func(t *testing.T) {
		state := node(1, map[game.Position]*mockState{a: leaf(1, 8), b: leaf(1, 5), c: leaf(1, 2)})

		move, metric, err := NewGreedy(WithSeed(1), WithGoroutines(3), WithMetrics()).FindMove(state)

		require.NoError(t, err)
		require.Equal(t, a, move)
		require.Equal(t, 3, metric.Goroutines)
		require.Equal(t, 3, metric.Simulations)
	})

	t.Run("propagates simulation errors", func(t *testing.T) {
		state := node(1, map[game.Position]*mockState{a: leaf(1, 1)})
		state.moves = append(state.moves, b)

		_, _, err := NewGreedy(WithSeed(1)).FindMove(state)
		require.Error(t, err)
	})
}
