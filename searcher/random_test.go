package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

func TestRandomFindMove(t *testing.T) {
	state := node(1, map[game.Position]*mockState{a: leaf(1, 1), b: leaf(1, 1), c: leaf(1, 1)})

	t.Run("chooses every available move eventually", func(t *testing.T) {
		strategy := NewRandom(WithSeed(7))
		seen := map[game.Position]int{}
		for i := 0; i < 300; i++ {
			move, _, err := strategy.FindMove(state)
			require.NoError(t, err)
			seen[move]++
		}
		require.Len(t, seen, 3, "Every move should be picked at some point")
	})

	t.Run("same seed gives the same choices", func(t *testing.T) {
		first := NewRandom(WithSeed(11))
		second := NewRandom(WithSeed(11))
		for i := 0; i < 20; i++ {
			m1, _, err := first.FindMove(state)
			require.NoError(t, err)
			m2, _, err := second.FindMove(state)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("never simulates", func(t *testing.T) {
		_, metric, err := NewRandom(WithSeed(1), WithMetrics()).FindMove(state)
		require.NoError(t, err)
		require.Equal(t, "random", metric.Strategy)
		require.Equal(t, 3, metric.Candidates)
		require.Zero(t, metric.Simulations)
	})
}
