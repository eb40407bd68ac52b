package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
	"reversi/searcher"
)

func TestNewLocalEngine(t *testing.T) {
	g, err := game.New(8, 2, true)
	require.NoError(t, err)

	_, err = NewLocalEngine(g, []searcher.Strategy{searcher.NewRandom()})
	require.Error(t, err, "Should reject fewer agents than players")

	_, err = NewLocalEngine(g, []searcher.Strategy{searcher.NewRandom(), nil})
	require.Error(t, err, "Should reject a missing agent")
}

func TestLocalEngineRun(t *testing.T) {
	cases := []struct {
		name    string
		side    int
		players int
		othello bool
		agents  []string
	}{
		{"othello random vs greedy", 8, 2, true, []string{"random", "greedy"}},
		{"othello seer vs random", 6, 2, true, []string{"seer", "random"}},
		{"three players plain", 7, 3, false, []string{"random", "greedy", "seer"}},
		{"four players plain", 6, 4, false, []string{"greedy", "greedy", "random", "random"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := game.New(c.side, c.players, c.othello)
			require.NoError(t, err)
			agents := make([]searcher.Strategy, len(c.agents))
			for i, name := range c.agents {
				agents[i], err = searcher.New(name, searcher.WithSeed(uint64(i+1)), searcher.WithMetrics())
				require.NoError(t, err)
			}
			e, err := NewLocalEngine(g, agents)
			require.NoError(t, err)

			outcome, gameMetric, moveMetrics, err := e.Run()

			require.NoError(t, err)
			require.True(t, g.Done(), "Run should only return once the game is over")
			require.Equal(t, g.Outcome(), outcome)
			require.NotEmpty(t, outcome)
			require.Equal(t, outcome, gameMetric.Winners)
			require.Equal(t, 1, gameMetric.StartingPlayer)
			require.Len(t, moveMetrics, gameMetric.TotalMoves)
			require.LessOrEqual(t, gameMetric.TotalMoves, c.side*c.side)
			for i, mm := range moveMetrics {
				require.Equal(t, i+1, mm.Step)
				require.Equal(t, c.agents[mm.Player-1], mm.Strategy, "Each move should be made by the seated agent")
			}
		})
	}
}

