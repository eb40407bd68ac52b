package searcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

// mockState is a hand-built game tree: each move leads to a fixed child.
type mockState struct {
	turn     int
	moves    []game.Position
	done     bool
	grid     game.Grid
	children map[game.Position]*mockState
}

func (m *mockState) Turn() int {
	return m.turn
}

func (m *mockState) AvailableMoves() []game.Position {
	return m.moves
}

func (m *mockState) Done() bool {
	return m.done
}

func (m *mockState) Grid() game.Grid {
	return m.grid
}

func (m *mockState) SimulateMoves(moves []game.Position) (game.State, error) {
	current := m
	for _, move := range moves {
		child, ok := current.children[move]
		if !ok {
			return nil, fmt.Errorf("unexpected move %v", move)
		}
		current = child
	}
	return current, nil
}

// leaf is a state where player owns count cells.
func leaf(player, count int) *mockState {
	row := make([]int, count)
	for i := range row {
		row[i] = player
	}
	return &mockState{grid: game.Grid{row}}
}

// node builds a state for player to move whose children are keyed by move.
func node(player int, children map[game.Position]*mockState) *mockState {
	s := &mockState{turn: player, children: children, grid: game.Grid{}}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			pos := game.Position{Row: row, Col: col}
			if _, ok := children[pos]; ok {
				s.moves = append(s.moves, pos)
			}
		}
	}
	return s
}

var (
	a = game.Position{Row: 0, Col: 0}
	b = game.Position{Row: 0, Col: 1}
	c = game.Position{Row: 0, Col: 2}
)

func TestNew(t *testing.T) {
	t.Run("resolves names and aliases", func(t *testing.T) {
		cases := map[string]string{
			"random":     "random",
			"greedy":     "greedy",
			"smart":      "greedy",
			"seer":       "seer",
			"lookahead":  "seer",
			"very-smart": "seer",
			"Very-Smart": "seer",
		}
		for name, want := range cases {
			strategy, err := New(name, WithSeed(1))
			require.NoError(t, err, name)
			require.Equal(t, want, strategy.Name(), name)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := New("minimax")
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestNoMoves(t *testing.T) {
	empty := node(1, nil)
	for _, strategy := range []Strategy{NewRandom(), NewGreedy(), NewSeer()} {
		_, _, err := strategy.FindMove(empty)
		require.ErrorIs(t, err, ErrNoMoves, strategy.Name())
	}
}

func TestPlay(t *testing.T) {
	g, err := game.New(4, 2, false)
	require.NoError(t, err)
	require.NoError(t, g.LoadGame(1, game.Grid{
		{1, 2, 2, 0},
		{0, 2, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}))
	require.Equal(t, []game.Position{{Row: 0, Col: 3}, {Row: 2, Col: 2}}, g.AvailableMoves())

	move, _, err := Play(NewGreedy(WithSeed(3)), g)

	require.NoError(t, err)
	require.Equal(t, game.Position{Row: 0, Col: 3}, move, "Greedy should take the move capturing two pieces")
	require.Equal(t, []int{1, 1, 1, 1}, g.Grid()[0], "Move should be applied to the live game")
	require.Equal(t, 2, g.Turn())
}

func TestPlayWithoutMoves(t *testing.T) {
	g, err := game.New(4, 2, false)
	require.NoError(t, err)
	full := game.Grid{{1, 1, 1, 1}, {1, 1, 2, 2}, {2, 2, 2, 2}, {2, 2, 2, 2}}
	require.NoError(t, g.LoadGame(1, full))
	require.True(t, g.Done())

	for _, strategy := range []Strategy{NewRandom(), NewGreedy(), NewSeer()} {
		_, _, err := Play(strategy, g)
		require.ErrorIs(t, err, ErrNoMoves, strategy.Name())
		require.Equal(t, full, g.Grid(), "Game should be left untouched")
		require.Equal(t, 16, g.MoveCount(), "No move should be counted")
	}
}
