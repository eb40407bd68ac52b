package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	MinPlayers = 2
	MaxPlayers = 9
	MinSide    = 3
)

// Game is a generalized Reversi rules engine for 2 to 9 players on a square board.
//
// Before players² moves have been applied (outside the Othello variant), play
// is restricted to the empty cells of the central players×players block and
// no pieces are captured. Afterwards a move is legal when it outflanks at
// least one run of opponent pieces, and every outflanked run is flipped.
type Game struct {
	board   *Board
	players int
	othello bool
	turn    int // Meaningless once the game is done
	moves   int // Moves applied so far, drives the opening phase
}

// New creates a game. The Othello variant seeds the four center cells and
// requires exactly two players.
func New(side, players int, othello bool) (*Game, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: players must be between %d and %d, got %d", ErrConfiguration, MinPlayers, MaxPlayers, players)
	}
	if side < MinSide {
		return nil, fmt.Errorf("%w: side must be at least %d, got %d", ErrConfiguration, MinSide, side)
	}
	if players > side {
		return nil, fmt.Errorf("%w: side %d is smaller than the %d players", ErrConfiguration, side, players)
	}
	if side%2 != players%2 {
		return nil, fmt.Errorf("%w: side %d and players %d must both be even or both be odd", ErrConfiguration, side, players)
	}
	if othello && players != 2 {
		return nil, fmt.Errorf("%w: the othello variant needs 2 players, got %d", ErrConfiguration, players)
	}

	g := &Game{
		board:   NewBoard(side),
		players: players,
		othello: othello,
		turn:    1,
	}
	if othello {
		half := side / 2
		g.board.Set(Position{half - 1, half}, 1)
		g.board.Set(Position{half, half - 1}, 1)
		g.board.Set(Position{half - 1, half - 1}, 2)
		g.board.Set(Position{half, half}, 2)
	}
	return g, nil
}

func (g *Game) Size() int {
	return g.board.Side()
}

func (g *Game) NumPlayers() int {
	return g.players
}

func (g *Game) Othello() bool {
	return g.othello
}

// Turn returns the player who moves next. Meaningless once Done.
func (g *Game) Turn() int {
	return g.turn
}

// MoveCount returns the number of moves applied, or the number of pieces after LoadGame.
func (g *Game) MoveCount() int {
	return g.moves
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.board.Grid()
}

func (g *Game) String() string {
	return g.board.String()
}

// PieceAt returns the owner at pos, or Empty.
func (g *Game) PieceAt(pos Position) (int, error) {
	if err := g.checkBounds(pos); err != nil {
		return Empty, err
	}
	return g.board.At(pos), nil
}

// AvailableMoves returns the legal moves of the current player in ascending row-major order.
func (g *Game) AvailableMoves() []Position {
	return g.PlayerMoves(g.turn)
}

// PlayerMoves returns the legal moves of player in ascending row-major order.
func (g *Game) PlayerMoves(player int) []Position {
	var moves []Position
	g.eachMove(player, func(pos Position) bool {
		moves = append(moves, pos)
		return true
	})
	return moves
}

// LegalMove reports whether the current player may play at pos.
func (g *Game) LegalMove(pos Position) (bool, error) {
	if err := g.checkBounds(pos); err != nil {
		return false, err
	}
	return slices.Contains(g.AvailableMoves(), pos), nil
}

// Done reports whether no player has a legal move.
func (g *Game) Done() bool {
	for player := 1; player <= g.players; player++ {
		if g.canMove(player) {
			return false
		}
	}
	return true
}

// Outcome returns the ascending ids of the players holding the most pieces,
// more than one on a tie. Empty until the game is done. A finished board with
// no pieces ties every player at zero.
func (g *Game) Outcome() []int {
	if !g.Done() {
		return nil
	}
	tally := g.board.Tally(g.players)
	most := 0
	for player := 1; player <= g.players; player++ {
		most = max(most, tally[player])
	}
	var winners []int
	for player := 1; player <= g.players; player++ {
		if tally[player] == most {
			winners = append(winners, player)
		}
	}
	return winners
}

// ApplyMove places the current player's piece at pos, captures outflanked
// runs and passes the turn to the next player able to move.
// pos is assumed legal: an in-bounds illegal move leaves the game in an
// unspecified state.
func (g *Game) ApplyMove(pos Position) error {
	if err := g.checkBounds(pos); err != nil {
		return err
	}

	player := g.turn
	opening := g.inOpening()
	g.board.Set(pos, player)
	if !opening {
		for _, dir := range directions {
			if g.outflanks(pos, dir, player) {
				g.flip(pos, dir, player)
			}
		}
	}
	g.moves++
	g.advanceTurn()
	return nil
}

// LoadGame replaces the whole game state. The move counter is rebuilt from
// the number of pieces, and the turn skips ahead if turn cannot move.
func (g *Game) LoadGame(turn int, grid Grid) error {
	side := g.board.Side()
	if len(grid) != side {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrConfiguration, len(grid), side)
	}
	if turn < 1 || turn > g.players {
		return fmt.Errorf("%w: turn %d is not a player id in [1,%d]", ErrConfiguration, turn, g.players)
	}
	board := NewBoard(side)
	for row, cells := range grid {
		if len(cells) != side {
			return fmt.Errorf("%w: grid row %d has %d cells, want %d", ErrConfiguration, row, len(cells), side)
		}
		for col, owner := range cells {
			if owner < Empty || owner > g.players {
				return fmt.Errorf("%w: cell (%d,%d) holds %d, not empty or a player id", ErrConfiguration, row, col, owner)
			}
			board.Set(Position{row, col}, owner)
		}
	}

	g.board = board
	g.turn = turn
	g.moves = board.Occupied()
	if !g.canMove(turn) {
		g.advanceTurn()
	}
	return nil
}

func (g *Game) checkBounds(pos Position) error {
	if !g.board.InBounds(pos) {
		side := g.board.Side()
		return fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, pos, side, side)
	}
	return nil
}

func (g *Game) inOpening() bool {
	return !g.othello && g.moves < g.players*g.players
}

// advanceTurn hands the turn to the next player in cyclic order who can
// move, the current player last. The turn is left untouched when nobody can.
func (g *Game) advanceTurn() {
	for i := 1; i <= g.players; i++ {
		next := (g.turn+i-1)%g.players + 1
		if g.canMove(next) {
			g.turn = next
			return
		}
	}
}

func (g *Game) canMove(player int) bool {
	found := false
	g.eachMove(player, func(Position) bool {
		found = true
		return false
	})
	return found
}

// eachMove calls yield for every legal move of player in row-major order
// until yield returns false.
func (g *Game) eachMove(player int, yield func(Position) bool) {
	side := g.board.Side()
	if g.inOpening() {
		top := side/2 - g.players/2
		for row := top; row < top+g.players; row++ {
			for col := top; col < top+g.players; col++ {
				pos := Position{row, col}
				if g.board.At(pos) == Empty && !yield(pos) {
					return
				}
			}
		}
		return
	}

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			pos := Position{row, col}
			if g.board.At(pos) != Empty {
				continue
			}
			for _, dir := range directions {
				if g.outflanks(pos, dir, player) {
					if !yield(pos) {
						return
					}
					break
				}
			}
		}
	}
}

// outflanks walks from pos along dir over a non-empty run of opponent
// pieces and reports whether the run ends on one of player's pieces.
func (g *Game) outflanks(pos Position, dir [2]int, player int) bool {
	run := 0
	for cur := pos.step(dir); g.board.InBounds(cur); cur = cur.step(dir) {
		switch g.board.At(cur) {
		case Empty:
			return false
		case player:
			return run > 0
		}
		run++
	}
	return false
}

// flip converts the outflanked run next to pos along dir. Call only after outflanks.
func (g *Game) flip(pos Position, dir [2]int, player int) {
	for cur := pos.step(dir); g.board.At(cur) != player; cur = cur.step(dir) {
		g.board.Set(cur, player)
	}
}
