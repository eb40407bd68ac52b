package game

// Clone returns a copy of the game sharing no storage with g.
func (g *Game) Clone() *Game {
	return &Game{
		board:   g.board.Copy(),
		players: g.players,
		othello: g.othello,
		turn:    g.turn,
		moves:   g.moves,
	}
}

// SimulateMoves applies moves in order to a clone of g and returns it; g is
// never modified. Each move goes to whoever holds the turn in the clone, so
// players without a legal move are skipped exactly as in live play and more
// turns than moves may elapse.
func (g *Game) SimulateMoves(moves []Position) (State, error) {
	sim := g.Clone()
	for _, move := range moves {
		if err := sim.ApplyMove(move); err != nil {
			return nil, err
		}
	}
	return sim, nil
}
