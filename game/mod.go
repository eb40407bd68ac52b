package game

// State is the read-and-simulate surface a decision strategy needs.
// Implementations must never mutate themselves in SimulateMoves: the returned
// State is an independent copy with the moves applied.
type State interface {
	Turn() int
	AvailableMoves() []Position
	Done() bool
	Grid() Grid
	SimulateMoves(moves []Position) (State, error)
}
