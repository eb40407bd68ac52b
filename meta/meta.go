// meta/meta.go
package meta

// SIDE is the default board side.
const SIDE = 8

// PLAYERS is the default number of players.
const PLAYERS = 2

// OTHELLO seeds the four center cells by default.
const OTHELLO = true

// NUM_GAMES is the default number of games per matchup.
const NUM_GAMES = 100

// GO_ROUTINES is the default number of goroutines a strategy scores candidates with.
const GO_ROUTINES = 1

// STRATEGY is seated at every player slot unless told otherwise.
const STRATEGY = "random"
