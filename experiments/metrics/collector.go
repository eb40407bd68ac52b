package metrics

import (
	"sync/atomic"
	"time"

	"reversi/game"
)

type SearchMetric struct {
	Strategy    string
	Goroutines  int
	Duration    time.Duration
	Candidates  int // Candidate moves scored
	Simulations int // Calls to SimulateMoves
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Move   game.Position
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int   // Player ID
	Winners        []int // Player IDs, more than one on a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for a single decision. Counters are safe for
// concurrent use by parallel candidate evaluation.
type Collector interface {
	Start(strategy string, goroutines int)
	AddCandidate()
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	goroutines  int
	startTime   time.Time
	candidates  atomic.Int32
	simulations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.simulations.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Candidates:  int(m.candidates.Load()),
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines int) {}
func (m *dummyCollector) AddCandidate()                          {}
func (m *dummyCollector) AddSimulation()                         {}
func (m *dummyCollector) Complete() SearchMetric                 { return SearchMetric{} }
