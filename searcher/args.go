package searcher

import (
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"reversi/experiments/metrics"
)

type Option func(c *config)

type config struct {
	rng          *rand.Rand
	goroutines   int
	newCollector func() metrics.Collector
}

// WithSeed makes tie-breaking and random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithGoroutines evaluates candidate moves in parallel. The chosen move
// distribution is the same as with a single goroutine.
func WithGoroutines(goroutines int) Option {
	return func(c *config) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.newCollector = metrics.NewCollector
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		goroutines:   1,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
	}
	return c
}
