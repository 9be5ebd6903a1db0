// Package weasel implements the classic Weasel program: a rough
// simulation of evolution that mutates a random string generation by
// generation, keeping every strictly better candidate, until the
// scorer reports a perfect fit.
package weasel

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrNoScorer is returned by New when no scorer is provided.
var ErrNoScorer = errors.New("evolver requires a scorer")

// InvalidMutationRate is returned by New for rates outside (0, 1].
type InvalidMutationRate float64

func (e InvalidMutationRate) Error() string {
	return fmt.Sprintf("invalid mutation rate %v (must be in (0, 1])", float64(e))
}

// printable is the default mutation pool: the printable ASCII range.
var printable = func() string {
	b := make([]byte, 0, '~'-' '+1)
	for ch := byte(' '); ch <= '~'; ch++ {
		b = append(b, ch)
	}
	return string(b)
}()

// Reporter receives each strictly improving candidate as it is
// adopted.
type Reporter interface {
	Report(generation int, candidate string, score int)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(generation int, candidate string, score int)

func (f ReporterFunc) Report(generation int, candidate string, score int) {
	f(generation, candidate, score)
}

type discardReporter struct{}

func (discardReporter) Report(_ int, _ string, _ int) {}

type Result struct {
	// Final is the first candidate with a perfect score.
	Final string
	// Generations is the number of generations evolved.
	Generations int
}

type Evolver struct {
	scorer         Scorer
	generationSize int
	mutationRate   float64
	pool           string
	rng            *rand.Rand
	reporter       Reporter
}

func New(scorer Scorer, options ...Option) (*Evolver, error) {
	if scorer == nil {
		return nil, ErrNoScorer
	}
	e := Evolver{scorer: scorer}
	for _, option := range append(options, evolverDefaults...) {
		if err := option(&e); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

type Option func(e *Evolver) error

func WithGenerationSize(n int) Option {
	return func(e *Evolver) error {
		if n < 1 {
			return fmt.Errorf("invalid generation size %d (must be at least 1)", n)
		}
		e.generationSize = n
		return nil
	}
}

func WithMutationRate(rate float64) Option {
	return func(e *Evolver) error {
		if rate <= 0 || rate > 1 {
			return InvalidMutationRate(rate)
		}
		e.mutationRate = rate
		return nil
	}
}

// WithPool overrides the characters candidates are built from.
func WithPool(pool string) Option {
	return func(e *Evolver) error {
		if len(pool) == 0 {
			return errors.New("mutation pool must contain at least one character")
		}
		e.pool = pool
		return nil
	}
}

// WithRand overrides the random source, making runs reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(e *Evolver) error {
		e.rng = rng
		return nil
	}
}

func WithReporter(r Reporter) Option {
	return func(e *Evolver) error {
		e.reporter = r
		return nil
	}
}

var evolverDefaults = []Option{
	func(e *Evolver) error {
		if e.generationSize == 0 {
			e.generationSize = 100
		}
		return nil
	},
	func(e *Evolver) error {
		if e.mutationRate == 0 {
			e.mutationRate = 0.05
		}
		return nil
	},
	func(e *Evolver) error {
		if e.pool == "" {
			e.pool = printable
		}
		return nil
	},
	func(e *Evolver) error {
		if e.rng == nil {
			e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return nil
	},
	func(e *Evolver) error {
		if e.reporter == nil {
			e.reporter = discardReporter{}
		}
		return nil
	},
}

// Run evolves a random initial candidate until the scorer reports
// zero, adopting every strictly better mutant and reporting each
// adoption. It returns early only when the context is cancelled,
// which is the sole way to stop a goal the pool cannot express.
func (e *Evolver) Run(ctx context.Context) (Result, error) {
	candidate := e.randomString(e.scorer.Length())
	best := e.scorer.Score(candidate)
	e.reporter.Report(0, candidate, best)

	generation := 0
	for best != 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("evolution interrupted: %w", err)
		}
		generation++
		for i := 0; i < e.generationSize; i++ {
			mutant := e.mutate(candidate)
			if score := e.scorer.Score(mutant); score < best {
				candidate, best = mutant, score
				e.reporter.Report(generation, candidate, best)
			}
		}
	}
	return Result{Final: candidate, Generations: generation}, nil
}

func (e *Evolver) mutate(s string) string {
	b := []byte(s)
	for i := range b {
		if e.rng.Float64() < e.mutationRate {
			b[i] = e.pool[e.rng.Intn(len(e.pool))]
		}
	}
	return string(b)
}

func (e *Evolver) randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = e.pool[e.rng.Intn(len(e.pool))]
	}
	return string(b)
}
