package weasel

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/backtrack-framework/backtrack/pkg/weasel"
)

const methinks = "methinks it is like a weasel"

func NewWeaselCommand() *cobra.Command {
	var (
		target         string
		palindrome     int
		generationSize int
		mutationRate   float64
		seed           int64
	)
	cmd := &cobra.Command{
		Use:   "weasel",
		Short: "Evolves a random string towards a target by mutation and selection",
		Long: `A rough simulation of evolution: a random string of printable
characters is mutated generation by generation, keeping every strictly
better candidate, until it matches the target exactly.

With --palindrome N the goal is any palindrome of length N instead of
a fixed target.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), target, palindrome, generationSize, mutationRate, seed)
		},
	}
	cmd.Flags().StringVar(&target, "target", methinks, "target string to evolve towards")
	cmd.Flags().IntVar(&palindrome, "palindrome", 0, "evolve a palindrome of the given length instead of a target")
	cmd.Flags().IntVar(&generationSize, "generation-size", 100, "number of mutants per generation")
	cmd.Flags().Float64Var(&mutationRate, "mutation-rate", 0.05, "per-character mutation probability")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 derives one from the clock")
	return cmd
}

func run(ctx context.Context, target string, palindrome, generationSize int, mutationRate float64, seed int64) error {
	scorer := weasel.Target(target)
	if palindrome > 0 {
		scorer = weasel.Palindrome(palindrome)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	evolver, err := weasel.New(scorer,
		weasel.WithGenerationSize(generationSize),
		weasel.WithMutationRate(mutationRate),
		weasel.WithRand(rand.New(rand.NewSource(seed))),
		weasel.WithReporter(weasel.ReporterFunc(func(generation int, candidate string, _ int) {
			fmt.Printf("%6d: %s\n", generation, candidate)
		})),
	)
	if err != nil {
		return err
	}

	result, err := evolver.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("  last: %s (%d generations)\n", result.Final, result.Generations)
	return nil
}
