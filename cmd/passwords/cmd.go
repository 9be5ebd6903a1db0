package passwords

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backtrack-framework/backtrack/internal/feasible"
	"github.com/backtrack-framework/backtrack/pkg/backtrack"
	"github.com/backtrack-framework/backtrack/pkg/backtrack/constraint"
	"github.com/backtrack-framework/backtrack/pkg/backtrack/search"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func NewPasswordsCommand() *cobra.Command {
	var (
		strategy string
		root     string
		prune    bool
	)
	cmd := &cobra.Command{
		Use:   "passwords",
		Short: "Enumerates every password admitted by the classic example constraints",
		Long: `Enumerates every password over the lowercase latin letters and the
decimal digits that is between 3 and 5 characters long, contains at
least two digits and contains at least one letter 'b'. Accepted
passwords are printed one per line in discovery order.

The queue strategy performs a breadth-first search and holds entire
levels of the enumeration tree in memory; on the full alphabet that is
tens of millions of pending candidates. Prefer recursive or stack for
large searches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), strategy, root, prune)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "recursive", "traversal strategy: recursive, stack or queue")
	cmd.Flags().StringVar(&root, "root", "", "candidate to start the search from")
	cmd.Flags().BoolVar(&prune, "prune", false, "cut candidates whose completions can no longer qualify")
	return cmd
}

func run(ctx context.Context, strategyName, root string, prune bool) error {
	strategy, err := search.StrategyFromString(strategyName)
	if err != nil {
		return err
	}

	rules, err := Rules()
	if err != nil {
		return err
	}

	options := []search.Option{
		search.WithRules(rules),
		search.WithStrategy(strategy),
		search.WithReporter(search.ReporterFunc(func(c backtrack.Candidate) {
			fmt.Println(c)
		})),
	}
	if prune {
		checker, err := feasible.New(rules)
		if err != nil {
			return err
		}
		options = append(options, search.WithPruner(checker))
	}

	s, err := search.New(options...)
	if err != nil {
		return err
	}

	_, err = s.Run(ctx, backtrack.CandidateFromString(root))
	return err
}

// Rules returns the example password ruleset: lowercase letters and
// digits, length 3 to 5, at least two digits and at least one 'b'.
func Rules() (*backtrack.Ruleset, error) {
	a, err := backtrack.NewAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return backtrack.NewRuleset(a, 3, 5,
		constraint.MinDigits(2),
		constraint.MinCount('b', 1),
	)
}
