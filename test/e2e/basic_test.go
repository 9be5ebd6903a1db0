package e2e

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backtrack-framework/backtrack/internal/feasible"
	"github.com/backtrack-framework/backtrack/pkg/backtrack"
	"github.com/backtrack-framework/backtrack/pkg/backtrack/constraint"
	"github.com/backtrack-framework/backtrack/pkg/backtrack/search"
)

// A reduced alphabet keeps the full cross-strategy sweep fast while
// preserving the shape of the classic password constraints.
func reducedRules() (*backtrack.Ruleset, error) {
	alphabet, err := backtrack.NewAlphabet("abc0123")
	if err != nil {
		return nil, err
	}
	return backtrack.NewRuleset(alphabet, 3, 4,
		constraint.MinDigits(2),
		constraint.MinCount('b', 1),
	)
}

var _ = Describe("Basic candidate search", func() {
	var rules *backtrack.Ruleset

	BeforeEach(func() {
		var err error
		rules, err = reducedRules()
		Expect(err).ToNot(HaveOccurred())
	})

	runWith := func(options ...search.Option) map[backtrack.Candidate]bool {
		options = append(options, search.WithRules(rules))
		s, err := search.New(options...)
		Expect(err).ToNot(HaveOccurred())
		accepted, err := s.Run(context.Background(), "")
		Expect(err).ToNot(HaveOccurred())
		out := map[backtrack.Candidate]bool{}
		for _, c := range accepted {
			out[c] = true
		}
		Expect(out).To(HaveLen(len(accepted)))
		return out
	}

	It("should agree across all strategies, with and without pruning", func() {
		checker, err := feasible.New(rules)
		Expect(err).ToNot(HaveOccurred())

		baseline := runWith(search.WithStrategy(search.RecursiveDFS))
		Expect(baseline).ToNot(BeEmpty())
		Expect(baseline).To(HaveKey(backtrack.Candidate("b12")))

		for _, strategy := range []search.Strategy{search.RecursiveDFS, search.IterativeDFS, search.BreadthFirst} {
			Expect(runWith(search.WithStrategy(strategy))).To(Equal(baseline), "strategy %v", strategy)
			Expect(runWith(search.WithStrategy(strategy), search.WithPruner(checker))).To(Equal(baseline), "pruned strategy %v", strategy)
		}
	})

	It("should never emit a candidate that fails the goals", func() {
		for c := range runWith(search.WithStrategy(search.BreadthFirst)) {
			Expect(rules.Accept(c)).To(BeTrue())
			Expect(rules.Reject(c)).To(BeFalse())
		}
	})
})
