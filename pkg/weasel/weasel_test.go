package weasel_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/backtrack-framework/backtrack/pkg/weasel"
)

func TestWeasel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Weasel Suite")
}

var _ = Describe("Scorer", func() {
	Describe("Target", func() {
		It("should score a perfect match as zero", func() {
			Expect(weasel.Target("weasel").Score("weasel")).To(Equal(0))
		})

		It("should count mismatching positions", func() {
			Expect(weasel.Target("weasel").Score("wexsel")).To(Equal(1))
			Expect(weasel.Target("weasel").Score("xxxxxx")).To(Equal(6))
		})

		It("should disqualify candidates of the wrong length", func() {
			Expect(weasel.Target("weasel").Score("weasels")).To(Equal(math.MaxInt))
		})

		It("should expect the target's length", func() {
			Expect(weasel.Target("weasel").Length()).To(Equal(6))
		})
	})

	Describe("Palindrome", func() {
		It("should score any palindrome as zero", func() {
			Expect(weasel.Palindrome(4).Score("abba")).To(Equal(0))
			Expect(weasel.Palindrome(5).Score("kayak")).To(Equal(0))
		})

		It("should count mismatched mirror pairs", func() {
			Expect(weasel.Palindrome(4).Score("abca")).To(Equal(1))
			Expect(weasel.Palindrome(4).Score("abcd")).To(Equal(2))
		})

		It("should disqualify candidates of the wrong length", func() {
			Expect(weasel.Palindrome(4).Score("abba!")).To(Equal(math.MaxInt))
		})
	})
})

var _ = Describe("Evolver", func() {
	It("should require a scorer", func() {
		_, err := weasel.New(nil)
		Expect(err).To(MatchError(weasel.ErrNoScorer))
	})

	It("should validate its options", func() {
		_, err := weasel.New(weasel.Target("ab"), weasel.WithGenerationSize(0))
		Expect(err).To(MatchError(ContainSubstring("generation size")))

		_, err = weasel.New(weasel.Target("ab"), weasel.WithMutationRate(1.5))
		var rate weasel.InvalidMutationRate
		Expect(errors.As(err, &rate)).To(BeTrue())

		_, err = weasel.New(weasel.Target("ab"), weasel.WithPool(""))
		Expect(err).To(MatchError(ContainSubstring("pool")))
	})

	It("should evolve the exact target", func() {
		evolver, err := weasel.New(weasel.Target("abba"),
			weasel.WithPool("ab"),
			weasel.WithMutationRate(0.5),
			weasel.WithGenerationSize(20),
			weasel.WithRand(rand.New(rand.NewSource(1))),
		)
		Expect(err).ToNot(HaveOccurred())

		result, err := evolver.Run(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Final).To(Equal("abba"))
	})

	It("should report strictly improving candidates", func() {
		type report struct {
			generation int
			candidate  string
			score      int
		}
		var reports []report
		evolver, err := weasel.New(weasel.Target("methinks"),
			weasel.WithPool("methinks "),
			weasel.WithMutationRate(0.2),
			weasel.WithRand(rand.New(rand.NewSource(9))),
			weasel.WithReporter(weasel.ReporterFunc(func(generation int, candidate string, score int) {
				reports = append(reports, report{generation: generation, candidate: candidate, score: score})
			})),
		)
		Expect(err).ToNot(HaveOccurred())

		result, err := evolver.Run(context.Background())
		Expect(err).ToNot(HaveOccurred())

		Expect(reports).ToNot(BeEmpty())
		for i := 1; i < len(reports); i++ {
			Expect(reports[i].score).To(BeNumerically("<", reports[i-1].score))
			Expect(reports[i].generation).To(BeNumerically(">=", reports[i-1].generation))
		}
		last := reports[len(reports)-1]
		Expect(last.score).To(Equal(0))
		Expect(last.candidate).To(Equal(result.Final))
		Expect(result.Generations).To(BeNumerically(">=", last.generation))
	})

	It("should be reproducible for a fixed seed", func() {
		run := func() (weasel.Result, error) {
			evolver, err := weasel.New(weasel.Target("weasel"),
				weasel.WithPool("weasl"),
				weasel.WithRand(rand.New(rand.NewSource(42))),
			)
			Expect(err).ToNot(HaveOccurred())
			return evolver.Run(context.Background())
		}
		first, err := run()
		Expect(err).ToNot(HaveOccurred())
		second, err := run()
		Expect(err).ToNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should stop on cancellation when the pool cannot express the goal", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		evolver, err := weasel.New(weasel.Target("b"),
			weasel.WithPool("a"),
			weasel.WithRand(rand.New(rand.NewSource(1))),
		)
		Expect(err).ToNot(HaveOccurred())
		_, err = evolver.Run(ctx)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})
})
