package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/backtrack-framework/backtrack/pkg/backtrack"
)

// ErrNoRules is returned by New when no rules are configured.
var ErrNoRules = errors.New("search requires rules")

// ErrNoTree is returned by New when no enumeration tree is configured
// and none can be derived from the rules.
var ErrNoTree = errors.New("search requires an enumeration tree when the rules do not carry an alphabet")

// Reporter receives each accepted candidate as it is discovered, in
// discovery order, before the search moves on.
type Reporter interface {
	Report(c backtrack.Candidate)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(c backtrack.Candidate)

func (f ReporterFunc) Report(c backtrack.Candidate) {
	f(c)
}

// discardReporter is the default Reporter.
type discardReporter struct{}

func (discardReporter) Report(_ backtrack.Candidate) {}

// Pruner implementations cut candidates whose descendants can never
// be accepted. Viable must never return false for a candidate that
// still has an acceptable descendant; returning true too often merely
// weakens pruning. A pruned candidate is not expanded, but it is
// still reported if it is itself accepted.
type Pruner interface {
	Viable(c backtrack.Candidate) (bool, error)
}

// Search enumerates candidates reachable from a root by repeated
// child and sibling expansion, discards rejected subtrees and reports
// accepted candidates. A Search holds no per-run state and is safe to
// reuse; every Run owns its frontier exclusively.
type Search struct {
	rules    backtrack.Rules
	tree     *Tree
	strategy Strategy
	reporter Reporter
	pruner   Pruner
}

func New(options ...Option) (*Search, error) {
	s := Search{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Search) error

func WithRules(r backtrack.Rules) Option {
	return func(s *Search) error {
		s.rules = r
		return nil
	}
}

// WithTree overrides the enumeration tree. Without it the tree is
// derived from the ruleset's alphabet and maximum length.
func WithTree(t *Tree) Option {
	return func(s *Search) error {
		s.tree = t
		return nil
	}
}

func WithStrategy(strategy Strategy) Option {
	return func(s *Search) error {
		s.strategy = strategy
		return nil
	}
}

func WithReporter(r Reporter) Option {
	return func(s *Search) error {
		s.reporter = r
		return nil
	}
}

func WithPruner(p Pruner) Option {
	return func(s *Search) error {
		s.pruner = p
		return nil
	}
}

var defaults = []Option{
	func(s *Search) error {
		if s.rules == nil {
			return ErrNoRules
		}
		return nil
	},
	func(s *Search) error {
		if s.tree == nil {
			ruleset, ok := s.rules.(*backtrack.Ruleset)
			if !ok {
				return ErrNoTree
			}
			s.tree = NewTree(ruleset.Alphabet(), ruleset.MaxLength())
		}
		return nil
	},
	func(s *Search) error {
		if s.reporter == nil {
			s.reporter = discardReporter{}
		}
		return nil
	},
}

// Run explores every candidate reachable from root and returns the
// accepted candidates in discovery order. Acceptance never terminates
// the search; the frontier is always drained, since longer
// descendants of an accepted candidate may qualify as well. Run
// returns early only when the context is cancelled or the pruner
// fails.
func (s *Search) Run(ctx context.Context, root backtrack.Candidate) ([]backtrack.Candidate, error) {
	switch s.strategy {
	case RecursiveDFS:
		var accepted []backtrack.Candidate
		if err := s.runRecursive(ctx, root, &accepted); err != nil {
			return nil, err
		}
		return accepted, nil
	case IterativeDFS:
		return s.runFrontier(ctx, root, &lifo{})
	case BreadthFirst:
		return s.runFrontier(ctx, root, &fifo{})
	}
	return nil, fmt.Errorf("unknown strategy %v", s.strategy)
}

func (s *Search) runRecursive(ctx context.Context, c backtrack.Candidate, accepted *[]backtrack.Candidate) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}
	if s.rules.Reject(c) {
		return nil
	}
	if s.rules.Accept(c) {
		s.reporter.Report(c)
		*accepted = append(*accepted, c)
	}
	expand, err := s.expandable(c)
	if err != nil {
		return err
	}
	if !expand {
		return nil
	}
	child, ok := s.tree.FirstChild(c)
	for ok {
		if err := s.runRecursive(ctx, child, accepted); err != nil {
			return err
		}
		child, ok = s.tree.NextSibling(child)
	}
	return nil
}

func (s *Search) runFrontier(ctx context.Context, root backtrack.Candidate, f frontier) ([]backtrack.Candidate, error) {
	// A LIFO frontier pops the most recently pushed entry, so
	// children must go on in reverse alphabet order to come off in
	// alphabet order, keeping the visitation order identical to the
	// recursive traversal.
	_, reverse := f.(*lifo)

	var accepted []backtrack.Candidate
	f.push(root)
	for f.len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search interrupted: %w", err)
		}
		c, _ := f.pop()
		if s.rules.Reject(c) {
			continue
		}
		if s.rules.Accept(c) {
			s.reporter.Report(c)
			accepted = append(accepted, c)
		}
		expand, err := s.expandable(c)
		if err != nil {
			return nil, err
		}
		if !expand {
			continue
		}
		children := s.children(c)
		if reverse {
			for i := len(children) - 1; i >= 0; i-- {
				f.push(children[i])
			}
		} else {
			for _, child := range children {
				f.push(child)
			}
		}
	}
	return accepted, nil
}

// children returns the children of c in alphabet order.
func (s *Search) children(c backtrack.Candidate) []backtrack.Candidate {
	child, ok := s.tree.FirstChild(c)
	if !ok {
		return nil
	}
	out := make([]backtrack.Candidate, 0, s.tree.alphabet.Len())
	out = append(out, child)
	for {
		child, ok = s.tree.NextSibling(child)
		if !ok {
			return out
		}
		out = append(out, child)
	}
}

func (s *Search) expandable(c backtrack.Candidate) (bool, error) {
	if s.pruner == nil {
		return true, nil
	}
	viable, err := s.pruner.Viable(c)
	if err != nil {
		return false, fmt.Errorf("pruning %q: %w", c, err)
	}
	return viable, nil
}
