// Package indexed produces the same pairing as the linear matcher using a
// per-name index of list B, so each lookup only visits entries sharing the
// package name.
package indexed

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
)

const MatcherTypeIndexed = "indexed"

type Matcher struct {
	logger ports.Logger
}

func NewMatcher(logger ports.Logger) *Matcher {
	return &Matcher{
		logger: logger.WithFields(map[string]any{"component": "matcher", "type": MatcherTypeIndexed}),
	}
}

func (m *Matcher) Type() string { return MatcherTypeIndexed }

// nameIndex maps a package name to the positions in B carrying it, in B's
// order. Consumed positions are removed from the slice.
type nameIndex map[string][]int

func buildIndex(b []domain.PackageIdentifier) nameIndex {
	idx := make(nameIndex)
	for i, pkg := range b {
		idx[pkg.Name] = append(idx[pkg.Name], i)
	}
	return idx
}

// take removes and returns the first position for name whose entry
// satisfies accept, or -1.
func (idx nameIndex) take(name string, accept func(int) bool) int {
	positions := idx[name]
	for k, pos := range positions {
		if accept(pos) {
			idx[name] = append(positions[:k], positions[k+1:]...)
			return pos
		}
	}
	return -1
}

func (m *Matcher) Match(ctx context.Context, a, b []domain.PackageIdentifier) []domain.MatchResult {
	m.logger.Debugf(ctx, "Starting indexed matching (%d in A, %d in B)", len(a), len(b))

	results := make([]domain.MatchResult, 0, len(a)+len(b))
	idx := buildIndex(b)
	consumed := make([]bool, len(b))

	for _, pkgA := range a {
		if pos := idx.take(pkgA.Name, func(i int) bool { return b[i].SameAs(pkgA) }); pos >= 0 {
			consumed[pos] = true
			results = append(results, domain.Identical(pkgA, b[pos]))
			continue
		}
		if pos := idx.take(pkgA.Name, func(int) bool { return true }); pos >= 0 {
			consumed[pos] = true
			results = append(results, domain.Differs(pkgA, b[pos]))
			continue
		}
		results = append(results, domain.OnlyInA(pkgA))
	}

	onlyB := 0
	for i, pkgB := range b {
		if !consumed[i] {
			results = append(results, domain.OnlyInB(pkgB))
			onlyB++
		}
	}

	m.logger.Debugf(ctx, "Indexed matching finished: %d names indexed, %d only in B", len(idx), onlyB)
	return results
}
