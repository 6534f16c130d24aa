// Package linear pairs two package lists by scanning list B once per entry
// of list A. Cost is O(|A|·|B|).
package linear

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
)

const MatcherTypeLinear = "linear"

type Matcher struct {
	logger ports.Logger
}

func NewMatcher(logger ports.Logger) *Matcher {
	return &Matcher{
		logger: logger.WithFields(map[string]any{"component": "matcher", "type": MatcherTypeLinear}),
	}
}

func (m *Matcher) Type() string { return MatcherTypeLinear }

func (m *Matcher) Match(ctx context.Context, a, b []domain.PackageIdentifier) []domain.MatchResult {
	m.logger.Debugf(ctx, "Starting linear matching (%d in A, %d in B)", len(a), len(b))

	results := make([]domain.MatchResult, 0, len(a)+len(b))
	consumed := make([]bool, len(b))

	for _, pkgA := range a {
		if idx := findExact(b, consumed, pkgA); idx >= 0 {
			consumed[idx] = true
			results = append(results, domain.Identical(pkgA, b[idx]))
			continue
		}
		if idx := findByName(b, consumed, pkgA.Name); idx >= 0 {
			consumed[idx] = true
			results = append(results, domain.Differs(pkgA, b[idx]))
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

	m.logger.Debugf(ctx, "Linear matching finished: %d A-side results, %d only in B", len(a), onlyB)
	return results
}

func findExact(b []domain.PackageIdentifier, consumed []bool, target domain.PackageIdentifier) int {
	for i := range b {
		if !consumed[i] && b[i].SameAs(target) {
			return i
		}
	}
	return -1
}

func findByName(b []domain.PackageIdentifier, consumed []bool, name string) int {
	for i := range b {
		if !consumed[i] && b[i].Name == name {
			return i
		}
	}
	return -1
}
