package service

import (
	"sort"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
)

// Arrange splits matcher output into the A-side rows (identical, differs,
// only in A) and the B-only rows, then stable-sorts each part by SortKey.
// Equal keys keep their matcher order.
func Arrange(results []domain.MatchResult) (aSide, bOnly []domain.MatchResult) {
	aSide = make([]domain.MatchResult, 0, len(results))
	bOnly = make([]domain.MatchResult, 0)
	for _, res := range results {
		if res.Status.BOnly() {
			bOnly = append(bOnly, res)
		} else {
			aSide = append(aSide, res)
		}
	}

	sortBySortKey(aSide)
	sortBySortKey(bOnly)
	return aSide, bOnly
}

func sortBySortKey(results []domain.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SortKey < results[j].SortKey
	})
}
