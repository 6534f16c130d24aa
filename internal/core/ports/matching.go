package ports

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
)

// Matcher pairs list A against list B. Results come back in A's order
// followed by the unconsumed B entries in B's order.
type Matcher interface {
	Type() string
	Match(ctx context.Context, a, b []domain.PackageIdentifier) []domain.MatchResult
}
