package ports

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
)

// ListLoader reads one package list file in its original line order.
type ListLoader interface {
	Load(ctx context.Context, path string) (domain.PackageList, error)
}
