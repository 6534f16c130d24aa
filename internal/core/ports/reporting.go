package ports

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
)

type Reporter interface {
	Type() string
	Report(ctx context.Context, report domain.Report) error
}
