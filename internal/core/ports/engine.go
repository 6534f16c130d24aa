package ports

import "context"

type ReconciliationEngine interface {
	Run(ctx context.Context) error
}
