package app

import (
	"context"

	"github.com/olusolaa/rpm-diff/internal/core/ports"
)

// Application represents one configured comparison run.
type Application struct {
	Engine ports.ReconciliationEngine
	Logger ports.Logger
}

func NewApplication(engine ports.ReconciliationEngine, logger ports.Logger) *Application {
	return &Application{
		Engine: engine,
		Logger: logger,
	}
}

func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting package list comparison...")

	if err := a.Engine.Run(ctx); err != nil {
		a.Logger.Errorf(ctx, err, "Package list comparison failed")
		return err
	}

	a.Logger.Infof(ctx, "Package list comparison completed successfully")
	return nil
}
