package service

import (
	"context"
	"fmt"
	"io"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

// ReconciliationEngine runs one load → match → arrange → report pass.
type ReconciliationEngine struct {
	loader   ports.ListLoader
	matcher  ports.Matcher
	reporter ports.Reporter
	logger   ports.Logger
	progress io.Writer
	pathA    string
	pathB    string
}

func NewReconciliationEngine(
	loader ports.ListLoader,
	matcher ports.Matcher,
	reporter ports.Reporter,
	logger ports.Logger,
	progress io.Writer,
	pathA, pathB string,
) (*ReconciliationEngine, error) {
	if loader == nil {
		return nil, errors.New(errors.CodeInternal, "list loader cannot be nil")
	}
	if matcher == nil {
		return nil, errors.New(errors.CodeInternal, "matcher cannot be nil")
	}
	if reporter == nil {
		return nil, errors.New(errors.CodeInternal, "reporter cannot be nil")
	}
	if progress == nil {
		progress = io.Discard
	}

	return &ReconciliationEngine{
		loader:   loader,
		matcher:  matcher,
		reporter: reporter,
		logger:   logger,
		progress: progress,
		pathA:    pathA,
		pathB:    pathB,
	}, nil
}

func (e *ReconciliationEngine) Run(ctx context.Context) error {
	e.logger.Infof(ctx, "Comparing %s against %s using %s matcher and %s reporter",
		e.pathA, e.pathB, e.matcher.Type(), e.reporter.Type())

	listA, err := e.loader.Load(ctx, e.pathA)
	if err != nil {
		return err
	}
	listB, err := e.loader.Load(ctx, e.pathB)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.progress, "Loaded %d packages from %s\n", listA.Loaded(), listA.Source)
	fmt.Fprintf(e.progress, "Loaded %d packages from %s\n", listB.Loaded(), listB.Source)

	results := e.matcher.Match(ctx, listA.Packages, listB.Packages)
	aSide, bOnly := Arrange(results)

	report := domain.Report{
		SourceA: listA.Summary(),
		SourceB: listB.Summary(),
		ASide:   aSide,
		BOnly:   bOnly,
	}
	counts := report.Counts()
	e.logger.Infof(ctx, "Matching complete: %d identical, %d differ, %d only in A, %d only in B",
		counts.Identical, counts.Differs, counts.OnlyInA, counts.OnlyInB)

	if err := e.reporter.Report(ctx, report); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to generate report")
	}

	e.logger.Infof(ctx, "Comparison finished")
	return nil
}
