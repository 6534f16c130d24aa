package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/rpm-diff/internal/adapters/listfile"
	"github.com/olusolaa/rpm-diff/internal/adapters/matching/indexed"
	"github.com/olusolaa/rpm-diff/internal/adapters/matching/linear"
	"github.com/olusolaa/rpm-diff/internal/config"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/core/service"
	"github.com/olusolaa/rpm-diff/internal/errors"
	"github.com/olusolaa/rpm-diff/internal/log"
	"github.com/olusolaa/rpm-diff/internal/reporting/csv"
	"github.com/olusolaa/rpm-diff/internal/reporting/json"
	"github.com/olusolaa/rpm-diff/internal/reporting/text"
)

// Streams are the process outputs. Stdout carries progress and the
// console report; Stderr carries logs.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultStreams() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, opts RunOptions, streams Streams) (*Application, error) {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.LogConfig()
	logCfg.Output = streams.Stderr
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Debugf(ctx, "No configuration file found, using defaults/env/flags.")
	}

	registry := service.NewComponentRegistry()
	if err := registerMatchers(registry, logger); err != nil {
		return nil, err
	}
	matcher, err := registry.GetMatcher(cfg.Settings.MatcherType)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Using %s matcher", matcher.Type())

	// JSON on stdout must stay parseable, so progress lines move to stderr.
	progress := streams.Stdout
	if !opts.WriteCSV && cfg.Settings.ReporterType == json.ReporterTypeJSON {
		progress = streams.Stderr
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = cfg.Settings.Reporter.CSV.DefaultPath
	}
	if err := registerReporters(registry, cfg, outputPath, streams, logger); err != nil {
		return nil, err
	}

	reporterType := cfg.Settings.ReporterType
	if opts.WriteCSV {
		reporterType = csv.ReporterTypeCSV
	}
	reporter, err := registry.GetReporter(reporterType)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Using %s reporter", reporter.Type())

	loader := listfile.NewLoader(cfg.Settings.Loader, logger)

	engine, err := service.NewReconciliationEngine(
		loader, matcher, reporter, logger.WithFields(map[string]any{"component": "engine"}),
		progress, opts.PathA, opts.PathB,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to initialize reconciliation engine")
	}

	logger.Debugf(ctx, "Application bootstrap complete")
	return NewApplication(engine, logger), nil
}

func registerMatchers(registry *service.ComponentRegistry, logger ports.Logger) error {
	for _, m := range []ports.Matcher{linear.NewMatcher(logger), indexed.NewMatcher(logger)} {
		if err := registry.RegisterMatcher(m); err != nil {
			return err
		}
	}
	return nil
}

func registerReporters(registry *service.ComponentRegistry, cfg *config.Config, outputPath string, streams Streams, logger ports.Logger) error {
	reporters := []ports.Reporter{
		text.NewReporter(cfg.Settings.Reporter.Text, streams.Stdout, logger),
		json.NewReporter(streams.Stdout, logger),
		csv.NewReporter(outputPath, streams.Stdout, logger),
	}
	for _, r := range reporters {
		if err := registry.RegisterReporter(r); err != nil {
			return fmt.Errorf("registering %s reporter: %w", r.Type(), err)
		}
	}
	return nil
}
