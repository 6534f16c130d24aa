package text

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// Reporter prints the comparison to the console as tab-separated rows.
type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, writer io.Writer, logger ports.Logger) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if cfg.NoColor || !isTerminal(writer) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: writer,
		logger: logger.WithFields(map[string]any{"component": "reporter", "type": ReporterTypeText}),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Type() string { return ReporterTypeText }

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	symbols := map[domain.MatchStatus]func(a ...any) string{
		domain.StatusIdentical: color.New(color.FgGreen).SprintFunc(),
		domain.StatusDiffers:   color.New(color.FgYellow).SprintFunc(),
		domain.StatusOnlyInA:   color.New(color.FgRed).SprintFunc(),
		domain.StatusOnlyInB:   color.New(color.FgCyan).SprintFunc(),
	}

	w := &errWriter{w: r.writer}
	w.printf("\nComparison results:\n")
	w.printf("Format: A_package\\tstatus\\tB_package\n")
	w.printf("Status: < (A only), > (B only), | (different version/arch), = (identical)\n\n")

	for _, row := range report.Rows() {
		w.printf("%s\t%s\t%s\n", row.PackageA, symbols[row.Status](row.Status.Symbol()), row.PackageB)
	}

	if w.err != nil {
		return errors.Wrap(w.err, errors.CodeOutputWrite, "failed to write console report")
	}
	r.logger.Debugf(ctx, "Printed %d rows", len(report.ASide)+len(report.BOnly))
	return nil
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
