// Package csv writes the comparison to a file with every field quoted.
// It backs the --xlsx flag; no spreadsheet binary format is produced.
package csv

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

const (
	ReporterTypeCSV = "csv"
	DefaultPath     = "rpm_diff_result.csv"
	header          = "Package A,Status,Package B\n"
)

type Config struct {
	DefaultPath string `yaml:"default_path" mapstructure:"default_path" validate:"required"`
}

type Reporter struct {
	path    string
	confirm io.Writer
	logger  ports.Logger
}

// NewReporter writes to path, falling back to DefaultPath when empty. The
// confirmation line goes to confirm.
func NewReporter(path string, confirm io.Writer, logger ports.Logger) *Reporter {
	if path == "" {
		path = DefaultPath
	}
	if confirm == nil {
		confirm = os.Stdout
	}
	return &Reporter{
		path:    path,
		confirm: confirm,
		logger:  logger.WithFields(map[string]any{"component": "reporter", "type": ReporterTypeCSV, "output": path}),
	}
}

func (r *Reporter) Type() string { return ReporterTypeCSV }

func (r *Reporter) Path() string { return r.path }

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	f, err := os.Create(r.path)
	if err != nil {
		return errors.WrapUserFacing(err, errors.CodeOutputCreate,
			fmt.Sprintf("cannot create output file %s", r.path), "Check that the directory exists and is writable.")
	}

	if err := writeRows(f, report.Rows()); err != nil {
		f.Close()
		return errors.WrapUserFacing(err, errors.CodeOutputWrite,
			fmt.Sprintf("failed to write output file %s", r.path), "")
	}
	if err := f.Close(); err != nil {
		return errors.WrapUserFacing(err, errors.CodeOutputWrite,
			fmt.Sprintf("failed to write output file %s", r.path), "")
	}

	r.logger.Debugf(ctx, "Wrote %d rows", len(report.ASide)+len(report.BOnly))
	fmt.Fprintf(r.confirm, "Results saved to %s\n", r.path)
	return nil
}

func writeRows(w io.Writer, rows []domain.MatchResult) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	for _, row := range rows {
		line := quote(row.PackageA) + "," + quote(row.Status.Symbol()) + "," + quote(row.PackageB) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
