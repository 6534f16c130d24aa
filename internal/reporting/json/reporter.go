package json

import (
	"context"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/rpm-diff/internal/core/domain"
	"github.com/olusolaa/rpm-diff/internal/core/ports"
	"github.com/olusolaa/rpm-diff/internal/errors"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Reporter struct {
	writer io.Writer
	logger ports.Logger
}

func NewReporter(writer io.Writer, logger ports.Logger) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		logger: logger.WithFields(map[string]any{"component": "reporter", "type": ReporterTypeJSON}),
	}
}

func (r *Reporter) Type() string { return ReporterTypeJSON }

type jsonReport struct {
	Summary jsonSummary      `json:"summary"`
	Results []jsonResultItem `json:"results"`
}

type jsonSummary struct {
	SourceA   jsonSource `json:"source_a"`
	SourceB   jsonSource `json:"source_b"`
	Identical int        `json:"identical"`
	Differs   int        `json:"differs"`
	OnlyInA   int        `json:"only_in_a"`
	OnlyInB   int        `json:"only_in_b"`
}

type jsonSource struct {
	Path   string `json:"path"`
	Loaded int    `json:"loaded"`
}

type jsonResultItem struct {
	Status   domain.MatchStatus `json:"status"`
	Symbol   string             `json:"symbol"`
	Name     string             `json:"name"`
	PackageA string             `json:"package_a,omitempty"`
	PackageB string             `json:"package_b,omitempty"`
}

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	counts := report.Counts()
	out := jsonReport{
		Summary: jsonSummary{
			SourceA:   jsonSource{Path: report.SourceA.Path, Loaded: report.SourceA.Loaded},
			SourceB:   jsonSource{Path: report.SourceB.Path, Loaded: report.SourceB.Loaded},
			Identical: counts.Identical,
			Differs:   counts.Differs,
			OnlyInA:   counts.OnlyInA,
			OnlyInB:   counts.OnlyInB,
		},
		Results: make([]jsonResultItem, 0, len(report.ASide)+len(report.BOnly)),
	}

	for _, row := range report.Rows() {
		out.Results = append(out.Results, jsonResultItem{
			Status:   row.Status,
			Symbol:   row.Status.Symbol(),
			Name:     row.SortKey,
			PackageA: row.PackageA,
			PackageB: row.PackageB,
		})
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return errors.Wrap(err, errors.CodeOutputWrite, "failed to encode JSON report")
	}

	r.logger.Debugf(ctx, "JSON report successfully generated")
	return nil
}
