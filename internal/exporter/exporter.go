package exporter

import (
	"context"
	"log/slog"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/config"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// SummaryExporter writes summaries to the reports directory in the
// machine-readable formats.
type SummaryExporter struct {
	paths     *config.Paths
	csvWriter *CSVWriter
	logger    *slog.Logger
}

// NewSummaryExporter creates a summary exporter
func NewSummaryExporter(paths *config.Paths, logger *slog.Logger) *SummaryExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryExporter{
		paths:     paths,
		csvWriter: NewCSVWriter(paths, logger),
		logger:    logger,
	}
}

// ExportTables writes one CSV per summary and returns the written paths
func (e *SummaryExporter) ExportTables(ctx context.Context, summaries []domain.Summary) ([]string, error) {
	written := make([]string, 0, len(summaries))
	for _, s := range summaries {
		path, err := e.csvWriter.WriteSummaryCSV(s)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	e.logger.InfoContext(ctx, "exported summary tables",
		slog.Int("files", len(written)))
	return written, nil
}

// ExportJSON writes report to summary.json and returns its path
func (e *SummaryExporter) ExportJSON(ctx context.Context, report domain.SummaryReport) (string, error) {
	if err := WriteJSON(e.paths.SummaryJSON, report); err != nil {
		return "", err
	}
	e.logger.InfoContext(ctx, "exported summary JSON",
		slog.String("path", e.paths.SummaryJSON))
	return e.paths.SummaryJSON, nil
}

// ExportXLSX writes report to summary.xlsx and returns its path
func (e *SummaryExporter) ExportXLSX(ctx context.Context, report domain.SummaryReport) (string, error) {
	if err := WriteXLSX(e.paths.SummaryXLSX, report); err != nil {
		return "", err
	}
	e.logger.InfoContext(ctx, "exported summary workbook",
		slog.String("path", e.paths.SummaryXLSX))
	return e.paths.SummaryXLSX, nil
}
