package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/config"
	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(paths *config.Paths, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options. Relative paths
// land in the reports directory.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return apperrors.NewIOError("failed to create directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to create %s", fullPath), err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write(utf8BOM); err != nil {
			return apperrors.NewIOError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewIOError("failed to write headers", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewIOError(fmt.Sprintf("failed to write record %d", i), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to flush %s", fullPath), err)
	}
	return file.Close()
}

// WriteSimpleCSV writes a simple CSV file with headers and records
func (w *CSVWriter) WriteSimpleCSV(filePath string, headers []string, records [][]string) error {
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteSummaryCSV writes one summary as income_by_<field>.csv and returns its path
func (w *CSVWriter) WriteSummaryCSV(s domain.Summary) (string, error) {
	path := w.paths.GetTableCSVPath(s.GroupBy.String())

	records := make([][]string, len(s.Rows))
	for i, r := range s.Rows {
		records[i] = []string{r.GroupKey, formatFloat(r.MeanIncome), formatInt(r.Count)}
	}

	if err := w.WriteSimpleCSV(path, summaryHeaders(s.GroupBy), records); err != nil {
		return "", err
	}
	return path, nil
}

func summaryHeaders(groupBy domain.Field) []string {
	return []string{groupBy.String(), "mean_income", "count"}
}

// resolvePath resolves a path to the reports directory
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
