package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// WriteJSON writes report as indented JSON to path
func WriteJSON(path string, report domain.SummaryReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to encode summary report", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewIOError("failed to create directory", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to write %s", path), err)
	}

	slog.Debug("Wrote summary JSON",
		slog.String("path", path),
		slog.Int("summaries", len(report.Summaries)))
	return nil
}
