package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/config"
	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// RunSheet is the name of the workbook sheet holding run metadata and filter counts
const RunSheet = "Run"

// WriteXLSX writes report as a workbook: a Run sheet followed by one sheet
// per summary, named after its report slug.
func WriteXLSX(path string, report domain.SummaryReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RunSheet); err != nil {
		return apperrors.NewStorageError("failed to name run sheet", err)
	}
	if err := writeRunSheet(f, report); err != nil {
		return err
	}

	for _, s := range report.Summaries {
		if err := writeSummarySheet(f, s); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewIOError("failed to create directory", err)
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewIOError(fmt.Sprintf("failed to save %s", path), err)
	}
	return nil
}

func writeRunSheet(f *excelize.File, report domain.SummaryReport) error {
	rows := [][]interface{}{
		{"run_id", report.RunID},
		{"source", report.Source},
		{"generated_at", report.GeneratedAt},
		{"input", report.Filter.Input},
		{"coerced_amounts", report.Filter.CoercedAmounts},
		{"canonical_country", report.Filter.CanonicalCountry},
		{"dropped_by_country", report.Filter.DroppedByCountry},
		{"dropped_by_industry", report.Filter.DroppedByIndustry},
		{"output", report.Filter.Output},
	}
	if err := setRows(f, RunSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(RunSheet, "A", "B", 24); err != nil {
		return apperrors.NewStorageError("failed to size run sheet", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, s domain.Summary) error {
	sheet := config.ReportSlug(s.GroupBy.String())
	if _, err := f.NewSheet(sheet); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to add sheet %s", sheet), err)
	}

	headers := summaryHeaders(s.GroupBy)
	rows := make([][]interface{}, 0, len(s.Rows)+1)
	rows = append(rows, []interface{}{headers[0], headers[1], headers[2]})
	for _, r := range s.Rows {
		rows = append(rows, []interface{}{r.GroupKey, r.MeanIncome, r.Count})
	}
	if err := setRows(f, sheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", 40); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to size sheet %s", sheet), err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return apperrors.NewStorageError("invalid cell", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write %s!%s", sheet, cell), err)
		}
	}
	return nil
}
