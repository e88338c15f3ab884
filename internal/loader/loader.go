package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/internal/validation"
	"github.com/BonkerMcBonkerson/Professional-Portfolio/pkg/contracts/domain"
)

// Loader reads a survey export into raw records
type Loader struct {
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewLoader creates a loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		validator: validation.NewFileValidator(logger),
	}
}

// Load reads the export at path. CSV and .xlsx exports are supported; the
// header must match the fixed survey layout.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.RawRecord, error) {
	format, err := l.validator.ValidateSurveyFile(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	var records []domain.RawRecord
	switch format {
	case validation.FormatXLSX:
		records, err = ReadXLSX(f)
	default:
		records, err = ReadCSV(f)
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "failed to load survey export",
			slog.String("path", path),
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		return nil, err
	}

	l.logger.InfoContext(ctx, "loaded survey export",
		slog.String("path", path),
		slog.String("format", string(format)),
		slog.Int("record_count", len(records)))

	return records, nil
}

// ReadCSV parses a comma-separated export. Answers are free text, so quoting
// is read leniently and rows may be ragged.
func ReadCSV(r io.Reader) ([]domain.RawRecord, error) {
	br := bufio.NewReader(r)
	if err := skipByteOrderMark(br); err != nil {
		return nil, apperrors.NewIOError("failed to read export", err)
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, apperrors.NewSchemaError("export is empty: no header row")
	}
	if err != nil {
		return nil, readError(err)
	}
	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		if isBlank(row) {
			continue
		}
		records = append(records, domain.NewRawRecord(row))
	}

	return records, nil
}

// ReadXLSX parses the first sheet of an Excel export
func ReadXLSX(r io.Reader) ([]domain.RawRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewIOError("cannot open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewSchemaError("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("cannot read sheet %q", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewSchemaError("export is empty: no header row")
	}

	// Excel drops trailing empty header cells; a short header is still a mismatch
	if err := ValidateHeader(rows[0]); err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, domain.NewRawRecord(row))
	}

	return records, nil
}

// readError classifies a CSV read failure. Malformed rows are parse errors;
// anything else came from the underlying reader.
func readError(err error) error {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return apperrors.NewParsingError(fmt.Sprintf("malformed CSV at line %d", parseErr.Line), err)
	}
	return apperrors.NewIOError("failed to read export", err)
}

// skipByteOrderMark drops a leading UTF-8 BOM, which spreadsheet tools add on export
func skipByteOrderMark(br *bufio.Reader) error {
	r, _, err := br.ReadRune()
	if stderrors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	if r != '\ufeff' {
		return br.UnreadRune()
	}
	return nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
