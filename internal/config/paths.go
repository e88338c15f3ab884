package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every file location a report run touches.
// Relative output and log directories resolve against the working directory.
type Paths struct {
	WorkingDir string
	ReportsDir string
	LogsDir    string

	SummaryJSON string
	SummaryXLSX string
}

// reportSlugs gives the standard summaries friendlier file names
var reportSlugs = map[string]string{
	"industry":    "industry",
	"exp_general": "experience",
}

// NewPaths resolves the output locations for the given configuration
func NewPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	reportsDir := resolve(wd, cfg.Output.Dir)
	logsDir := filepath.Dir(resolve(wd, cfg.Logging.FilePath))

	return &Paths{
		WorkingDir:  wd,
		ReportsDir:  reportsDir,
		LogsDir:     logsDir,
		SummaryJSON: filepath.Join(reportsDir, SummaryJSONFile),
		SummaryXLSX: filepath.Join(reportsDir, SummaryXLSXFile),
	}, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		slog.Debug("Ensured directory exists", slog.String("directory", dir))
	}
	return nil
}

// ReportSlug returns the file-name stem used for a summary grouped by field
func ReportSlug(field string) string {
	if slug, ok := reportSlugs[field]; ok {
		return slug
	}
	return field
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetChartPath returns the PNG path for the summary grouped by field,
// e.g. income_by_industry.png
func (p *Paths) GetChartPath(field string) string {
	return p.GetReportPath(fmt.Sprintf("income_by_%s.png", ReportSlug(field)))
}

// GetTableCSVPath returns the CSV path for the summary grouped by field
func (p *Paths) GetTableCSVPath(field string) string {
	return p.GetReportPath(fmt.Sprintf("income_by_%s.csv", ReportSlug(field)))
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs the resolved locations for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("working", p.WorkingDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("report_files",
			slog.String("summary_json", p.SummaryJSON),
			slog.String("summary_xlsx", p.SummaryXLSX),
		))
}
