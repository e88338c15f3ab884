package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := Default()
	paths, err := NewPaths(cfg)
	require.NoError(t, err)

	wd := paths.WorkingDir
	assert.Equal(t, filepath.Join(wd, "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(wd, "logs"), paths.LogsDir)
	assert.Equal(t, filepath.Join(wd, "reports", "summary.json"), paths.SummaryJSON)
	assert.Equal(t, filepath.Join(wd, "reports", "summary.xlsx"), paths.SummaryXLSX)
}

func TestNewPaths_Absolute(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	cfg := Default()
	cfg.Output.Dir = out
	paths, err := NewPaths(cfg)
	require.NoError(t, err)

	assert.Equal(t, out, paths.ReportsDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths := &Paths{
		ReportsDir: filepath.Join(base, "a", "reports"),
		LogsDir:    filepath.Join(base, "b", "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())
	assert.DirExists(t, paths.ReportsDir)
	assert.DirExists(t, paths.LogsDir)
}

func TestReportFileNames(t *testing.T) {
	paths := &Paths{ReportsDir: "/out"}

	tests := []struct {
		field   string
		wantPNG string
		wantCSV string
	}{
		{"industry", "/out/income_by_industry.png", "/out/income_by_industry.csv"},
		{"exp_general", "/out/income_by_experience.png", "/out/income_by_experience.csv"},
		{"gender", "/out/income_by_gender.png", "/out/income_by_gender.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.wantPNG), paths.GetChartPath(tt.field))
			assert.Equal(t, filepath.FromSlash(tt.wantCSV), paths.GetTableCSVPath(tt.field))
		})
	}
}

func TestFileExists(t *testing.T) {
	assert.True(t, FileExists(t.TempDir()))
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "nope")))
}
