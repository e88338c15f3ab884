package validation

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/BonkerMcBonkerson/Professional-Portfolio/internal/errors"
)

func quietValidator() *FileValidator {
	return NewFileValidator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewFileValidator_NilLogger(t *testing.T) {
	v := NewFileValidator(nil)
	assert.NotNil(t, v.logger)
}

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		errorContains string
	}{
		{
			name: "readable file",
			setupFunc: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "survey.csv")
				require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))
				return path
			},
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:       true,
			errorContains: "does not exist",
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:       true,
			errorContains: "is a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := quietValidator().ValidateFile(tt.setupFunc(t))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsIOError(err))
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFileValidator_ValidateSurveyFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		return path
	}

	tests := []struct {
		name       string
		path       string
		wantFormat InputFormat
		wantErr    bool
	}{
		{"csv", write("survey.csv"), FormatCSV, false},
		{"no extension reads as csv", write("survey"), FormatCSV, false},
		{"xlsx", write("survey.xlsx"), FormatXLSX, false},
		{"upper-case xlsx", write("SURVEY.XLSX"), FormatXLSX, false},
		{"legacy xls", write("survey.xls"), "", true},
		{"excel lock file", write("~$survey.xlsx"), "", true},
		{"missing", filepath.Join(dir, "nope.csv"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := quietValidator().ValidateSurveyFile(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsIOError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	require.NoError(t, quietValidator().ValidateOutputDirectory(dir))
	assert.DirExists(t, dir)
	assert.NoFileExists(t, filepath.Join(dir, ".write_test"))
}

func TestFileValidator_ValidateOutputDirectory_BlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := quietValidator().ValidateOutputDirectory(filepath.Join(blocker, "reports"))
	require.Error(t, err)
	assert.True(t, apperrors.IsIOError(err))
}
