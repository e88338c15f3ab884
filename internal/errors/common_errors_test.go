package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "io error type", errType: ErrTypeIO, expected: "IO"},
		{name: "schema error type", errType: ErrTypeSchema, expected: "SCHEMA"},
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name:        "error without cause",
			appError:    NewSchemaError("expected 18 columns, found 17"),
			wantMessage: "[SCHEMA] expected 18 columns, found 17",
		},
		{
			name:        "error with cause",
			appError:    NewIOError("cannot open survey export", os.ErrNotExist),
			wantMessage: "[IO] cannot open survey export: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewIOError("cannot open survey export", os.ErrNotExist)

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, os.ErrNotExist, err.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewSchemaError("header mismatch").
		WithContext("column", 3).
		WithContext("header", "Job title")

	require.Len(t, err.Context, 2)
	assert.Equal(t, 3, err.Context["column"])
	assert.Equal(t, "Job title", err.Context["header"])

	bare := &AppError{Type: ErrTypeConfig, Message: "x"}
	bare.WithContext("key", "value")
	assert.Equal(t, "value", bare.Context["key"])
}

func TestAppError_Is(t *testing.T) {
	wrapped := fmt.Errorf("load survey: %w", NewSchemaError("header mismatch"))

	assert.True(t, errors.Is(wrapped, &AppError{Type: ErrTypeSchema}))
	assert.False(t, errors.Is(wrapped, &AppError{Type: ErrTypeIO}))
	assert.False(t, errors.Is(wrapped, &AppError{Type: ErrTypeSchema, Message: "other"}))
}

func TestTypeHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		io, schema bool
		validation bool
	}{
		{
			name:     "wrapped io error",
			err:      fmt.Errorf("run: %w", NewIOError("read failed", os.ErrPermission)),
			wantType: ErrTypeIO,
			io:       true,
		},
		{
			name:     "schema error",
			err:      NewSchemaError("bad header"),
			wantType: ErrTypeSchema,
			schema:   true,
		},
		{
			name:       "validation error",
			err:        NewAppValidationError("unknown group field"),
			wantType:   ErrTypeValidation,
			validation: true,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantType: "",
		},
		{
			name:     "nil error",
			err:      nil,
			wantType: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, TypeOf(tt.err))
			assert.Equal(t, tt.io, IsIOError(tt.err))
			assert.Equal(t, tt.schema, IsSchemaError(tt.err))
			assert.Equal(t, tt.validation, IsValidationError(tt.err))
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{"parsing", NewParsingError("bad cell", cause), ErrTypeParsing},
		{"storage", NewStorageError("write failed", cause), ErrTypeStorage},
		{"config", NewConfigError("bad yaml", cause), ErrTypeConfig},
		{"validation", NewAppValidationError("bad mode"), ErrTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.NotNil(t, tt.err.Context)
		})
	}
}
