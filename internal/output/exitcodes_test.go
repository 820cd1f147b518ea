package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodes_Distinct(t *testing.T) {
	codes := map[string]int{
		"ExitWriteError":    ExitWriteError,
		"ExitTemplateDir":   ExitTemplateDir,
		"ExitPaletteError":  ExitPaletteError,
		"ExitCacheError":    ExitCacheError,
		"ExitPaletteRange":  ExitPaletteRange,
		"ExitTemplateError": ExitTemplateError,
		"ExitUsageError":    ExitUsageError,
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if code == ExitSuccess {
			t.Errorf("%s must not equal ExitSuccess", name)
		}
		if other, ok := seen[code]; ok {
			t.Errorf("%s and %s share exit code %d", name, other, code)
		}
		seen[code] = name
	}
}

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantErrorStr string
	}{
		{
			name:         "usage error",
			err:          NewUsageError("requires a palette file"),
			wantCode:     ExitUsageError,
			wantErrorStr: "requires a palette file",
		},
		{
			name:         "palette error",
			err:          NewError(ExitPaletteError, "cannot read palette"),
			wantCode:     ExitPaletteError,
			wantErrorStr: "cannot read palette",
		},
		{
			name:         "with cause",
			err:          NewErrorWithCause(ExitWriteError, "writing out.conf", errors.New("disk full")),
			wantCode:     ExitWriteError,
			wantErrorStr: "writing out.conf: disk full",
		},
		{
			name:         "nil cause",
			err:          NewErrorWithCause(ExitCacheError, "clearing cache", nil),
			wantCode:     ExitCacheError,
			wantErrorStr: "clearing cache",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewErrorWithCause(ExitTemplateError, "reading template", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "write error", err: NewError(ExitWriteError, "x"), expected: ExitWriteError},
		{name: "palette range", err: NewError(ExitPaletteRange, "x"), expected: ExitPaletteRange},
		{name: "plain error", err: errors.New("unknown flag: --bogus"), expected: ExitUsageError},
		{
			name:     "wrapped ExitError",
			err:      fmt.Errorf("build: %w", NewError(ExitTemplateError, "x")),
			expected: ExitTemplateError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
