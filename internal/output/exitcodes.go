package output

import "errors"

// Exit codes. Every failure site has its own code so scripts can tell
// which step of a run went wrong.
const (
	ExitSuccess       = 0
	ExitWriteError    = 1  // output file could not be written
	ExitTemplateDir   = 2  // template directory missing or cache directory not creatable
	ExitPaletteError  = 3  // palette file unreadable
	ExitCacheError    = 4  // cache directory could not be cleared
	ExitPaletteRange  = 5  // placeholder index beyond the palette length
	ExitTemplateError = 6  // template file unreadable
	ExitUsageError    = 64 // bad flags or arguments
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewError creates an error with the given exit code.
func NewError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// NewErrorWithCause creates an error with the given exit code wrapping cause.
// The cause's text is appended to message.
func NewErrorWithCause(code int, message string, cause error) *ExitError {
	msg := message
	if cause != nil {
		msg = message + ": " + cause.Error()
	}
	return &ExitError{Code: code, Message: msg, Cause: cause}
}

// NewUsageError creates an error for bad arguments or flags.
func NewUsageError(message string) *ExitError {
	return NewError(ExitUsageError, message)
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUsageError for non-ExitError errors
// (cobra reports flag and argument problems as plain errors).
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUsageError
}
