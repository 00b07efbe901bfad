package csvdata

import (
	"errors"
	"fmt"
)

// Recoverable per-file parse failures.
var (
	ErrInsufficientLines = errors.New("insufficient lines")
	ErrMissingHeader     = errors.New("missing header")
	ErrNoDataRows        = errors.New("no data rows")
)

// FormatError marks a file that does not match the expected CSV layout.
// It is recoverable: callers log it and move on to the next file.
type FormatError struct {
	File string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format: %s: %v", e.File, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError wraps a sentinel parse failure for a given file.
func NewFormatError(file string, err error) *FormatError {
	return &FormatError{File: file, Err: err}
}

// IsFormatError reports whether err is a recoverable file-format failure.
func IsFormatError(err error) bool {
	var fe *FormatError

	return errors.As(err, &fe)
}
