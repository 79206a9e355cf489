package compression

import (
	"errors"
	"fmt"
)

// Request validation error types
var (
	ErrInputNotFound        = errors.New("input file not found")
	ErrNotPDF               = errors.New("input must be a PDF file")
	ErrInvalidQuality       = errors.New("quality level must be between 1 and 4")
	ErrOutputExists         = errors.New("output file already exists (use -f to overwrite)")
	ErrOutputDirNotFound    = errors.New("output directory does not exist")
	ErrGrayscaleUnavailable = errors.New("grayscale conversion requires ghostscript")
)

// ExecError represents a failed Ghostscript invocation.
type ExecError struct {
	Output string
	Err    error
}

func (e *ExecError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("ghostscript failed: %v: %s", e.Err, e.Output)
	}
	return fmt.Sprintf("ghostscript failed: %v", e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// FallbackError represents a failure in the library fallback path.
type FallbackError struct {
	Path string
	Err  error
}

func (e *FallbackError) Error() string {
	return fmt.Sprintf("fallback compression failed for %s: %v", e.Path, e.Err)
}

func (e *FallbackError) Unwrap() error {
	return e.Err
}
