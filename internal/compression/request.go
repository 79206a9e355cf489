package compression

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pdfo/internal/common"
)

var pdfSignature = []byte("%PDF-")

// DefaultOutputPath derives "<stem>_compressed.pdf" next to the input.
func DefaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + common.CompressedSuffix + ext
}

// Normalize fills derived defaults on the request. Quality is left
// untouched so Validate rejects any level outside the preset table,
// including zero.
func (r *Request) Normalize() {
	if r.OutputPath == "" {
		r.OutputPath = DefaultOutputPath(r.InputPath)
	}
}

// Validate checks the request against the filesystem before any backend
// runs. Overwriting an existing output, including the input itself,
// requires Force.
func (r *Request) Validate() error {
	if r.Quality < MinQuality || r.Quality > MaxQuality {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, r.Quality)
	}

	info, err := os.Stat(r.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, r.InputPath)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrNotPDF, r.InputPath)
	}

	if !strings.EqualFold(filepath.Ext(r.InputPath), ".pdf") {
		return fmt.Errorf("%w: %s", ErrNotPDF, r.InputPath)
	}
	if err := checkSignature(r.InputPath); err != nil {
		return err
	}

	if dir := filepath.Dir(r.OutputPath); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("%w: %s", ErrOutputDirNotFound, dir)
		}
	}

	if _, err := os.Stat(r.OutputPath); err == nil && !r.Force {
		return fmt.Errorf("%w: %s", ErrOutputExists, r.OutputPath)
	}

	return nil
}

// checkSignature looks for the %PDF- marker near the start of the file.
// The marker is allowed within the first 1024 bytes, same as most readers.
func checkSignature(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, 1024)
	n, _ := f.Read(header)
	if !bytes.Contains(header[:n], pdfSignature) {
		return fmt.Errorf("%w: %s has no PDF signature", ErrNotPDF, path)
	}

	return nil
}
