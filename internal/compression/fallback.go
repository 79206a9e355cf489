package compression

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// runFallback re-serializes the PDF through pdfcpu when Ghostscript is not
// available. Streams are recompressed and duplicate objects removed, but
// images are not downsampled, so the quality preset does not apply here.
func (c *Compressor) runFallback(inputPath, outputPath string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.OptimizeFile(inputPath, outputPath, conf); err != nil {
		return &FallbackError{Path: inputPath, Err: err}
	}

	return nil
}
