package compression

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pdfo/internal/common"
	"pdfo/internal/config"
)

// Compressor handles PDF compression operations
type Compressor struct {
	ghostscriptPath string
	workDir         string
	logger          *slog.Logger
}

// New creates a new compressor instance
func New(cfg *config.Config, logger *slog.Logger) *Compressor {
	return &Compressor{
		ghostscriptPath: cfg.GhostscriptPath,
		workDir:         cfg.WorkingDir,
		logger:          logger,
	}
}

// EngineAvailable reports whether the Ghostscript executable was found.
func (c *Compressor) EngineAvailable() bool {
	return c.ghostscriptPath != ""
}

// Backend returns the backend a request would run on.
func (c *Compressor) Backend(req *Request) Backend {
	if c.EngineAvailable() && !req.NoEngine {
		return BackendGhostscript
	}
	return BackendLibrary
}

// Compress validates the request, runs one backend and reports sizes.
// The output is staged in a per-run temp directory and only copied to the
// destination on success, so a failed backend never leaves a partial file
// in place.
func (c *Compressor) Compress(req *Request) (*Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inputInfo, err := os.Stat(req.InputPath)
	if err != nil {
		return nil, err
	}

	backend := c.Backend(req)
	if req.Grayscale && backend != BackendGhostscript {
		return nil, ErrGrayscaleUnavailable
	}

	stageDir := filepath.Join(c.workDir, common.GenerateUUID())
	if err := os.MkdirAll(stageDir, common.DefaultFilePermissions); err != nil {
		return nil, err
	}
	defer os.RemoveAll(stageDir)
	stagePath := filepath.Join(stageDir, filepath.Base(req.OutputPath))

	inputPath := req.InputPath
	if req.Grayscale {
		grayPath := filepath.Join(stageDir, "grayscale.pdf")
		if err := c.convertToGrayscale(inputPath, grayPath); err != nil {
			return nil, err
		}
		inputPath = grayPath
	}

	c.logger.Debug("compressing",
		"input", inputPath,
		"output", req.OutputPath,
		"quality", req.Quality,
		"backend", string(backend))

	switch backend {
	case BackendGhostscript:
		err = c.runGhostscript(inputPath, stagePath, PresetFor(req.Quality))
	default:
		err = c.runFallback(inputPath, stagePath)
	}
	if err != nil {
		return nil, err
	}

	stageInfo, err := os.Stat(stagePath)
	if err != nil {
		return nil, fmt.Errorf("backend did not create output file: %w", err)
	}

	if err := common.CopyFile(stagePath, req.OutputPath); err != nil {
		return nil, err
	}

	result := &Result{
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		InputSize:  inputInfo.Size(),
		OutputSize: stageInfo.Size(),
		Backend:    backend,
	}

	if result.OutputSize > result.InputSize {
		c.logger.Warn("output is larger than input",
			"input_size", result.InputSize,
			"output_size", result.OutputSize)
	}

	return result, nil
}

// buildGhostscriptArgs constructs the argument vector for one preset.
func buildGhostscriptArgs(inputPath, outputPath string, preset Preset) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/" + preset.PDFSettings,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dDetectDuplicateImages=true",
		"-dCompressFonts=true",
		"-dDownsampleColorImages=true",
		"-dDownsampleGrayImages=true",
		"-dDownsampleMonoImages=true",
		"-dColorImageDownsampleType=/Bicubic",
		fmt.Sprintf("-dColorImageResolution=%d", preset.ColorImageDPI),
		"-dGrayImageDownsampleType=/Bicubic",
		fmt.Sprintf("-dGrayImageResolution=%d", preset.TargetDPI),
		"-dMonoImageDownsampleType=/Bicubic",
		fmt.Sprintf("-dMonoImageResolution=%d", preset.TargetDPI),
		fmt.Sprintf("-dJPEGQ=%d", preset.JPEGQuality),
		"-sOutputFile=" + outputPath,
		inputPath,
	}
}

func (c *Compressor) runGhostscript(inputPath, outputPath string, preset Preset) error {
	args := buildGhostscriptArgs(inputPath, outputPath, preset)

	cmd := exec.Command(c.ghostscriptPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ExecError{Output: strings.TrimSpace(string(output)), Err: err}
	}

	return nil
}

// convertToGrayscale rewrites the input through a DeviceGray pdfwrite pass
func (c *Compressor) convertToGrayscale(inputPath, outputPath string) error {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-sProcessColorModel=DeviceGray",
		"-dOverrideICC",
		"-dUseCIEColor",
		"-dCompatibilityLevel=1.4",
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + outputPath,
		inputPath,
	}

	cmd := exec.Command(c.ghostscriptPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ExecError{Output: strings.TrimSpace(string(output)), Err: err}
	}

	return nil
}
