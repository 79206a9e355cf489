package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pdfo/internal/compression"
	"pdfo/internal/config"
	"pdfo/internal/report"
)

var (
	outputPath string
	quality    int
	force      bool
	noGS       bool
	grayscale  bool
	verbose    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfo <input.pdf>",
		Short: "Compress PDF files to reduce file size",
		Long: `Compress PDF files to reduce file size dramatically.

Quality levels (using Ghostscript):
  1 = High quality   (300 DPI) - Best for printing
  2 = Medium quality (150 DPI) - Default, good balance
  3 = Low quality    (72 DPI)  - Smallest size, screen only
  4 = Lowest quality (72 DPI)  - Maximum compression

When Ghostscript is not installed the file is re-serialized with the
pdfcpu library instead; that still recompresses streams and removes
duplicate objects but does not downsample images.

Tip: Most scanned documents work great with -q 2 or -q 3`,
		Example: `  pdfo document.pdf                    # Auto compress (creates document_compressed.pdf)
  pdfo doc.pdf -o small.pdf            # Specify output file
  pdfo large.pdf -q 3                  # Max compression (72 DPI)
  pdfo doc.pdf -q 1                    # High quality (300 DPI)
  pdfo scan.pdf -f                     # Overwrite existing output`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: <input>_compressed.pdf)")
	cmd.Flags().IntVarP(&quality, "quality", "q", compression.DefaultQuality, "Quality: 1=high(300dpi) 2=medium(150dpi) 3/4=low(72dpi)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite output file if exists")
	cmd.Flags().BoolVar(&noGS, "no-gs", false, "Don't use Ghostscript (use the library fallback instead)")
	cmd.Flags().BoolVar(&grayscale, "grayscale", false, "Convert to grayscale before compressing (requires Ghostscript)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, inputPath string) error {
	logger := newLogger(verbose)
	cfg := config.New()
	compressor := compression.New(cfg, logger)

	req := &compression.Request{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Quality:    quality,
		Force:      force,
		NoEngine:   noGS,
		Grayscale:  grayscale,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	inputInfo, err := os.Stat(req.InputPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Header(req, compressor.Backend(req), inputInfo.Size()))

	res, err := compressor.Compress(req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Summary(res))
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command and prints any error to stderr. The
// returned error signals a non-zero exit to the caller.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return err
	}
	return nil
}
