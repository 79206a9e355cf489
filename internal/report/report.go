// Package report formats the before/after summary of a compression run.
// All functions are pure; printing is left to the caller.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"pdfo/internal/common"
	"pdfo/internal/compression"
)

// Header renders the lines printed before the backend runs.
func Header(req *compression.Request, backend compression.Backend, inputSize int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔄 Compressing: %s\n", filepath.Base(req.InputPath))
	if backend == compression.BackendGhostscript {
		fmt.Fprintf(&b, "   Method: Ghostscript (quality=%d)\n", req.Quality)
	} else {
		fmt.Fprintf(&b, "   Method: %s\n", backend)
	}
	fmt.Fprintf(&b, "   Before: %s bytes (%s)",
		common.GroupDigits(inputSize), common.FormatSize(inputSize))

	return b.String()
}

// Summary renders the success lines for a finished run. The reduction may
// be negative when the output grew.
func Summary(res *compression.Result) string {
	var b strings.Builder

	b.WriteString("✅ Success!\n")
	fmt.Fprintf(&b, "   After:  %s bytes (%s)\n",
		common.GroupDigits(res.OutputSize), common.FormatSize(res.OutputSize))
	fmt.Fprintf(&b, "   Saved:  %.1f%% reduction\n", res.Reduction())
	fmt.Fprintf(&b, "   File:   %s", res.OutputPath)

	return b.String()
}
