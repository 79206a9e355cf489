package compression

// Backend identifies which backend produced the output file.
type Backend string

const (
	BackendGhostscript Backend = "ghostscript"
	BackendLibrary     Backend = "pdfcpu"
)

// Quality level bounds. Level 1 keeps the most image fidelity, level 4
// produces the smallest output.
const (
	MinQuality     = 1
	MaxQuality     = 4
	DefaultQuality = 2
)

// Request describes a single compression run. Built once from CLI flags
// and discarded after the run.
type Request struct {
	InputPath  string
	OutputPath string
	Quality    int
	Force      bool
	NoEngine   bool
	Grayscale  bool
}

// Preset maps a quality level to Ghostscript downsampling settings.
type Preset struct {
	PDFSettings   string
	TargetDPI     int
	ColorImageDPI int
	JPEGQuality   int
}

var presets = map[int]Preset{
	1: {PDFSettings: "printer", TargetDPI: 300, ColorImageDPI: 200, JPEGQuality: 95},
	2: {PDFSettings: "ebook", TargetDPI: 150, ColorImageDPI: 200, JPEGQuality: 85},
	3: {PDFSettings: "screen", TargetDPI: 72, ColorImageDPI: 150, JPEGQuality: 75},
	4: {PDFSettings: "screen", TargetDPI: 72, ColorImageDPI: 150, JPEGQuality: 65},
}

// PresetFor returns the preset for a quality level, defaulting to the
// medium (ebook) preset for unknown levels.
func PresetFor(quality int) Preset {
	if preset, ok := presets[quality]; ok {
		return preset
	}
	return presets[DefaultQuality]
}

// Result reports the outcome of a successful compression run.
type Result struct {
	InputPath  string
	OutputPath string
	InputSize  int64
	OutputSize int64
	Backend    Backend
}

// Reduction returns the size reduction as a percentage of the input size.
// Negative when the output grew.
func (r *Result) Reduction() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return (1 - float64(r.OutputSize)/float64(r.InputSize)) * 100
}

// SavedBytes returns how many bytes the run saved. Negative when the
// output grew.
func (r *Result) SavedBytes() int64 {
	return r.InputSize - r.OutputSize
}
