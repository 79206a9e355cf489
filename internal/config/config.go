package config

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Config holds application configuration
type Config struct {
	WorkingDir      string
	GhostscriptPath string
}

// Well-known install locations checked when gs is not on PATH.
var ghostscriptCandidates = []string{
	"/usr/local/bin/gs",
	"/opt/homebrew/bin/gs",
	"/usr/bin/gs",
}

// New creates a new configuration instance
func New() *Config {
	cfg := &Config{}

	cfg.setupDirectories()
	cfg.setupGhostscriptPath()

	return cfg
}

func (c *Config) setupDirectories() {
	// Working directory for staged output files
	c.WorkingDir = filepath.Join(os.TempDir(), "pdfo")

	// Ensure working directory exists
	os.MkdirAll(c.WorkingDir, 0755)
}

func (c *Config) setupGhostscriptPath() {
	if path, err := exec.LookPath("gs"); err == nil {
		c.GhostscriptPath = path
		return
	}

	for _, candidate := range ghostscriptCandidates {
		if stat, err := os.Stat(candidate); err == nil && stat.Mode()&0111 != 0 {
			c.GhostscriptPath = candidate
			return
		}
	}
}
