package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"pdfo/internal/compression"
)

func TestRootCmd_FlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{
			name:     "quality defaults to 2",
			flag:     "quality",
			expected: "2",
		},
		{
			name:     "output defaults to empty",
			flag:     "output",
			expected: "",
		},
		{
			name:     "force defaults to false",
			flag:     "force",
			expected: "false",
		},
		{
			name:     "no-gs defaults to false",
			flag:     "no-gs",
			expected: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("Expected flag %q to be registered", tt.flag)
			}
			if flag.DefValue != tt.expected {
				t.Errorf("Expected default %q, got %q", tt.expected, flag.DefValue)
			}
		})
	}
}

func TestRootCmd_RequiresInputArgument(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected error when no input file is given")
	}
}

func TestRootCmd_MissingInputFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.pdf")})

	err := cmd.Execute()
	if !errors.Is(err, compression.ErrInputNotFound) {
		t.Errorf("Expected ErrInputNotFound, got %v", err)
	}
}

func TestRootCmd_InvalidQuality(t *testing.T) {
	tests := []struct {
		name    string
		quality string
	}{
		{
			name:    "zero",
			quality: "0",
		},
		{
			name:    "negative",
			quality: "-1",
		},
		{
			name:    "too high",
			quality: "9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(new(bytes.Buffer))
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs([]string{"-q", tt.quality, "doc.pdf"})

			err := cmd.Execute()
			if !errors.Is(err, compression.ErrInvalidQuality) {
				t.Errorf("Expected ErrInvalidQuality for -q %s, got %v", tt.quality, err)
			}
		})
	}

	// Reset for other tests; cobra flag vars are package-level.
	quality = compression.DefaultQuality
}

func TestRootCmd_Help(t *testing.T) {
	out := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Expected no error for --help, got %v", err)
	}

	help := out.String()
	for _, want := range []string{"pdfo <input.pdf>", "Quality levels", "-q", "--force"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help output to contain %q", want)
		}
	}
}
