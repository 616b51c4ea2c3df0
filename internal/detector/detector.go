// Package detector handles cartridge format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format describes how a cartridge file is parsed.
type Format string

// Supported cartridge file formats.
const (
	// FormatINES is the iNES container format with a 16 byte header
	// describing PRG/CHR bank layout.
	FormatINES Format = "ines"
	// FormatRaw is a headerless binary whose bytes are the program data.
	FormatRaw Format = "raw"
)

// Detector handles cartridge format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new cartridge format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the cartridge format from options or file auto-detection.
// The -binary flag forces raw mode, otherwise the format is derived from the
// input filename extension.
func (d *Detector) Detect(opts options.Program) Format {
	if opts.Binary {
		return FormatRaw
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected cartridge format",
		log.String("format", string(format)),
		log.String("file", opts.Input))
	return format
}

// detectFromFile determines the cartridge format based on file extension.
func (d *Detector) detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".bin", ".prg", ".raw":
		return FormatRaw
	default:
		// .nes and unknown extensions default to the iNES container
		return FormatINES
	}
}
