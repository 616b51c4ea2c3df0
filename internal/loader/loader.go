// Package loader handles cartridge file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/nesgoemu/internal/detector"
	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load loads and parses a cartridge file based on the detected format.
// iNES files are parsed with their header, raw binaries are read as a
// plain program data buffer.
func (l *Loader) Load(opts options.Program, format detector.Format) (*cartridge.Cartridge, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	cart, err := l.load(file, format)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge %s: %w", opts.Input, err)
	}
	return cart, nil
}

// LoadReader parses cartridge data from a reader.
// This is useful for testing and programmatic usage where the cartridge
// data is already in memory.
func (l *Loader) LoadReader(reader io.Reader, format detector.Format) (*cartridge.Cartridge, error) {
	cart, err := l.load(reader, format)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return cart, nil
}

func (l *Loader) load(reader io.Reader, format detector.Format) (*cartridge.Cartridge, error) {
	if format == detector.FormatRaw {
		return cartridge.LoadBuffer(reader)
	}
	return cartridge.LoadFile(reader)
}
