// Package options contains the program options.
package options

import "time"

// DefaultFrameDelay paces the run loop to roughly 60 frames per second.
const DefaultFrameDelay = 16 * time.Millisecond

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Binary   bool // treat input as raw binary without an iNES header
	Debug    bool // enable debug logging
	Headless bool // run without opening a window
	Quiet    bool // quiet mode
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags

	Frames int // stop after this many frames, 0 = run until quit
	Scale  int // window scale factor
}

// Emulator defines options to control the emulation run loop.
type Emulator struct {
	Frames     int           // stop after this many frames, 0 = run until quit
	FrameDelay time.Duration // pause per loop iteration
}

// NewEmulator returns emulator options derived from the program options,
// with default pacing.
func NewEmulator(opts Program) Emulator {
	return Emulator{
		Frames:     opts.Frames,
		FrameDelay: DefaultFrameDelay,
	}
}
