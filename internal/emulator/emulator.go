// Package emulator wires the processor, memory and video stage
// together and runs the real time emulation loop.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/nesgoemu/internal/cpu"
	"github.com/retroenv/nesgoemu/internal/memory"
	"github.com/retroenv/nesgoemu/internal/options"
	"github.com/retroenv/nesgoemu/internal/ppu"
	"github.com/retroenv/retrogolib/arch/system/nes"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
	"github.com/retroenv/retrogolib/log"
)

// Display is the windowing boundary of the run loop: it provides the
// render target for the video stage and reports quit requests from
// input event polling.
type Display interface {
	// Surface returns the render target for the video stage.
	Surface() ppu.Surface
	// PollEvents drains pending input events and returns false once
	// a quit request was observed.
	PollEvents() bool
	// Close releases the display resources.
	Close()
}

// Emulator owns the processor state, the address space and the video
// stage. All components live and die with the emulator instance.
type Emulator struct {
	logger  *log.Logger
	opts    options.Emulator
	display Display

	cpu *cpu.CPU
	ram *memory.RAM
	ppu *ppu.PPU
}

// New creates an emulator with a freshly allocated address space and
// the processor reset to its power-on state.
func New(logger *log.Logger, display Display, opts options.Emulator) *Emulator {
	ram := memory.New()
	emu := &Emulator{
		logger:  logger,
		opts:    opts,
		display: display,
		cpu:     cpu.New(logger, ram),
		ram:     ram,
		ppu:     ppu.New(),
	}
	emu.cpu.Reset()
	return emu
}

// InsertCartridge copies the cartridge program data into the address
// space at the program base address. Data extending past the top of
// the address space is truncated and reported.
func (e *Emulator) InsertCartridge(cart *cartridge.Cartridge) {
	copied := e.ram.LoadAt(nes.CodeBaseAddress, cart.PRG)
	if copied < len(cart.PRG) {
		e.logger.Warn("Program data exceeds the address space, truncating",
			log.Int("size", len(cart.PRG)),
			log.Int("loaded", copied))
	}

	e.logger.Debug("Cartridge inserted",
		log.Hex("base", uint16(nes.CodeBaseAddress)),
		log.Int("size", copied))
}

// Run executes the emulation loop: poll input, step the processor
// once, render one frame, pace. The loop is strictly sequential on a
// single goroutine. It returns when a quit event is observed, the
// context is cancelled or the configured frame budget is exhausted.
func (e *Emulator) Run(ctx context.Context) error {
	frames := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !e.display.PollEvents() {
			e.logger.Debug("Quit event received")
			return nil
		}

		e.cpu.Step()

		if err := e.ppu.RenderFrame(e.display.Surface()); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}

		frames++
		if e.opts.Frames > 0 && frames >= e.opts.Frames {
			e.logger.Debug("Frame budget exhausted", log.Int("frames", frames))
			return nil
		}

		time.Sleep(e.opts.FrameDelay)
	}
}
