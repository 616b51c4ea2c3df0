// Package ppu contains the video output stage of the emulator.
//
// The picture processing unit is not emulated yet, the stage presents
// one blank frame per render call. It draws against a narrow surface
// interface so the run loop and tests stay independent of the
// rendering backend.
package ppu

import "fmt"

// Video output dimensions of the NES in pixels.
const (
	Width  = 256
	Height = 240
)

// Surface is the render target a frame is composed onto.
// *sdl.Renderer satisfies it.
type Surface interface {
	SetDrawColor(r, g, b, a uint8) error
	Clear() error
	Present()
}

// PPU is the video output stage.
type PPU struct{}

// New creates a new video output stage.
func New() *PPU {
	return &PPU{}
}

// RenderFrame composes one frame onto the surface and presents it.
// It is called exactly once per run loop iteration and returns before
// the next processor step begins. The frame is a solid black fill
// until background and sprite rendering are implemented.
func (p *PPU) RenderFrame(surface Surface) error {
	if err := surface.SetDrawColor(0, 0, 0, 0xFF); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := surface.Clear(); err != nil {
		return fmt.Errorf("clearing frame: %w", err)
	}
	surface.Present()
	return nil
}
