// Package gui implements the SDL window and input event handling.
package gui

import (
	"fmt"
	"runtime"

	"github.com/retroenv/nesgoemu/internal/ppu"
	"github.com/veandco/go-sdl2/sdl"
)

// Compile-time check that the SDL renderer can serve as the video
// stage render target.
var _ ppu.Surface = (*sdl.Renderer)(nil)

// Window owns the SDL window and renderer of the emulator.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// New initializes SDL and creates the emulator window with an
// accelerated renderer. The video output is scaled by the given
// integer factor. SDL requires all windowing calls to happen on the
// same OS thread, so the calling goroutine gets locked to its thread.
func New(title string, scale int) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(ppu.Width*scale), int32(ppu.Height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
	}, nil
}

// Surface returns the render target for the video stage.
func (w *Window) Surface() ppu.Surface {
	return w.renderer
}

// PollEvents drains the SDL event queue. It returns false once a quit
// request was observed.
func (w *Window) PollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if event.GetType() == sdl.QUIT {
			return false
		}
	}
	return true
}

// Close destroys the renderer and window and shuts down SDL.
func (w *Window) Close() {
	if w.renderer != nil {
		_ = w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		_ = w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
}
