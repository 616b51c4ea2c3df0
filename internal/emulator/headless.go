package emulator

import "github.com/retroenv/nesgoemu/internal/ppu"

// NewHeadlessDisplay returns a display that discards all frames and
// never reports a quit request. It is used for running without a
// window, the loop then ends on context cancellation or an exhausted
// frame budget.
func NewHeadlessDisplay() Display {
	return headlessDisplay{}
}

type headlessDisplay struct{}

func (headlessDisplay) Surface() ppu.Surface { return nullSurface{} }
func (headlessDisplay) PollEvents() bool     { return true }
func (headlessDisplay) Close()               {}

// nullSurface accepts and discards all draw calls.
type nullSurface struct{}

func (nullSurface) SetDrawColor(_, _, _, _ uint8) error { return nil }
func (nullSurface) Clear() error                        { return nil }
func (nullSurface) Present()                            {}
