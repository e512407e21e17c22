// Package view holds the on-screen representations of the cube. Views never
// read a frame directly; they only learn about colors through paint events.
package view

import (
	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
)

// View is a representation of the cube kept current by the paint bus.
type View interface {
	paint.Listener
	Resize(size cube.Size)
}

// Display mirrors the color shown for every LED. It is the reference the
// animation compares against when the edited frame changes.
type Display struct {
	shown *cube.Frame
}

func NewDisplay(size cube.Size) *Display {
	return &Display{shown: cube.NewFrame(size)}
}

func (d *Display) NewColor(x, y, z int, c cube.Color) {
	_ = d.shown.SetColorLED(x, y, z, c)
}

func (d *Display) EraseColor(x, y, z int) {
	_ = d.shown.EraseColorLED(x, y, z)
}

// Resize blanks the display to the new size.
func (d *Display) Resize(size cube.Size) {
	d.shown = cube.NewFrame(size)
}

// DisplayedColor is the color currently shown for one LED.
func (d *Display) DisplayedColor(x, y, z int) cube.Color {
	return d.shown.At(x, y, z)
}

func (d *Display) Size() cube.Size {
	return d.shown.Size()
}

func (d *Display) At(x, y, z int) cube.Color {
	return d.shown.At(x, y, z)
}

// Snapshot copies what is currently shown.
func (d *Display) Snapshot() *cube.Frame {
	return d.shown.Clone()
}
