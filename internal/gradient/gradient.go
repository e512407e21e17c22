// Package gradient implements the HUE editor: a color gradient made of
// stops, and the frames generated by sweeping or laying it out.
package gradient

import (
	"errors"
	"fmt"
	"sort"

	"cubanimate/internal/cube"
)

var ErrEndStop = errors.New("the first and last stops cannot be removed")

// Stop is a color at a position between 0 and 1.
type Stop struct {
	Pos   float64
	Color cube.Color
}

// Gradient keeps its stops sorted by position. It always has a stop at 0
// and one at 1.
type Gradient struct {
	Name  string
	stops []Stop
}

// New builds a gradient from two end colors.
func New(from, to cube.Color) *Gradient {
	return &Gradient{stops: []Stop{{Pos: 0, Color: from}, {Pos: 1, Color: to}}}
}

// Default is the rainbow the HUE editor starts with.
func Default() *Gradient {
	g := New(cube.RGB(255, 0, 0), cube.RGB(255, 0, 0))
	g.Name = "rainbow"
	g.AddStop(1.0/6, cube.RGB(255, 255, 0))
	g.AddStop(2.0/6, cube.RGB(0, 255, 0))
	g.AddStop(3.0/6, cube.RGB(0, 255, 255))
	g.AddStop(4.0/6, cube.RGB(0, 0, 255))
	g.AddStop(5.0/6, cube.RGB(255, 0, 255))
	return g
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}

// Stops returns a copy of the stops in order.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

func (g *Gradient) Len() int {
	return len(g.stops)
}

// AddStop inserts a stop and returns its index. Positions are clamped to
// [0, 1]; a stop at an existing position replaces its color.
func (g *Gradient) AddStop(pos float64, c cube.Color) int {
	pos = clamp01(pos)
	i := sort.Search(len(g.stops), func(i int) bool { return g.stops[i].Pos >= pos })
	if i < len(g.stops) && g.stops[i].Pos == pos {
		g.stops[i].Color = c
		return i
	}
	g.stops = append(g.stops, Stop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = Stop{Pos: pos, Color: c}
	return i
}

func (g *Gradient) RemoveStop(i int) error {
	if i < 0 || i >= len(g.stops) {
		return fmt.Errorf("no stop %d", i)
	}
	if i == 0 || i == len(g.stops)-1 {
		return ErrEndStop
	}
	g.stops = append(g.stops[:i], g.stops[i+1:]...)
	return nil
}

func (g *Gradient) SetColor(i int, c cube.Color) error {
	if i < 0 || i >= len(g.stops) {
		return fmt.Errorf("no stop %d", i)
	}
	g.stops[i].Color = c
	return nil
}

// ColorAt interpolates the gradient in RGB.
func (g *Gradient) ColorAt(t float64) cube.Color {
	t = clamp01(t)
	if t <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	for i := 1; i < len(g.stops); i++ {
		lo, hi := g.stops[i-1], g.stops[i]
		if t > hi.Pos {
			continue
		}
		span := hi.Pos - lo.Pos
		if span <= 0 {
			return hi.Color
		}
		return cube.FromColorful(lo.Color.Colorful().BlendRgb(hi.Color.Colorful(), (t-lo.Pos)/span))
	}
	return g.stops[len(g.stops)-1].Color
}

// Sweep returns n frames, frame i filled with the color at i/n. Played in a
// loop they cycle through the whole gradient.
func (g *Gradient) Sweep(size cube.Size, n int) []*cube.Frame {
	frames := make([]*cube.Frame, 0, max(n, 0))
	for i := 0; i < n; i++ {
		f := cube.NewFrame(size)
		f.Fill(g.ColorAt(float64(i) / float64(n)))
		frames = append(frames, f)
	}
	return frames
}

// Along returns one frame with the gradient laid out along axis.
func (g *Gradient) Along(size cube.Size, axis cube.Axis) *cube.Frame {
	f := cube.NewFrame(size)
	steps := size.Get(axis) - 1
	for z := 0; z < size.Z; z++ {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				t := 0.0
				if steps > 0 {
					t = float64([3]int{x, y, z}[axis]) / float64(steps)
				}
				f.SetColorLED(x, y, z, g.ColorAt(t))
			}
		}
	}
	return f
}
