package paint

import (
	"fmt"

	"cubanimate/internal/cube"
)

// ColorSource supplies the color currently selected for painting.
type ColorSource interface {
	CurrentColor() cube.Color
}

// DefaultPalette mirrors the eight highlight colors of the editor.
var DefaultPalette = []cube.Color{
	cube.RGB(255, 0, 0),
	cube.RGB(255, 128, 0),
	cube.RGB(255, 255, 0),
	cube.RGB(0, 255, 0),
	cube.RGB(0, 255, 255),
	cube.RGB(0, 0, 255),
	cube.RGB(255, 0, 255),
	cube.RGB(32, 32, 32),
}

// Palette is an ordered set of colors with one selected.
type Palette struct {
	colors   []cube.Color
	selected int
}

func NewPalette(colors []cube.Color) *Palette {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	cp := make([]cube.Color, len(colors))
	copy(cp, colors)
	return &Palette{colors: cp}
}

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(hexes []string) (*Palette, error) {
	colors := make([]cube.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := cube.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		colors = append(colors, c)
	}
	return NewPalette(colors), nil
}

func (p *Palette) CurrentColor() cube.Color {
	return p.colors[p.selected]
}

func (p *Palette) Colors() []cube.Color {
	return p.colors
}

func (p *Palette) Selected() int {
	return p.selected
}

func (p *Palette) Select(i int) {
	if i >= 0 && i < len(p.colors) {
		p.selected = i
	}
}

func (p *Palette) Next() {
	p.selected = (p.selected + 1) % len(p.colors)
}

func (p *Palette) Prev() {
	p.selected = (p.selected - 1 + len(p.colors)) % len(p.colors)
}

// Set replaces the selected color.
func (p *Palette) Set(c cube.Color) {
	p.colors[p.selected] = c
}
