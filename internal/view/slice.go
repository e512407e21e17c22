package view

import (
	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
)

// Orientation names the three sliced views of the cube. Columns and rows
// are the axes laid out on screen; layers step along the slicing axis.
type Orientation struct {
	Name    string
	Column  cube.Axis
	Row     cube.Axis
	Slicing cube.Axis
}

var (
	BottomToTop = Orientation{Name: "Bottom to top", Column: cube.AxisX, Row: cube.AxisY, Slicing: cube.AxisZ}
	LeftToRight = Orientation{Name: "Left to right", Column: cube.AxisZ, Row: cube.AxisX, Slicing: cube.AxisY}
	BackToFront = Orientation{Name: "Back to front", Column: cube.AxisZ, Row: cube.AxisY, Slicing: cube.AxisX}
)

// Orientations lists the sliced views in tab order.
var Orientations = []Orientation{BackToFront, LeftToRight, BottomToTop}

// Slice shows the cube as a row of 2D layers along one axis.
type Slice struct {
	orient Orientation
	size   cube.Size
	layers [][][]cube.Color // [layer][row][column]
}

func NewSlice(o Orientation, size cube.Size) *Slice {
	s := &Slice{orient: o}
	s.Resize(size)
	return s
}

func (s *Slice) Orientation() Orientation {
	return s.orient
}

func (s *Slice) Resize(size cube.Size) {
	s.size = size
	s.layers = make([][][]cube.Color, size.Get(s.orient.Slicing))
	for l := range s.layers {
		s.layers[l] = make([][]cube.Color, size.Get(s.orient.Row))
		for r := range s.layers[l] {
			row := make([]cube.Color, size.Get(s.orient.Column))
			for c := range row {
				row[c] = cube.Null
			}
			s.layers[l][r] = row
		}
	}
}

func (s *Slice) Layers() int  { return s.size.Get(s.orient.Slicing) }
func (s *Slice) Rows() int    { return s.size.Get(s.orient.Row) }
func (s *Slice) Columns() int { return s.size.Get(s.orient.Column) }

// Coord converts a (column, row, layer) position back to cube coordinates.
func (s *Slice) Coord(col, row, layer int) (x, y, z int) {
	var p [3]int
	p[s.orient.Column] = col
	p[s.orient.Row] = row
	p[s.orient.Slicing] = layer
	return p[cube.AxisX], p[cube.AxisY], p[cube.AxisZ]
}

func (s *Slice) locate(x, y, z int) (col, row, layer int, ok bool) {
	if !s.size.PointDefined(x, y, z) {
		return 0, 0, 0, false
	}
	p := [3]int{x, y, z}
	return p[s.orient.Column], p[s.orient.Row], p[s.orient.Slicing], true
}

// Color returns the color shown at (column, row) of a layer.
func (s *Slice) Color(col, row, layer int) cube.Color {
	if layer < 0 || layer >= len(s.layers) || row < 0 || row >= len(s.layers[layer]) ||
		col < 0 || col >= len(s.layers[layer][row]) {
		return cube.Null
	}
	return s.layers[layer][row][col]
}

func (s *Slice) NewColor(x, y, z int, c cube.Color) {
	if col, row, layer, ok := s.locate(x, y, z); ok {
		s.layers[layer][row][col] = c
	}
}

func (s *Slice) EraseColor(x, y, z int) {
	s.NewColor(x, y, z, cube.Null)
}

// Toggle applies a click at (column, row, layer): a LED already showing the
// current color is erased, anything else is painted with it.
func (s *Slice) Toggle(bus *paint.Bus, src paint.ColorSource, col, row, layer int) {
	x, y, z := s.Coord(col, row, layer)
	if !s.size.PointDefined(x, y, z) {
		return
	}
	c := src.CurrentColor()
	if s.Color(col, row, layer).Equal(c) {
		bus.PublishErase(x, y, z)
		return
	}
	bus.PublishNewColor(x, y, z, c)
}
