package view

import (
	"testing"

	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
)

type fixedColor cube.Color

func (f fixedColor) CurrentColor() cube.Color { return cube.Color(f) }

func TestSliceCoordRoundTrip(t *testing.T) {
	size := cube.NewSize(2, 3, 4)
	for _, o := range Orientations {
		s := NewSlice(o, size)
		if s.Columns()*s.Rows()*s.Layers() != size.Total() {
			t.Fatalf("%s: slice does not cover the cube", o.Name)
		}
		for l := 0; l < s.Layers(); l++ {
			for r := 0; r < s.Rows(); r++ {
				for c := 0; c < s.Columns(); c++ {
					x, y, z := s.Coord(c, r, l)
					if !size.PointDefined(x, y, z) {
						t.Fatalf("%s: (%d,%d,%d) maps outside the cube", o.Name, c, r, l)
					}
					gc, gr, gl, ok := s.locate(x, y, z)
					if !ok || gc != c || gr != r || gl != l {
						t.Fatalf("%s: locate(Coord(%d,%d,%d)) = %d,%d,%d", o.Name, c, r, l, gc, gr, gl)
					}
				}
			}
		}
	}
}

func TestViewsFollowTheBus(t *testing.T) {
	size := cube.NewSize(3, 3, 3)
	bus := paint.NewBus()
	d := NewDisplay(size)
	bottom := NewSlice(BottomToTop, size)
	left := NewSlice(LeftToRight, size)
	bus.Subscribe(d)
	bus.Subscribe(bottom)
	bus.Subscribe(left)

	red := cube.RGB(255, 0, 0)
	bus.PublishNewColor(1, 2, 0, red)

	if !d.DisplayedColor(1, 2, 0).Equal(red) {
		t.Error("display missed the paint")
	}
	if !bottom.Color(1, 2, 0).Equal(red) {
		t.Error("bottom-to-top slice missed the paint")
	}
	// left-to-right: column z, row x, layer y
	if !left.Color(0, 1, 2).Equal(red) {
		t.Error("left-to-right slice missed the paint")
	}

	bus.PublishErase(1, 2, 0)
	if !d.DisplayedColor(1, 2, 0).IsNull() || !bottom.Color(1, 2, 0).IsNull() {
		t.Error("erase not applied")
	}

	// out of range is ignored by every view
	bus.PublishNewColor(9, 9, 9, red)
	if d.Snapshot().Lit() != 0 {
		t.Error("display changed on out-of-range paint")
	}
}

func TestSliceToggle(t *testing.T) {
	size := cube.NewSize(2, 2, 2)
	bus := paint.NewBus()
	s := NewSlice(BottomToTop, size)
	bus.Subscribe(s)
	red := fixedColor(cube.RGB(255, 0, 0))

	s.Toggle(bus, red, 1, 1, 1)
	if !s.Color(1, 1, 1).Equal(cube.Color(red)) {
		t.Fatal("first click should paint")
	}
	s.Toggle(bus, red, 1, 1, 1)
	if !s.Color(1, 1, 1).IsNull() {
		t.Fatal("second click with the same color should erase")
	}
	s.Toggle(bus, red, 5, 0, 0)
	if s.Color(5, 0, 0) != cube.Null {
		t.Error("click outside the cube should do nothing")
	}
}

func TestResizeBlanks(t *testing.T) {
	d := NewDisplay(cube.NewSize(1, 1, 1))
	d.NewColor(0, 0, 0, cube.RGB(1, 1, 1))
	d.Resize(cube.NewSize(2, 2, 2))
	if d.Size() != cube.NewSize(2, 2, 2) || d.Snapshot().Lit() != 0 {
		t.Error("Resize should produce a blank display of the new size")
	}
}
