package cube

import (
	"fmt"
	"strings"
)

// Grid is anything that can report the color of each LED of a cube.
type Grid interface {
	Size() Size
	At(x, y, z int) Color
}

// Frame holds the color of every LED of the cube for one animation step.
// Frames never share cells; Clone makes a full copy.
type Frame struct {
	size  Size
	cells []Color
}

func NewFrame(size Size) *Frame {
	f := &Frame{size: size, cells: make([]Color, size.Total())}
	f.Fill(Null)
	return f
}

func (f *Frame) Size() Size {
	return f.size
}

func (f *Frame) SizeAxis(axis Axis) int {
	return f.size.Get(axis)
}

func (f *Frame) outOfBounds(x, y, z int) error {
	return &CoordinateError{X: x, Y: y, Z: z, Size: f.size}
}

// SetColorLED paints one LED. Undefined coordinates leave the frame
// untouched and return a *CoordinateError.
func (f *Frame) SetColorLED(x, y, z int, c Color) error {
	if !f.size.PointDefined(x, y, z) {
		return f.outOfBounds(x, y, z)
	}
	f.cells[f.size.index(x, y, z)] = c
	return nil
}

// EraseColorLED resets one LED to Null.
func (f *Frame) EraseColorLED(x, y, z int) error {
	return f.SetColorLED(x, y, z, Null)
}

// GetColorLED returns Null together with a *CoordinateError for undefined
// coordinates.
func (f *Frame) GetColorLED(x, y, z int) (Color, error) {
	if !f.size.PointDefined(x, y, z) {
		return Null, f.outOfBounds(x, y, z)
	}
	return f.cells[f.size.index(x, y, z)], nil
}

func (f *Frame) GetColorLEDHex(x, y, z int) (string, error) {
	c, err := f.GetColorLED(x, y, z)
	return c.Hex(), err
}

// At is the lenient read used by views and exporters.
func (f *Frame) At(x, y, z int) Color {
	c, _ := f.GetColorLED(x, y, z)
	return c
}

func (f *Frame) Fill(c Color) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Lit counts the LEDs that are not Null.
func (f *Frame) Lit() int {
	n := 0
	for _, c := range f.cells {
		if !c.IsNull() {
			n++
		}
	}
	return n
}

func (f *Frame) Clone() *Frame {
	cells := make([]Color, len(f.cells))
	copy(cells, f.cells)
	return &Frame{size: f.size, cells: cells}
}

// CopyFrom overwrites every cell of f with the cells of src.
func (f *Frame) CopyFrom(src *Frame) error {
	if !f.size.Equal(src.size) {
		return &SizeMismatchError{Want: f.size, Got: src.size}
	}
	copy(f.cells, src.cells)
	return nil
}

// Resized returns a new frame of the given size holding the cells both
// sizes have in common.
func (f *Frame) Resized(size Size) *Frame {
	out := NewFrame(size)
	for z := 0; z < min(size.Z, f.size.Z); z++ {
		for y := 0; y < min(size.Y, f.size.Y); y++ {
			for x := 0; x < min(size.X, f.size.X); x++ {
				out.cells[size.index(x, y, z)] = f.cells[f.size.index(x, y, z)]
			}
		}
	}
	return out
}

// Equal reports whether both frames have the same size and colors.
func (f *Frame) Equal(o *Frame) bool {
	if !f.size.Equal(o.size) {
		return false
	}
	for i := range f.cells {
		if !f.cells[i].Equal(o.cells[i]) {
			return false
		}
	}
	return true
}

// Encode writes every LED as a "#rrggbb" token, z outermost and x
// innermost, with no separators. This is the frame line of an .anim file.
func (f *Frame) Encode() string {
	var sb strings.Builder
	sb.Grow(len(f.cells) * HexLen)
	for z := 0; z < f.size.Z; z++ {
		for y := 0; y < f.size.Y; y++ {
			for x := 0; x < f.size.X; x++ {
				sb.WriteString(f.cells[f.size.index(x, y, z)].Hex())
			}
		}
	}
	return sb.String()
}

// Decode is the inverse of Encode. The line must hold exactly one token per
// LED; on error the frame is left unchanged.
func (f *Frame) Decode(line string) error {
	want := f.size.Total() * HexLen
	if len(line) != want {
		return &DecodeError{Offset: -1, Reason: fmt.Sprintf("got %d characters, want %d for cube %s", len(line), want, f.size)}
	}
	cells := make([]Color, len(f.cells))
	for z := 0; z < f.size.Z; z++ {
		for y := 0; y < f.size.Y; y++ {
			for x := 0; x < f.size.X; x++ {
				i := f.size.index(x, y, z)
				off := i * HexLen
				c, err := ParseHex(line[off : off+HexLen])
				if err != nil {
					return &DecodeError{Offset: off, Reason: err.Error()}
				}
				cells[i] = c
			}
		}
	}
	f.cells = cells
	return nil
}
