package cube

import (
	"fmt"
	"strconv"
	"strings"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

// ParseAxis accepts "x", "y" or "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Size is the number of LEDs along each axis of the cube.
type Size struct {
	X, Y, Z int
}

// NewSize builds a Size, clamping negative extents to zero.
func NewSize(x, y, z int) Size {
	return Size{X: max(0, x), Y: max(0, y), Z: max(0, z)}
}

func (s Size) Get(axis Axis) int {
	switch axis {
	case AxisX:
		return s.X
	case AxisY:
		return s.Y
	case AxisZ:
		return s.Z
	}
	return 0
}

// With returns a copy of s with the extent along axis replaced.
func (s Size) With(axis Axis, n int) Size {
	n = max(0, n)
	switch axis {
	case AxisX:
		s.X = n
	case AxisY:
		s.Y = n
	case AxisZ:
		s.Z = n
	}
	return s
}

// PointDefined reports whether (x, y, z) addresses an LED of the cube.
func (s Size) PointDefined(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < s.X && y < s.Y && z < s.Z
}

// Total is the number of LEDs in the cube.
func (s Size) Total() int {
	return s.X * s.Y * s.Z
}

func (s Size) Max() int {
	return max(s.X, s.Y, s.Z)
}

// Valid reports whether every extent holds at least one LED.
func (s Size) Valid() bool {
	return s.X > 0 && s.Y > 0 && s.Z > 0
}

func (s Size) Equal(o Size) bool {
	return s == o
}

func (s Size) String() string {
	return fmt.Sprintf("%d,%d,%d", s.X, s.Y, s.Z)
}

// ParseSize reads the "x,y,z" form written by String.
func ParseSize(s string) (Size, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Size{}, fmt.Errorf("invalid cube size %q: want x,y,z", s)
	}
	var dims [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Size{}, fmt.Errorf("invalid cube size %q: %w", s, err)
		}
		if n < 0 {
			return Size{}, fmt.Errorf("invalid cube size %q: negative extent", s)
		}
		dims[i] = n
	}
	return Size{X: dims[0], Y: dims[1], Z: dims[2]}, nil
}

// index maps a defined point to its cell offset. Cells are laid out z-major
// (x varies fastest), which is also the order of the encoded frame line.
func (s Size) index(x, y, z int) int {
	return x + s.X*(y+s.Y*z)
}
