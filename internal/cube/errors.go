package cube

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("no matching LED")
	ErrSizeMismatch = errors.New("cube size incompatibility")
	ErrDecode       = errors.New("malformed frame line")
)

// CoordinateError is returned when a coordinate falls outside the cube.
type CoordinateError struct {
	X, Y, Z int
	Size    Size
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("no matching LED at (%d,%d,%d) in cube %s", e.X, e.Y, e.Z, e.Size)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// SizeMismatchError is returned when two frames of different sizes meet.
type SizeMismatchError struct {
	Want, Got Size
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("cube size incompatibility: want %s, got %s", e.Want, e.Got)
}

func (e *SizeMismatchError) Is(target error) bool {
	return target == ErrSizeMismatch
}

// DecodeError describes why a frame line could not be decoded.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return "malformed frame line: " + e.Reason
	}
	return fmt.Sprintf("malformed frame line at offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
