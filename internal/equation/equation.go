// Package equation lights the LEDs that satisfy a boolean expression over
// the cube coordinates.
//
// Variables available to an expression:
//
//	x, y, z     coordinates of the LED
//	t           frame number
//	sx, sy, sz  cube size
//	pi          math.Pi
//
// along with sin, cos, tan, sqrt and the builtins of expr.
package equation

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"cubanimate/internal/cube"
)

// Equation is a compiled expression.
type Equation struct {
	src     string
	program *vm.Program
}

func newEnv() map[string]any {
	return map[string]any{
		"x": 0, "y": 0, "z": 0, "t": 0,
		"sx": 0, "sy": 0, "sz": 0,
		"pi": math.Pi,
	}
}

var mathFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func options(env map[string]any) []expr.Option {
	opts := []expr.Option{expr.Env(env), expr.AsBool()}
	for name, fn := range mathFuncs {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s takes one argument", name)
			}
			v, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return fn(v), nil
		}))
	}
	return opts
}

// Compile parses src. The expression must evaluate to a boolean.
func Compile(src string) (*Equation, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty equation")
	}
	program, err := expr.Compile(src, options(newEnv())...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Equation{src: src, program: program}, nil
}

func (e *Equation) String() string {
	return e.src
}

// Eval reports whether the LED at (x, y, z) is lit at frame t.
func (e *Equation) Eval(size cube.Size, x, y, z, t int) (bool, error) {
	env := newEnv()
	env["sx"], env["sy"], env["sz"] = size.X, size.Y, size.Z
	env["x"], env["y"], env["z"], env["t"] = x, y, z, t
	out, err := expr.Run(e.program, env)
	if err != nil {
		return false, err
	}
	lit, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("equation %q returned %T", e.src, out)
	}
	return lit, nil
}

// Plot paints color on every LED of f where the equation holds at frame t
// and returns how many were lit.
func (e *Equation) Plot(f *cube.Frame, t int, color cube.Color) (int, error) {
	size := f.Size()
	env := newEnv()
	env["sx"], env["sy"], env["sz"] = size.X, size.Y, size.Z
	env["t"] = t
	lit := 0
	for z := 0; z < size.Z; z++ {
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				env["x"], env["y"], env["z"] = x, y, z
				out, err := expr.Run(e.program, env)
				if err != nil {
					return lit, fmt.Errorf("equation %q at (%d,%d,%d): %w", e.src, x, y, z, err)
				}
				if on, _ := out.(bool); on {
					f.SetColorLED(x, y, z, color)
					lit++
				}
			}
		}
	}
	return lit, nil
}

// Frames plots the equation for t = 0..n-1, one blank frame each.
func (e *Equation) Frames(size cube.Size, n int, color cube.Color) ([]*cube.Frame, error) {
	frames := make([]*cube.Frame, 0, max(n, 0))
	for t := 0; t < n; t++ {
		f := cube.NewFrame(size)
		if _, err := e.Plot(f, t, color); err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}
