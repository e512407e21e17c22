package equation

import (
	"testing"

	"cubanimate/internal/cube"
)

var red = cube.RGB(255, 0, 0)

func TestCompileErrors(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"x +",
		"x + y",
		"unknown == 1",
	}
	for _, src := range tests {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) should fail", src)
		}
	}
}

func TestPlot(t *testing.T) {
	size := cube.NewSize(4, 4, 4)
	tests := []struct {
		src  string
		want int
	}{
		{"true", 64},
		{"false", 0},
		{"z == 0", 16},
		{"x == y && y == z", 4},
		{"x == sx - 1", 16},
		{"(x - 1.5) ** 2 + (y - 1.5) ** 2 <= 1", 16},
		{"sin(x) > 0", 48},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.src, func(t *testing.T) {
			eq, err := Compile(tt.src)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			f := cube.NewFrame(size)
			lit, err := eq.Plot(f, 0, red)
			if err != nil {
				t.Fatalf("Plot: %v", err)
			}
			if lit != tt.want || f.Lit() != tt.want {
				t.Errorf("lit %d (frame %d), want %d", lit, f.Lit(), tt.want)
			}
		})
	}
}

func TestFramesUseT(t *testing.T) {
	eq, err := Compile("z == t % sz")
	if err != nil {
		t.Fatal(err)
	}
	frames, err := eq.Frames(cube.NewSize(2, 2, 3), 4, red)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 4 {
		t.Fatalf("got %d frames", len(frames))
	}
	for i, f := range frames {
		z := i % 3
		if !f.At(0, 0, z).Equal(red) || f.Lit() != 4 {
			t.Errorf("frame %d: layer %d not lit alone", i, z)
		}
	}
}

func TestEval(t *testing.T) {
	eq, err := Compile("x + y + z == t")
	if err != nil {
		t.Fatal(err)
	}
	on, err := eq.Eval(cube.NewSize(3, 3, 3), 1, 1, 1, 3)
	if err != nil || !on {
		t.Errorf("Eval = %v, %v", on, err)
	}
	if eq.String() != "x + y + z == t" {
		t.Errorf("String() = %q", eq.String())
	}
}
