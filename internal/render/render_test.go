package render

import (
	"bytes"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubanimate/internal/cube"
)

var (
	red  = cube.RGB(255, 0, 0)
	blue = cube.RGB(0, 0, 255)
)

func sameColor(got color.Color, want cube.Color) bool {
	r, g, b, _ := got.RGBA()
	wr, wg, wb, _ := want.RGBA()
	return r == wr && g == wg && b == wb
}

func TestThumbnailShowsTopmostLED(t *testing.T) {
	f := cube.NewFrame(cube.NewSize(2, 2, 3))
	f.SetColorLED(0, 0, 0, blue)
	f.SetColorLED(0, 0, 2, red)
	f.SetColorLED(1, 1, 0, blue)

	img := Thumbnail(f, 4)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds %v", b)
	}
	// y is drawn upwards, so (0,0) is the bottom-left block
	if !sameColor(img.At(1, 6), red) {
		t.Errorf("(0,0) shows %v, want red from the top layer", img.At(1, 6))
	}
	if !sameColor(img.At(5, 1), blue) {
		t.Errorf("(1,1) shows %v, want blue", img.At(5, 1))
	}
	if !sameColor(img.At(5, 6), cube.Null) {
		t.Errorf("empty column shows %v", img.At(5, 6))
	}
}

func TestLayersSize(t *testing.T) {
	f := cube.NewFrame(cube.NewSize(3, 2, 4))
	f.SetColorLED(0, 0, 1, red)
	img := Layers(f, 10)
	// 4 layers of 3 columns plus 3 gaps, 2 rows
	if b := img.Bounds(); b.Dx() != (4*3+3)*10 || b.Dy() != 20 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	// layer 1 starts after 3 columns and a gap; (0,0) is the bottom row
	if !sameColor(img.At(45, 15), red) {
		t.Errorf("got %v, want red", img.At(45, 15))
	}
}

func TestSheetPNG(t *testing.T) {
	f := cube.NewFrame(cube.NewSize(2, 2, 2))
	f.SetColorLED(1, 1, 1, red)
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := SheetPNG(path, f, "Test #1"); err != nil {
		t.Fatalf("SheetPNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("no image written: %v", err)
	}
	if _, err := Sheet(cube.NewFrame(cube.NewSize(0, 1, 1)), ""); err == nil {
		t.Error("an empty cube should not export")
	}
}

func TestWriteGIF(t *testing.T) {
	size := cube.NewSize(2, 2, 2)
	var frames []*cube.Frame
	for i := 0; i < 5; i++ {
		f := cube.NewFrame(size)
		f.SetColorLED(i%2, 0, 0, red)
		frames = append(frames, f)
	}
	var buf bytes.Buffer
	if err := WriteGIF(&buf, frames, 25); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 5 {
		t.Errorf("got %d images, want 5", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 4 {
			t.Errorf("frame %d delay %d, want 4", i, d)
		}
	}
	if err := WriteGIF(&buf, nil, 25); err == nil {
		t.Error("expected an error for no frames")
	}
}

func TestDelay(t *testing.T) {
	tests := map[int]int{0: 100, 1: 100, 24: 4, 100: 1, 500: 1}
	for fps, want := range tests {
		if got := Delay(fps); got != want {
			t.Errorf("Delay(%d) = %d, want %d", fps, got, want)
		}
	}
}

func TestText(t *testing.T) {
	f := cube.NewFrame(cube.NewSize(2, 2, 1))
	f.SetColorLED(1, 1, 0, red)
	var sb strings.Builder
	if err := Text(&sb, f); err != nil {
		t.Fatal(err)
	}
	want := "z=0\n....... #ff0000\n....... .......\n"
	if sb.String() != want {
		t.Errorf("got\n%s\nwant\n%s", sb.String(), want)
	}
}
