package animfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubanimate/internal/cube"
)

func TestHeaderRoundTrip(t *testing.T) {
	tests := []Header{
		{Name: "Test", Size: cube.NewSize(2, 2, 2), FPS: 24},
		{Name: "my-cool-anim", Size: cube.NewSize(8, 4, 3), FPS: 1},
		{Name: "", Size: cube.NewSize(1, 1, 1), FPS: 60},
	}
	for _, h := range tests {
		line := FormatHeader(h)
		got, err := ParseHeader(line)
		if err != nil {
			t.Fatalf("ParseHeader(%q): %v", line, err)
		}
		if got != h {
			t.Errorf("ParseHeader(%q) = %+v, want %+v", line, got, h)
		}
	}
}

func TestParseHeaderErrors(t *testing.T) {
	tests := []string{
		"nodashes",
		"name-8,8,8",
		"name-8,8-24",
		"name-a,b,c-24",
		"name-8,8,8-fast",
		"name-8,8,8-0",
		"name-0,8,8-24",
	}
	for _, line := range tests {
		if _, err := ParseHeader(line); !errors.Is(err, ErrBadHeader) {
			t.Errorf("ParseHeader(%q): expected ErrBadHeader, got %v", line, err)
		}
	}
}

func TestWriteRead(t *testing.T) {
	size := cube.NewSize(2, 2, 2)
	a := cube.NewFrame(size)
	a.SetColorLED(0, 0, 0, cube.RGB(255, 0, 0))
	b := cube.NewFrame(size)
	b.SetColorLED(1, 1, 1, cube.RGB(0, 0, 255))
	b.SetColorLED(1, 0, 0, cube.RGB(0, 128, 0))

	h := Header{Name: "Test", Size: size, FPS: 24}
	var buf bytes.Buffer
	if err := Write(&buf, h, []*cube.Frame{a, b}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != "Test-2,2,2-24" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "#ff0000") {
		t.Errorf("first token should be the red LED, got %q", lines[1][:7])
	}

	gotH, frames, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if gotH != h {
		t.Errorf("header %+v, want %+v", gotH, h)
	}
	if len(frames) != 2 || !frames[0].Equal(a) || !frames[1].Equal(b) {
		t.Error("frames did not round trip")
	}
}

func TestReadSkipsNonFrameLinesAndCRLF(t *testing.T) {
	in := "one-1,1,1-5\r\ncomment\r\n\r\n#ff0000\r\n#ffffff\r\n"
	h, frames, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if h.Name != "one" || h.FPS != 5 {
		t.Errorf("header %+v", h)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if !frames[0].At(0, 0, 0).Equal(cube.RGB(255, 0, 0)) {
		t.Error("first frame should be red")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		is   error
	}{
		{"empty", "", 1, ErrBadHeader},
		{"bad header", "x-1,1-24\n#ffffff\n", 1, ErrBadHeader},
		{"short frame", "x-1,1,2-24\n#ffffff\n", 2, cube.ErrDecode},
		{"bad token", "x-1,1,1-24\n#ffffff\n#gg0000\n", 3, cube.ErrDecode},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, frames, err := Read(strings.NewReader(tt.in))
			if frames != nil {
				t.Error("no frames should be returned on error")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line %d, want %d", pe.Line, tt.line)
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
		})
	}

	if _, _, err := Read(strings.NewReader("x-1,1,1-24\nno frames here\n")); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestWriteRejectsMismatchedFrame(t *testing.T) {
	h := Header{Name: "x", Size: cube.NewSize(2, 2, 2), FPS: 1}
	err := Write(&bytes.Buffer{}, h, []*cube.Frame{cube.NewFrame(cube.NewSize(1, 1, 1))})
	if !errors.Is(err, cube.ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
	h.Name = "two\nlines"
	if err := Write(&bytes.Buffer{}, h, nil); !errors.Is(err, ErrBadHeader) {
		t.Errorf("expected ErrBadHeader, got %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.anim")
	f := cube.NewFrame(cube.NewSize(3, 1, 2))
	f.SetColorLED(2, 0, 1, cube.RGB(10, 20, 30))
	h := Header{Name: "saved", Size: f.Size(), FPS: 12}
	if err := Save(path, h, []*cube.Frame{f}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	gotH, frames, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotH != h || len(frames) != 1 || !frames[0].Equal(f) {
		t.Error("saved animation did not load back")
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.anim")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteRejectsNoFrames(t *testing.T) {
	var buf bytes.Buffer
	h := Header{Name: "x", Size: cube.NewSize(2, 2, 2), FPS: 1}
	if err := Write(&buf, h, nil); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected write produced %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "empty.anim")
	if err := Save(path, h, []*cube.Frame{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("rejected save created %s", path)
	}
}

func TestFailedSaveKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.anim")
	f := cube.NewFrame(cube.NewSize(2, 2, 2))
	f.SetColorLED(1, 1, 1, cube.RGB(255, 0, 0))
	h := Header{Name: "keep", Size: f.Size(), FPS: 24}
	if err := Save(path, h, []*cube.Frame{f}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	bad := h
	bad.Name = "bad\nname"
	if err := Save(path, bad, []*cube.Frame{f}); !errors.Is(err, ErrBadHeader) {
		t.Fatalf("expected ErrBadHeader, got %v", err)
	}
	other := cube.NewFrame(cube.NewSize(1, 1, 1))
	if err := Save(path, h, []*cube.Frame{f, other}); !errors.Is(err, cube.ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("file changed after failed saves:\nbefore %q\nafter  %q", before, after)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only keep.anim in %s, found %d entries", dir, len(entries))
	}
}

func TestEnsureExt(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"cube":       "cube.anim",
		"cube.anim":  "cube.anim",
		"cube.ANIM":  "cube.ANIM",
		"cube.v2":    "cube.v2.anim",
		"dir/a.b/cu": "dir/a.b/cu.anim",
	}
	for in, want := range tests {
		if got := EnsureExt(in); got != want {
			t.Errorf("EnsureExt(%q) = %q, want %q", in, got, want)
		}
	}
}
