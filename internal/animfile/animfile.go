// Package animfile reads and writes .anim files: a header line
// "<name>-<x>,<y>,<z>-<fps>" followed by one encoded line per frame.
package animfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cubanimate/internal/cube"
)

// Ext is the extension of animation files.
const Ext = ".anim"

var (
	ErrNoFrames  = errors.New("animation has no frames")
	ErrBadHeader = errors.New("malformed animation header")
)

// Header is the first line of an animation file.
type Header struct {
	Name string
	Size cube.Size
	FPS  int
}

// ParseError reports a failure on a given line of an animation file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func FormatHeader(h Header) string {
	return fmt.Sprintf("%s-%s-%d", h.Name, h.Size, h.FPS)
}

// ParseHeader splits on the last two dashes so the name itself may
// contain dashes.
func ParseHeader(line string) (Header, error) {
	line = strings.TrimRight(line, "\r\n")
	fpsAt := strings.LastIndex(line, "-")
	if fpsAt < 0 {
		return Header{}, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	sizeAt := strings.LastIndex(line[:fpsAt], "-")
	if sizeAt < 0 {
		return Header{}, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	size, err := cube.ParseSize(line[sizeAt+1 : fpsAt])
	if err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if !size.Valid() {
		return Header{}, fmt.Errorf("%w: empty cube %s", ErrBadHeader, size)
	}
	fps, err := strconv.Atoi(strings.TrimSpace(line[fpsAt+1:]))
	if err != nil || fps <= 0 {
		return Header{}, fmt.Errorf("%w: invalid fps %q", ErrBadHeader, line[fpsAt+1:])
	}
	return Header{Name: line[:sizeAt], Size: size, FPS: fps}, nil
}

func validate(h Header, frames []*cube.Frame) error {
	if strings.ContainsAny(h.Name, "\r\n") {
		return fmt.Errorf("%w: name contains a line break", ErrBadHeader)
	}
	if len(frames) == 0 {
		return ErrNoFrames
	}
	for i, f := range frames {
		if !f.Size().Equal(h.Size) {
			return fmt.Errorf("frame %d: %w", i+1, &cube.SizeMismatchError{Want: h.Size, Got: f.Size()})
		}
	}
	return nil
}

// Write emits the header and one line per frame. Nothing is written when
// the header or any frame is rejected.
func Write(w io.Writer, h Header, frames []*cube.Frame) error {
	if err := validate(h, frames); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, FormatHeader(h)); err != nil {
		return err
	}
	for _, f := range frames {
		if _, err := fmt.Fprintln(bw, f.Encode()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a whole animation. Lines after the header that do not start
// with '#' are skipped; a frame line that does not decode fails the read.
func Read(r io.Reader) (Header, []*cube.Frame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Header{}, nil, err
		}
		return Header{}, nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: empty file", ErrBadHeader)}
	}
	h, err := ParseHeader(scanner.Text())
	if err != nil {
		return Header{}, nil, &ParseError{Line: 1, Err: err}
	}

	var frames []*cube.Frame
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, "#") {
			continue
		}
		f := cube.NewFrame(h.Size)
		if err := f.Decode(line); err != nil {
			return Header{}, nil, &ParseError{Line: lineNum, Err: err}
		}
		frames = append(frames, f)
	}
	if err := scanner.Err(); err != nil {
		return Header{}, nil, err
	}
	if len(frames) == 0 {
		return Header{}, nil, ErrNoFrames
	}
	return h, frames, nil
}

// Save writes to a temporary file next to path and renames it over path, so
// a failed save leaves any existing file untouched.
func Save(path string, h Header, frames []*cube.Frame) error {
	if err := validate(h, frames); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if err := Write(tmp, h, frames); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

func Load(path string) (Header, []*cube.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer file.Close()
	h, frames, err := Read(file)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return h, frames, nil
}

// EnsureExt appends .anim unless path already ends with it.
func EnsureExt(path string) string {
	if path == "" || strings.HasSuffix(strings.ToLower(path), Ext) {
		return path
	}
	return path + Ext
}
