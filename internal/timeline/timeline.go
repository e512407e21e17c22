// Package timeline keeps the ordered list of frames of an animation.
package timeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/google/uuid"

	"cubanimate/internal/cube"
)

var (
	ErrLastFrame = errors.New("cannot delete the last frame")
	ErrNoFrame   = errors.New("no such frame")
)

// Entry is one frame of the timeline.
type Entry struct {
	ID      uuid.UUID
	Name    string
	Data    *cube.Frame
	Preview image.Image
}

// Timeline is an ordered list of frames with at most one selected.
type Timeline struct {
	entries  []*Entry
	selected int
}

func New() *Timeline {
	return &Timeline{selected: -1}
}

func frameName(i int) string {
	return fmt.Sprintf("#%d", i+1)
}

// Add appends a blank frame of the given size and selects it.
func (t *Timeline) Add(size cube.Size, preview image.Image) *Entry {
	return t.Append(cube.NewFrame(size), preview)
}

// Append adds an existing frame at the end and selects it. The timeline
// takes ownership of data.
func (t *Timeline) Append(data *cube.Frame, preview image.Image) *Entry {
	e := &Entry{
		ID:      uuid.New(),
		Name:    frameName(len(t.entries)),
		Data:    data,
		Preview: preview,
	}
	t.entries = append(t.entries, e)
	t.selected = len(t.entries) - 1
	return e
}

// DeleteSelected removes the selected frame and selects its neighbor. The
// last remaining frame cannot be deleted.
func (t *Timeline) DeleteSelected() (*Entry, error) {
	if t.selected < 0 {
		return nil, ErrNoFrame
	}
	if len(t.entries) <= 1 {
		return nil, ErrLastFrame
	}
	index := t.selected
	removed := t.entries[index]
	t.entries = append(t.entries[:index], t.entries[index+1:]...)
	t.selected = min(index, len(t.entries)-1)
	t.renumber(index)
	return removed, nil
}

// Clear removes every frame.
func (t *Timeline) Clear() {
	t.entries = nil
	t.selected = -1
}

func (t *Timeline) Select(i int) error {
	if i < 0 || i >= len(t.entries) {
		return fmt.Errorf("%w: index %d of %d", ErrNoFrame, i, len(t.entries))
	}
	t.selected = i
	return nil
}

func (t *Timeline) SelectEntry(e *Entry) error {
	i := t.IndexOf(e.ID)
	if i < 0 {
		return ErrNoFrame
	}
	t.selected = i
	return nil
}

// Selected returns the selected entry, or nil on an empty timeline.
func (t *Timeline) Selected() *Entry {
	if t.selected < 0 {
		return nil
	}
	return t.entries[t.selected]
}

func (t *Timeline) SelectedIndex() int {
	return t.selected
}

func (t *Timeline) Len() int {
	return len(t.entries)
}

func (t *Timeline) At(i int) *Entry {
	if i < 0 || i >= len(t.entries) {
		return nil
	}
	return t.entries[i]
}

// Entries returns the frames in order. The slice must not be modified.
func (t *Timeline) Entries() []*Entry {
	return t.entries
}

// Frames returns the frame data in order.
func (t *Timeline) Frames() []*cube.Frame {
	out := make([]*cube.Frame, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Data
	}
	return out
}

func (t *Timeline) IndexOf(id uuid.UUID) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (t *Timeline) Find(id uuid.UUID) *Entry {
	return t.At(t.IndexOf(id))
}

// Move reorders a frame. The selected entry stays selected.
func (t *Timeline) Move(from, to int) error {
	n := len(t.entries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d of %d", ErrNoFrame, from, to, n)
	}
	if from == to {
		return nil
	}
	sel := t.Selected()
	e := t.entries[from]
	t.entries = append(t.entries[:from], t.entries[from+1:]...)
	t.entries = append(t.entries[:to], append([]*Entry{e}, t.entries[to:]...)...)
	t.renumber(0)
	if sel != nil {
		t.selected = t.IndexOf(sel.ID)
	}
	return nil
}

func (t *Timeline) renumber(from int) {
	for i := from; i < len(t.entries); i++ {
		t.entries[i].Name = frameName(i)
	}
}
