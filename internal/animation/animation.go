// Package animation is the editing session of one LED-cube animation. It owns
// the timeline, the paint bus, and the views subscribed to it, and keeps
// exactly one frame bound to the bus while frames exist.
package animation

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"cubanimate/internal/animfile"
	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
	"cubanimate/internal/timeline"
	"cubanimate/internal/view"
)

var (
	ErrLastFrame = timeline.ErrLastFrame
	ErrNoFrames  = errors.New("animation has no frames")
	ErrBadFPS    = errors.New("frame rate must be positive")
	ErrBadSize   = errors.New("cube size must be at least 1 on every axis")
)

// Previewer renders the small image shown next to a frame in the timeline.
type Previewer func(g cube.Grid) image.Image

type Option func(*Animation)

func WithPreviewer(p Previewer) Option {
	return func(a *Animation) { a.previewer = p }
}

func WithLogger(l *log.Logger) Option {
	return func(a *Animation) {
		if l != nil {
			a.log = l
		}
	}
}

type viewSub struct {
	view   view.View
	handle paint.Handle
}

type Animation struct {
	name string
	size cube.Size
	fps  int
	path string

	timeline *timeline.Timeline
	bus      *paint.Bus
	binding  *paint.Binding
	display  *view.Display
	views    []viewSub

	saved   bool
	syncing bool

	undoStack []Action
	redoStack []Action

	previewer Previewer
	log       *log.Logger
}

// New returns an empty session. Call Create or Load before painting.
func New(opts ...Option) *Animation {
	a := &Animation{
		timeline: timeline.New(),
		bus:      paint.NewBus(),
		saved:    true,
		log:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.display = view.NewDisplay(a.size)
	a.bus.Subscribe(a.display)
	a.bus.Subscribe(paint.Funcs{
		OnNewColor:   func(int, int, int, cube.Color) { a.touch() },
		OnEraseColor: func(int, int, int) { a.touch() },
	})
	a.binding = paint.NewBinding(a.bus, a.log)
	return a
}

// touch marks the animation dirty unless the paint came from a frame switch.
func (a *Animation) touch() {
	if !a.syncing {
		a.saved = false
	}
}

// Create starts a fresh animation with one blank frame.
func (a *Animation) Create(name string, size cube.Size, fps int) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %s", ErrBadSize, size)
	}
	if fps <= 0 {
		return fmt.Errorf("%w: %d", ErrBadFPS, fps)
	}
	a.ClearAllFrames()
	a.name = name
	a.fps = fps
	a.path = ""
	a.size = size
	a.resizeViews()
	if _, err := a.AddFrame(); err != nil {
		return err
	}
	a.saved = true
	return nil
}

// AddView subscribes v to the bus and replays what is currently shown.
func (a *Animation) AddView(v view.View) {
	v.Resize(a.size)
	for z := 0; z < a.size.Z; z++ {
		for y := 0; y < a.size.Y; y++ {
			for x := 0; x < a.size.X; x++ {
				if c := a.display.DisplayedColor(x, y, z); !c.IsNull() {
					v.NewColor(x, y, z, c)
				}
			}
		}
	}
	a.views = append(a.views, viewSub{view: v, handle: a.bus.Subscribe(v)})
}

func (a *Animation) RemoveView(v view.View) bool {
	for i, s := range a.views {
		if s.view == v {
			a.bus.Unsubscribe(s.handle)
			a.views = append(a.views[:i], a.views[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Animation) resizeViews() {
	a.display.Resize(a.size)
	for _, s := range a.views {
		s.view.Resize(a.size)
	}
}

func (a *Animation) preview(g cube.Grid) image.Image {
	if a.previewer == nil {
		return nil
	}
	return a.previewer(g)
}

// AddFrame appends a blank frame and makes it the edited one.
func (a *Animation) AddFrame() (*timeline.Entry, error) {
	if !a.size.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadSize, a.size)
	}
	prev := a.timeline.Selected()
	e := a.timeline.Add(a.size, a.preview(cube.NewFrame(a.size)))
	if _, err := a.switchFrame(prev, e); err != nil {
		return nil, err
	}
	a.saved = false
	return e, nil
}

// DeleteSelectedFrame removes the edited frame and moves to its neighbor.
func (a *Animation) DeleteSelectedFrame() error {
	removed, err := a.timeline.DeleteSelected()
	if err != nil {
		return err
	}
	if a.binding.Frame() == removed.Data {
		a.binding.Release()
	}
	if _, err := a.switchFrame(nil, a.timeline.Selected()); err != nil {
		return err
	}
	a.saved = false
	return nil
}

// ClearAllFrames empties the timeline and blanks the views.
func (a *Animation) ClearAllFrames() {
	a.binding.Release()
	a.timeline.Clear()
	a.resizeViews()
	a.clearHistory()
}

// ChangeFrame makes frame i the edited frame. Only LEDs whose displayed
// color differs from frame i are repainted; the count is returned.
func (a *Animation) ChangeFrame(i int) (int, error) {
	next := a.timeline.At(i)
	if next == nil {
		return 0, fmt.Errorf("%w: %d", timeline.ErrNoFrame, i)
	}
	return a.switchFrame(a.timeline.Selected(), next)
}

// MoveFrame reorders the timeline. The edited frame stays the same, so the
// views are not repainted.
func (a *Animation) MoveFrame(from, to int) error {
	if err := a.timeline.Move(from, to); err != nil {
		return err
	}
	if from != to {
		a.saved = false
	}
	return nil
}

func (a *Animation) switchFrame(prev, next *timeline.Entry) (int, error) {
	if next == nil {
		return 0, ErrNoFrames
	}
	if !next.Data.Size().Equal(a.size) {
		err := &cube.SizeMismatchError{Want: a.size, Got: next.Data.Size()}
		a.log.Printf("change frame %s: %v", next.Name, err)
		return 0, err
	}
	if prev != nil && prev != next && a.binding.Frame() == prev.Data {
		prev.Preview = a.preview(prev.Data)
	}
	a.binding.Release()
	emitted := a.sync(next.Data)
	a.binding.Bind(next.Data)
	if err := a.timeline.SelectEntry(next); err != nil {
		return emitted, err
	}
	return emitted, nil
}

// sync repaints the views with f. The frame is not bound while this runs.
func (a *Animation) sync(f *cube.Frame) int {
	a.syncing = true
	defer func() { a.syncing = false }()
	emitted := 0
	for z := 0; z < a.size.Z; z++ {
		for y := 0; y < a.size.Y; y++ {
			for x := 0; x < a.size.X; x++ {
				c := f.At(x, y, z)
				if a.display.DisplayedColor(x, y, z).Equal(c) {
					continue
				}
				a.bus.PublishNewColor(x, y, z, c)
				emitted++
			}
		}
	}
	return emitted
}

// Save writes the animation to path. An empty path means the user
// cancelled and is not an error.
func (a *Animation) Save(path string) error {
	if path == "" {
		return nil
	}
	if a.timeline.Len() == 0 {
		return ErrNoFrames
	}
	h := animfile.Header{Name: a.name, Size: a.size, FPS: a.fps}
	if err := animfile.Save(path, h, a.timeline.Frames()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	a.path = path
	a.saved = true
	return nil
}

// Load replaces the session with the animation stored at path. The file is
// parsed completely first; on error the session is left as it was.
func (a *Animation) Load(path string) error {
	h, frames, err := animfile.Load(path)
	if err != nil {
		a.log.Printf("load: %v", err)
		return err
	}
	a.ClearAllFrames()
	a.name = h.Name
	a.fps = h.FPS
	a.size = h.Size
	a.resizeViews()
	for _, f := range frames {
		a.timeline.Append(f, a.preview(f))
	}
	if _, err := a.switchFrame(nil, a.timeline.At(0)); err != nil {
		return err
	}
	a.path = path
	a.saved = true
	return nil
}

// ReplaceFrames swaps the whole timeline for frames, which must all match
// the cube size.
func (a *Animation) ReplaceFrames(frames []*cube.Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	for _, f := range frames {
		if !f.Size().Equal(a.size) {
			return &cube.SizeMismatchError{Want: a.size, Got: f.Size()}
		}
	}
	a.binding.Release()
	a.timeline.Clear()
	a.clearHistory()
	for _, f := range frames {
		a.timeline.Append(f, a.preview(f))
	}
	if _, err := a.switchFrame(nil, a.timeline.At(0)); err != nil {
		return err
	}
	a.saved = false
	return nil
}

// Resize changes the cube size of every frame, keeping the LEDs both sizes
// share. Undo history is dropped.
func (a *Animation) Resize(size cube.Size) error {
	if !size.Valid() {
		return fmt.Errorf("%w: %s", ErrBadSize, size)
	}
	if size.Equal(a.size) {
		return nil
	}
	a.binding.Release()
	for _, e := range a.timeline.Entries() {
		e.Data = e.Data.Resized(size)
		e.Preview = a.preview(e.Data)
	}
	a.size = size
	a.resizeViews()
	a.clearHistory()
	a.saved = false
	if sel := a.timeline.Selected(); sel != nil {
		if _, err := a.switchFrame(nil, sel); err != nil {
			return err
		}
	}
	return nil
}

func (a *Animation) SetFPS(fps int) error {
	if fps <= 0 {
		return fmt.Errorf("%w: %d", ErrBadFPS, fps)
	}
	if fps != a.fps {
		a.fps = fps
		a.saved = false
	}
	return nil
}

func (a *Animation) SetName(name string) {
	if name != a.name {
		a.name = name
		a.saved = false
	}
}

func (a *Animation) Name() string                 { return a.name }
func (a *Animation) Size() cube.Size              { return a.size }
func (a *Animation) FPS() int                     { return a.fps }
func (a *Animation) Path() string                 { return a.path }
func (a *Animation) Saved() bool                  { return a.saved }
func (a *Animation) Timeline() *timeline.Timeline { return a.timeline }
func (a *Animation) Bus() *paint.Bus              { return a.bus }
func (a *Animation) Display() *view.Display       { return a.display }

// Selected returns the edited frame, or nil before Create or Load.
func (a *Animation) Selected() *timeline.Entry {
	return a.timeline.Selected()
}

// RefreshPreview re-renders the preview of the edited frame.
func (a *Animation) RefreshPreview() {
	if sel := a.timeline.Selected(); sel != nil {
		sel.Preview = a.preview(sel.Data)
	}
}
