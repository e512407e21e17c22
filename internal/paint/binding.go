package paint

import (
	"io"
	"log"

	"cubanimate/internal/cube"
)

// frameSink writes paint events into a frame.
type frameSink struct {
	frame *cube.Frame
	log   *log.Logger
}

func (s frameSink) NewColor(x, y, z int, c cube.Color) {
	if err := s.frame.SetColorLED(x, y, z, c); err != nil {
		s.log.Printf("paint: %v", err)
	}
}

func (s frameSink) EraseColor(x, y, z int) {
	if err := s.frame.EraseColorLED(x, y, z); err != nil {
		s.log.Printf("paint: %v", err)
	}
}

// Binding keeps at most one frame subscribed to a bus. Bind swaps the
// subscribed frame in a single call so the bus never carries two frames.
type Binding struct {
	bus    *Bus
	log    *log.Logger
	frame  *cube.Frame
	handle Handle
}

func NewBinding(bus *Bus, logger *log.Logger) *Binding {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Binding{bus: bus, log: logger}
}

// Bind unsubscribes the current frame, if any, and subscribes f.
func (b *Binding) Bind(f *cube.Frame) {
	b.Release()
	if f == nil {
		return
	}
	b.frame = f
	b.handle = b.bus.Subscribe(frameSink{frame: f, log: b.log})
}

// Release unsubscribes the current frame.
func (b *Binding) Release() {
	if b.frame == nil {
		return
	}
	b.bus.Unsubscribe(b.handle)
	b.frame = nil
	b.handle = 0
}

// Frame returns the bound frame, or nil.
func (b *Binding) Frame() *cube.Frame {
	return b.frame
}

func (b *Binding) Bound() bool {
	return b.frame != nil
}
