package animation

import (
	"fmt"

	"github.com/google/uuid"

	"cubanimate/internal/cube"
	"cubanimate/internal/paint"
)

type ActionType int

const (
	ActionPaint ActionType = iota
	ActionErase
	ActionPaste
	ActionFill
)

var actionNames = [...]string{"paint", "erase", "paste", "fill"}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(t))
	}
	return actionNames[t]
}

// CellChange is one LED before and after an action.
type CellChange struct {
	X, Y, Z  int
	Old, New cube.Color
}

// Action is an undoable edit of a single frame.
type Action struct {
	Type  ActionType
	Frame uuid.UUID
	Cells []CellChange
}

func (a *Animation) clearHistory() {
	a.undoStack = nil
	a.redoStack = nil
}

func (a *Animation) CanUndo() bool { return len(a.undoStack) > 0 }
func (a *Animation) CanRedo() bool { return len(a.redoStack) > 0 }

func (a *Animation) record(action Action) {
	if len(action.Cells) == 0 {
		return
	}
	a.undoStack = append(a.undoStack, action)
	a.redoStack = nil
}

// publish sends c for one LED, as an erase when c is Null.
func (a *Animation) publish(x, y, z int, c cube.Color) {
	if c.IsNull() {
		a.bus.PublishErase(x, y, z)
		return
	}
	a.bus.PublishNewColor(x, y, z, c)
}

// edit applies target to the edited frame through the bus and records the
// LEDs that actually changed.
func (a *Animation) edit(typ ActionType, target *cube.Frame) (int, error) {
	sel := a.timeline.Selected()
	if sel == nil {
		return 0, ErrNoFrames
	}
	if !target.Size().Equal(a.size) {
		return 0, &cube.SizeMismatchError{Want: a.size, Got: target.Size()}
	}
	action := Action{Type: typ, Frame: sel.ID}
	for z := 0; z < a.size.Z; z++ {
		for y := 0; y < a.size.Y; y++ {
			for x := 0; x < a.size.X; x++ {
				old, c := sel.Data.At(x, y, z), target.At(x, y, z)
				if old.Equal(c) {
					continue
				}
				action.Cells = append(action.Cells, CellChange{X: x, Y: y, Z: z, Old: old, New: c})
				a.publish(x, y, z, c)
			}
		}
	}
	a.record(action)
	return len(action.Cells), nil
}

// Paint sets one LED of the edited frame.
func (a *Animation) Paint(x, y, z int, c cube.Color) error {
	return a.paintCell(ActionPaint, x, y, z, c)
}

// Erase resets one LED of the edited frame to Null.
func (a *Animation) Erase(x, y, z int) error {
	return a.paintCell(ActionErase, x, y, z, cube.Null)
}

func (a *Animation) paintCell(typ ActionType, x, y, z int, c cube.Color) error {
	sel := a.timeline.Selected()
	if sel == nil {
		return ErrNoFrames
	}
	old, err := sel.Data.GetColorLED(x, y, z)
	if err != nil {
		a.log.Printf("%s: %v", typ, err)
		return err
	}
	if typ == ActionErase {
		a.bus.PublishErase(x, y, z)
	} else {
		a.bus.PublishNewColor(x, y, z, c)
	}
	if !old.Equal(c) {
		a.record(Action{Type: typ, Frame: sel.ID, Cells: []CellChange{{X: x, Y: y, Z: z, Old: old, New: c}}})
	}
	return nil
}

// Toggle erases the LED when it already shows the current color of src and
// paints it otherwise.
func (a *Animation) Toggle(src paint.ColorSource, x, y, z int) error {
	c := src.CurrentColor()
	if a.display.DisplayedColor(x, y, z).Equal(c) && a.size.PointDefined(x, y, z) {
		return a.Erase(x, y, z)
	}
	return a.Paint(x, y, z, c)
}

// Fill paints every LED of the edited frame with c.
func (a *Animation) Fill(c cube.Color) (int, error) {
	target := cube.NewFrame(a.size)
	target.Fill(c)
	return a.edit(ActionFill, target)
}

// FillLayer paints every LED whose coordinate along axis equals layer.
func (a *Animation) FillLayer(axis cube.Axis, layer int, c cube.Color) (int, error) {
	sel := a.timeline.Selected()
	if sel == nil {
		return 0, ErrNoFrames
	}
	if layer < 0 || layer >= a.size.Get(axis) {
		return 0, fmt.Errorf("%w: layer %d along %s", cube.ErrOutOfBounds, layer, axis)
	}
	target := sel.Data.Clone()
	for z := 0; z < a.size.Z; z++ {
		for y := 0; y < a.size.Y; y++ {
			for x := 0; x < a.size.X; x++ {
				if [3]int{x, y, z}[axis] == layer {
					target.SetColorLED(x, y, z, c)
				}
			}
		}
	}
	return a.edit(ActionFill, target)
}

// Apply replaces the edited frame with target as one undoable fill. Used by
// the generators.
func (a *Animation) Apply(target *cube.Frame) (int, error) {
	return a.edit(ActionFill, target)
}

// PasteFrame replaces the edited frame with an encoded frame line.
func (a *Animation) PasteFrame(line string) (int, error) {
	target := cube.NewFrame(a.size)
	if err := target.Decode(line); err != nil {
		return 0, err
	}
	return a.edit(ActionPaste, target)
}

// Undo reverts the last action and reports its type. Actions on frames
// that have since been deleted are dropped; ok is false when nothing was left
// to revert.
func (a *Animation) Undo() (ActionType, bool) {
	return a.step(&a.undoStack, &a.redoStack, func(c CellChange) cube.Color { return c.Old })
}

func (a *Animation) Redo() (ActionType, bool) {
	return a.step(&a.redoStack, &a.undoStack, func(c CellChange) cube.Color { return c.New })
}

// step pops actions from one stack until one applies, then pushes it on the
// other.
func (a *Animation) step(from, to *[]Action, pick func(CellChange) cube.Color) (ActionType, bool) {
	for len(*from) > 0 {
		last := len(*from) - 1
		action := (*from)[last]
		*from = (*from)[:last]

		if !a.apply(action, pick) {
			continue
		}
		*to = append(*to, action)
		return action.Type, true
	}
	return 0, false
}

// apply writes the edited frame through the bus so every view follows;
// other frames are written directly.
func (a *Animation) apply(action Action, pick func(CellChange) cube.Color) bool {
	e := a.timeline.Find(action.Frame)
	if e == nil {
		a.log.Printf("%s: frame %s no longer exists, dropped", action.Type, action.Frame)
		return false
	}
	if e == a.timeline.Selected() {
		for _, c := range action.Cells {
			a.publish(c.X, c.Y, c.Z, pick(c))
		}
		return true
	}
	for _, c := range action.Cells {
		e.Data.SetColorLED(c.X, c.Y, c.Z, pick(c))
	}
	e.Preview = a.preview(e.Data)
	a.saved = false
	return true
}
