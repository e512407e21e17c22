package main

import "cubanimate/internal/view"

func (m *model) currentSlice() *view.Slice {
	if len(m.slices) == 0 {
		return nil
	}
	return m.slices[m.orientation]
}

// cursorLED is the cube coordinate under the cursor.
func (m *model) cursorLED() (x, y, z int) {
	return m.currentSlice().Coord(m.cursorX, m.cursorY, m.layer)
}

// Rows are drawn top-down but counted upwards, so k moves to a higher row.
func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY += speed
	case "j", "down", "J", "shift+down":
		m.cursorY -= speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) changeLayer(delta int) {
	m.layer += delta
	m.ensureCursorInBounds()
}

// cycleOrientation switches to the next sliced view and keeps the cursor on
// the same LED.
func (m *model) cycleOrientation() {
	if len(m.slices) == 0 {
		return
	}
	x, y, z := m.cursorLED()
	m.orientation = (m.orientation + 1) % len(m.slices)
	p := [3]int{x, y, z}
	o := m.currentSlice().Orientation()
	m.cursorX, m.cursorY, m.layer = p[o.Column], p[o.Row], p[o.Slicing]
	m.ensureCursorInBounds()
}

func (m *model) ensureCursorInBounds() {
	s := m.currentSlice()
	if s == nil {
		return
	}
	m.cursorX = clamp(m.cursorX, 0, s.Columns()-1)
	m.cursorY = clamp(m.cursorY, 0, s.Rows()-1)
	m.layer = clamp(m.layer, 0, s.Layers()-1)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
