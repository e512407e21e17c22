package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"cubanimate/internal/cube"
	"cubanimate/internal/view"
)

const (
	cellWidth   = 2
	gradientBar = 16
)

var (
	emptyCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	layerTitle     = lipgloss.NewStyle().Faint(true)
	currentTitle   = lipgloss.NewStyle().Bold(true)
)

func colorStyle(c cube.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func renderCell(c cube.Color, cursor bool) string {
	switch {
	case cursor && c.IsNull():
		return lipgloss.NewStyle().Reverse(true).Render("[]")
	case cursor:
		return colorStyle(c).Reverse(true).Render("[]")
	case c.IsNull():
		return emptyCellStyle.Render("··")
	default:
		return colorStyle(c).Render("██")
	}
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 80
	}

	var result strings.Builder
	result.WriteString(m.renderTimelineBar(width))
	result.WriteString("\n\n")
	result.WriteString(m.renderSlice(width))
	result.WriteString("\n\n")
	result.WriteString(m.renderPaletteBar())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

// renderTimelineBar lists the frames with the edited one in brackets.
func (m model) renderTimelineBar(width int) string {
	var bar strings.Builder
	fmt.Fprintf(&bar, "%s %s @ %d fps | Frames: ", m.anim.Name(), m.anim.Size(), m.anim.FPS())

	tl := m.anim.Timeline()
	for i, e := range tl.Entries() {
		if i > 0 {
			bar.WriteString(" ")
		}
		if i == tl.SelectedIndex() {
			bar.WriteString("[")
			bar.WriteString(e.Name)
			bar.WriteString("]")
		} else {
			bar.WriteString(e.Name)
		}
	}

	line := truncate.String(bar.String(), uint(width))
	if w := lipgloss.Width(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}

// renderSlice draws the layers of the current orientation side by side, or
// only the current layer when they do not fit.
func (m model) renderSlice(width int) string {
	s := m.currentSlice()
	if s == nil {
		return ""
	}
	o := s.Orientation()

	layers := make([]int, 0, s.Layers())
	layerWidth := s.Columns()*cellWidth + 2
	if layerWidth*s.Layers() <= width {
		for l := 0; l < s.Layers(); l++ {
			layers = append(layers, l)
		}
	} else {
		layers = append(layers, m.layer)
	}

	blocks := make([]string, 0, len(layers))
	for _, l := range layers {
		blocks = append(blocks, m.renderLayer(s, l))
	}

	header := fmt.Sprintf("%s | columns %s, rows %s | layer %s=%d/%d",
		o.Name, o.Column, o.Row, o.Slicing, m.layer, s.Layers()-1)
	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m model) renderLayer(s *view.Slice, layer int) string {
	var b strings.Builder
	title := fmt.Sprintf("%s=%d", s.Orientation().Slicing, layer)
	if layer == m.layer {
		b.WriteString(currentTitle.Render(title))
	} else {
		b.WriteString(layerTitle.Render(title))
	}
	b.WriteString("\n")

	for i := 0; i < s.Rows(); i++ {
		row := s.Rows() - 1 - i
		for col := 0; col < s.Columns(); col++ {
			cursor := layer == m.layer && col == m.cursorX && row == m.cursorY
			b.WriteString(renderCell(s.Color(col, row, layer), cursor))
		}
		if i < s.Rows()-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().PaddingRight(2).Render(b.String())
}

func (m model) renderPaletteBar() string {
	var bar strings.Builder
	bar.WriteString("Palette: ")
	for i, c := range m.palette.Colors() {
		swatch := colorStyle(c).Render("██")
		if i == m.palette.Selected() {
			fmt.Fprintf(&bar, "[%s]", swatch)
		} else {
			fmt.Fprintf(&bar, " %s ", swatch)
		}
	}

	bar.WriteString("  Gradient: ")
	for i := 0; i < gradientBar; i++ {
		c := m.gradient.ColorAt(float64(i) / float64(gradientBar-1))
		bar.WriteString(colorStyle(c).Render("█"))
	}

	stops := m.gradient.Stops()
	if m.stop < len(stops) {
		s := stops[m.stop]
		fmt.Fprintf(&bar, "  Stop %d/%d @%.2f %s", m.stop+1, len(stops), s.Pos, colorStyle(s.Color).Render("██"))
	}
	return bar.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case ModeTextInput:
		prompt := inputPrompt(m.inputOp)
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: INPUT | ERROR: %s | %s: %s_ | Enter=retry, Esc=cancel", m.errorMessage, prompt, m.input)
		}
		return fmt.Sprintf("Mode: INPUT | %s: %s_ | Enter=confirm, Esc=cancel", prompt, m.input)

	case ModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpOpen:
			opStr = "Open"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpSaveGIF:
			opStr = "Export GIF"
		case FileOpSaveVisualTXT:
			opStr = "Export TXT"
		}
		if m.errorMessage != "" {
			if m.fileOp == FileOpOpen {
				return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | ↑/↓=navigate, Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
			}
			return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
		}
		if m.fileOp == FileOpOpen {
			return fmt.Sprintf("Mode: FILE | %s filename: %s | ↑/↓=navigate list, Type=enter name, Enter=confirm, Esc=cancel", opStr, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s | Enter=confirm, Esc=cancel", opStr, m.filename)

	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteFrame:
			message = fmt.Sprintf("Delete frame %s? (y/n)", m.anim.Selected().Name)
		case ConfirmQuit:
			message = "Quit? Unsaved changes will be lost. (y/n)"
		case ConfirmNewAnimation:
			message = "Start a new animation? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s already exists. Overwrite? (y/n)", m.filename)
		case ConfirmOpenFile:
			message = fmt.Sprintf("Open %s? Unsaved changes will be lost. (y/n)", m.filename)
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	}

	modeStr := m.modeString()
	if m.playing {
		modeStr = "PLAY"
	}
	x, y, z := m.cursorLED()
	status := fmt.Sprintf("Mode: %s | LED: (%d,%d,%d)", modeStr, x, y, z)
	if !m.anim.Saved() {
		status += " [+]"
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func inputPrompt(op TextInput) string {
	switch op {
	case InputName:
		return "Name"
	case InputSize:
		return "Size (x,y,z)"
	case InputFPS:
		return "FPS"
	case InputEquation:
		return "Equation"
	case InputHueFrames:
		return "Hue sweep frames"
	case InputColor:
		return "Color (#rrggbb)"
	case InputStop:
		return "New stop position (0-1)"
	default:
		return "Input"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeTextInput:
		return "INPUT"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"cubanimate Help",
	"===============",
	"",
	"Navigation:",
	"-----------",
	"  h/←/j/↓/k/↑/l/→  Move cursor within the layer",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  [ / ]            Previous / next layer",
	"  Tab              Switch view (back to front, left to right, bottom to top)",
	"",
	"Painting:",
	"---------",
	"  Space/Enter      Paint LED with the current color, or erase it if it",
	"                   already shows that color",
	"  x                Erase LED under cursor",
	"  f                Fill the current layer",
	"  F                Fill the whole frame",
	"  X                Clear the whole frame",
	"  , / .            Previous / next palette color",
	"  1-9              Select palette color",
	"  c                Set the palette color (#rrggbb)",
	"",
	"Frames:",
	"-------",
	"  n                Add a blank frame",
	"  d                Delete the current frame",
	"  { / }            Previous / next frame",
	"  < / >            Move the current frame left / right",
	"  y                Copy the current frame to the clipboard",
	"  p                Paste a frame from the clipboard",
	"  P                Play / stop",
	"",
	"Generators:",
	"-----------",
	"  e                Plot an equation into the current frame",
	"                   (x, y, z, t, sx, sy, sz, pi, sin, cos, tan, sqrt)",
	"  g                Lay the gradient out along the layer axis",
	"  w                Replace all frames with a hue sweep",
	"  ; / '            Previous / next gradient stop",
	"  a                Add a gradient stop with the palette color",
	"  C                Set the gradient stop to the palette color",
	"  z                Remove the gradient stop",
	"",
	"Animation:",
	"----------",
	"  r                Rename",
	"  R                Resize the cube",
	"  t                Set frames per second",
	"  + / -            Faster / slower",
	"  N                New animation",
	"",
	"File Operations:",
	"----------------",
	"  s                Save animation (.anim)",
	"  o                Open animation",
	"  S                Export current frame as PNG",
	"  G                Export all frames as GIF",
	"  T                Export current frame as text",
	"",
	"General:",
	"  u                Undo last action",
	"  U                Redo last undone action",
	"  Esc              Stop playback / clear messages",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine >= len(helpLines) {
		startLine = max(len(helpLines)-visibleHeight, 0)
	}
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result
}
