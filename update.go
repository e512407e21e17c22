package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cubanimate/internal/animation"
	"cubanimate/internal/cube"
	"cubanimate/internal/equation"
)

func (m model) Init() tea.Cmd {
	return nil
}

func playTick(fps, gen int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case playTickMsg:
		if !m.playing || msg.gen != m.playGen {
			return m, nil
		}
		m.stepFrame(1)
		return m, playTick(m.anim.FPS(), m.playGen)

	case tea.KeyMsg:
		if m.help {
			return m.updateHelp(msg)
		}
		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeTextInput:
			return m.updateTextInput(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		}
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		visibleHeight := m.height - 1
		if visibleHeight < 1 {
			visibleHeight = 1
		}
		maxScroll := len(helpLines) - visibleHeight
		if maxScroll < 0 {
			maxScroll = 0
		}
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.playing = false
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c", "q":
		if m.needsConfirm() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil

	case "h", "left", "H", "shift+left", "l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up", "j", "down", "J", "shift+down":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case "[":
		m.changeLayer(-1)
	case "]":
		m.changeLayer(1)
	case "tab":
		m.cycleOrientation()

	case " ", "enter":
		x, y, z := m.cursorLED()
		m.reportErr(m.anim.Toggle(m.palette, x, y, z))
	case "x":
		x, y, z := m.cursorLED()
		m.reportErr(m.anim.Erase(x, y, z))
	case "f":
		axis := m.currentSlice().Orientation().Slicing
		if n, err := m.anim.FillLayer(axis, m.layer, m.palette.CurrentColor()); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Filled layer %s=%d (%d LEDs)", axis, m.layer, n)
		}
	case "F":
		if n, err := m.anim.Fill(m.palette.CurrentColor()); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Filled frame (%d LEDs)", n)
		}
	case "X":
		if n, err := m.anim.Fill(cube.Null); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Cleared frame (%d LEDs)", n)
		}

	case ",":
		m.palette.Prev()
	case ".":
		m.palette.Next()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.palette.Select(int(key[0] - '1'))
	case "c":
		m.startInput(InputColor, m.palette.CurrentColor().Hex())

	case "n":
		if e, err := m.anim.AddFrame(); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Added frame %s", e.Name)
		}
	case "d":
		if m.anim.Timeline().Len() <= 1 {
			m.errorMessage = "Cannot delete the last frame"
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDeleteFrame
			return m, nil
		}
		m.deleteFrame()
	case "{":
		m.stepFrame(-1)
	case "}":
		m.stepFrame(1)
	case "<":
		m.moveFrame(-1)
	case ">":
		m.moveFrame(1)
	case "P":
		m.playing = !m.playing
		if m.playing {
			m.playGen++
			return m, playTick(m.anim.FPS(), m.playGen)
		}

	case "u":
		if t, ok := m.anim.Undo(); ok {
			m.successMessage = fmt.Sprintf("Undid %s", t)
		}
	case "U":
		if t, ok := m.anim.Redo(); ok {
			m.successMessage = fmt.Sprintf("Redid %s", t)
		}
	case "y":
		if sel := m.anim.Selected(); sel != nil {
			if err := writeClipboardText(sel.Data.Encode()); err != nil {
				m.errorMessage = fmt.Sprintf("Error copying frame: %s", err.Error())
			} else {
				m.successMessage = fmt.Sprintf("Copied frame %s", sel.Name)
			}
		}
	case "p":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Error reading clipboard: %s", err.Error())
			return m, nil
		}
		if n, err := m.anim.PasteFrame(cleanFrameLine(text)); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Pasted frame (%d LEDs changed)", n)
		}

	case "r":
		m.startInput(InputName, m.anim.Name())
	case "R":
		m.startInput(InputSize, m.anim.Size().String())
	case "t":
		m.startInput(InputFPS, strconv.Itoa(m.anim.FPS()))
	case "+", "=":
		m.reportErr(m.anim.SetFPS(min(m.anim.FPS()+1, maxFPS)))
	case "-":
		m.reportErr(m.anim.SetFPS(max(m.anim.FPS()-1, minFPS)))
	case "e":
		m.startInput(InputEquation, "")
	case "g":
		axis := m.currentSlice().Orientation().Slicing
		if n, err := m.anim.Apply(m.gradient.Along(m.anim.Size(), axis)); err != nil {
			m.reportErr(err)
		} else {
			m.successMessage = fmt.Sprintf("Gradient along %s (%d LEDs)", axis, n)
		}
	case "w":
		m.startInput(InputHueFrames, strconv.Itoa(m.anim.FPS()))
	case ";":
		m.stepStop(-1)
	case "'":
		m.stepStop(1)
	case "a":
		m.startInput(InputStop, "")
	case "z":
		if err := m.gradient.RemoveStop(m.stop); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Removed stop %d", m.stop+1)
			m.stepStop(-1)
		}
	case "C":
		if err := m.gradient.SetColor(m.stop, m.palette.CurrentColor()); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("Stop %d set to %s", m.stop+1, m.palette.CurrentColor().Hex())
		}

	case "N":
		if m.needsConfirm() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmNewAnimation
			return m, nil
		}
		m.newAnimation()
	case "s":
		m.startFileInput(FileOpSave)
		m.filename = m.anim.Name()
		if p := m.anim.Path(); p != "" {
			m.filename = trimExt(p, animExt)
		}
	case "o":
		m.startFileInput(FileOpOpen)
		m.scanFiles(animExt)
	case "S":
		m.startFileInput(FileOpSavePNG)
	case "G":
		m.startFileInput(FileOpSaveGIF)
	case "T":
		m.startFileInput(FileOpSaveVisualTXT)
	}
	return m, nil
}

// needsConfirm reports whether discarding the animation should be confirmed.
func (m *model) needsConfirm() bool {
	return m.config.Confirmations && !m.anim.Saved()
}

func (m *model) reportErr(err error) {
	if err == nil {
		return
	}
	var coordErr *cube.CoordinateError
	switch {
	case errors.As(err, &coordErr):
		m.errorMessage = fmt.Sprintf("No LED at (%d,%d,%d)", coordErr.X, coordErr.Y, coordErr.Z)
	case errors.Is(err, animation.ErrLastFrame):
		m.errorMessage = "Cannot delete the last frame"
	default:
		m.errorMessage = err.Error()
	}
	m.log.Printf("editor: %v", err)
}

func (m *model) stepFrame(delta int) {
	n := m.anim.Timeline().Len()
	if n == 0 {
		return
	}
	i := (m.anim.Timeline().SelectedIndex() + delta + n) % n
	if _, err := m.anim.ChangeFrame(i); err != nil {
		m.reportErr(err)
	}
}

func (m *model) moveFrame(delta int) {
	from := m.anim.Timeline().SelectedIndex()
	to := from + delta
	if to < 0 || to >= m.anim.Timeline().Len() {
		return
	}
	m.reportErr(m.anim.MoveFrame(from, to))
}

func (m *model) deleteFrame() {
	name := m.anim.Selected().Name
	if err := m.anim.DeleteSelectedFrame(); err != nil {
		m.reportErr(err)
		return
	}
	m.successMessage = fmt.Sprintf("Deleted frame %s", name)
}

func (m *model) newAnimation() {
	name, size, fps, err := settings(m.config)
	if err != nil {
		m.reportErr(err)
		return
	}
	if err := m.anim.Create(name, size, fps); err != nil {
		m.reportErr(err)
		return
	}
	m.playing = false
	m.cursorX, m.cursorY, m.layer = 0, 0, 0
	m.successMessage = fmt.Sprintf("New animation %s", size)
}

// stepStop moves the selected gradient stop, staying within the stops.
func (m *model) stepStop(delta int) {
	m.stop = clamp(m.stop+delta, 0, m.gradient.Len()-1)
}

func (m *model) startInput(op TextInput, initial string) {
	m.mode = ModeTextInput
	m.inputOp = op
	m.input = initial
}

func (m *model) startFileInput(op FileOperation) {
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	m.fileList = nil
	m.selectedFileIndex = -1
	m.playing = false
}

func (m model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.commitInput(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.mode = ModeNormal
		m.input = ""
		m.errorMessage = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}
	if keyStr := msg.String(); len(keyStr) == 1 {
		m.input += keyStr
	}
	return m, nil
}

func (m *model) commitInput() error {
	value := strings.TrimSpace(m.input)
	switch m.inputOp {
	case InputName:
		if value == "" {
			return errors.New("name cannot be empty")
		}
		if strings.ContainsAny(value, "\r\n") {
			return errors.New("name cannot contain line breaks")
		}
		m.anim.SetName(value)
		m.successMessage = fmt.Sprintf("Renamed to %s", value)

	case InputSize:
		size, err := cube.ParseSize(value)
		if err != nil {
			return err
		}
		if err := m.anim.Resize(size); err != nil {
			return err
		}
		m.ensureCursorInBounds()
		m.successMessage = fmt.Sprintf("Resized to %s", size)

	case InputFPS:
		fps, err := strconv.Atoi(value)
		if err != nil || fps < minFPS || fps > maxFPS {
			return fmt.Errorf("fps must be between %d and %d", minFPS, maxFPS)
		}
		return m.anim.SetFPS(fps)

	case InputEquation:
		eq, err := equation.Compile(value)
		if err != nil {
			return err
		}
		sel := m.anim.Selected()
		if sel == nil {
			return animation.ErrNoFrames
		}
		target := sel.Data.Clone()
		if _, err := eq.Plot(target, m.anim.Timeline().SelectedIndex(), m.palette.CurrentColor()); err != nil {
			return err
		}
		n, err := m.anim.Apply(target)
		if err != nil {
			return err
		}
		m.successMessage = fmt.Sprintf("Plotted %s (%d LEDs)", eq, n)

	case InputHueFrames:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.New("frame count must be a positive number")
		}
		if err := m.anim.ReplaceFrames(m.gradient.Sweep(m.anim.Size(), n)); err != nil {
			return err
		}
		m.successMessage = fmt.Sprintf("Hue sweep over %d frames", n)

	case InputColor:
		c, err := cube.ParseHex(value)
		if err != nil {
			return err
		}
		m.palette.Set(c)
		m.successMessage = fmt.Sprintf("Color %d set to %s", m.palette.Selected()+1, c.Hex())

	case InputStop:
		pos, err := strconv.ParseFloat(value, 64)
		if err != nil || pos < 0 || pos > 1 {
			return errors.New("stop position must be between 0 and 1")
		}
		m.stop = m.gradient.AddStop(pos, m.palette.CurrentColor())
		m.successMessage = fmt.Sprintf("Stop %d at %.2f", m.stop+1, pos)
	}
	return nil
}

func fileExt(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return ".png"
	case FileOpSaveGIF:
		return ".gif"
	case FileOpSaveVisualTXT:
		return ".txt"
	default:
		return animExt
	}
}

// selectedFileMatches reports whether the typed name is still the file
// picked from the list.
func (m *model) selectedFileMatches() bool {
	if m.selectedFileIndex < 0 || m.selectedFileIndex >= len(m.fileList) {
		return false
	}
	return m.filename == trimExt(m.fileList[m.selectedFileIndex], animExt)
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
		return m, nil

	case msg.String() == "up" || msg.String() == "down":
		if m.fileOp != FileOpOpen || len(m.fileList) == 0 {
			return m, nil
		}
		if !m.selectedFileMatches() && m.filename != "" {
			return m, nil
		}
		n := len(m.fileList)
		switch {
		case m.selectedFileIndex < 0 && msg.String() == "up":
			m.selectedFileIndex = n - 1
		case m.selectedFileIndex < 0:
			m.selectedFileIndex = 0
		case msg.String() == "up":
			m.selectedFileIndex = (m.selectedFileIndex - 1 + n) % n
		default:
			m.selectedFileIndex = (m.selectedFileIndex + 1) % n
		}
		m.filename = trimExt(m.fileList[m.selectedFileIndex], animExt)
		return m, nil

	case msg.Type == tea.KeyEnter:
		filename := m.filename
		if m.fileOp == FileOpOpen && m.selectedFileMatches() {
			filename = m.fileList[m.selectedFileIndex]
		}
		if strings.TrimSpace(filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m, nil
		}
		path := m.config.GetSavePath(withExt(filename, fileExt(m.fileOp)))

		switch m.fileOp {
		case FileOpSave:
			if _, err := os.Stat(path); err == nil && path != m.anim.Path() {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				m.filename = path
				return m, nil
			}
			if !m.saveTo(path) {
				return m, nil
			}
		case FileOpOpen:
			if m.needsConfirm() {
				m.mode = ModeConfirm
				m.confirmAction = ConfirmOpenFile
				m.filename = path
				return m, nil
			}
			if !m.openFile(path) {
				return m, nil
			}
		case FileOpSavePNG, FileOpSaveGIF, FileOpSaveVisualTXT:
			if !m.export(path) {
				return m, nil
			}
		}
		m.mode = ModeNormal
		m.filename = ""
		return m, nil

	case msg.Type == tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
			m.selectedFileIndex = -1
		}
		return m, nil

	default:
		if keyStr := msg.String(); len(keyStr) == 1 {
			m.filename += keyStr
			m.selectedFileIndex = -1
		}
		return m, nil
	}
}

func (m *model) saveTo(path string) bool {
	if err := m.anim.Save(path); err != nil {
		m.errorMessage = fmt.Sprintf("Error saving file: %s", err.Error())
		return false
	}
	absPath, _ := filepath.Abs(path)
	m.successMessage = fmt.Sprintf("Saved to %s", absPath)
	m.errorMessage = ""
	return true
}

func (m *model) openFile(path string) bool {
	if err := m.anim.Load(path); err != nil {
		m.errorMessage = fmt.Sprintf("Error opening file: %s", err.Error())
		return false
	}
	m.cursorX, m.cursorY, m.layer = 0, 0, 0
	m.ensureCursorInBounds()
	m.successMessage = fmt.Sprintf("Opened %s (%d frames)", filepath.Base(path), m.anim.Timeline().Len())
	m.errorMessage = ""
	return true
}

func (m *model) export(path string) bool {
	var err error
	switch m.fileOp {
	case FileOpSavePNG:
		err = m.exportPNG(path)
	case FileOpSaveGIF:
		err = m.exportGIF(path)
	case FileOpSaveVisualTXT:
		err = m.exportVisualTXT(path)
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error exporting: %s", err.Error())
		return false
	}
	absPath, _ := filepath.Abs(path)
	m.successMessage = fmt.Sprintf("Exported to %s", absPath)
	m.errorMessage = ""
	return true
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmDeleteFrame:
			m.deleteFrame()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewAnimation:
			m.newAnimation()
		case ConfirmOverwriteFile:
			if !m.saveTo(m.filename) {
				m.mode = ModeFileInput
				m.filename = trimExt(filepath.Base(m.filename), animExt)
				return m, nil
			}
		case ConfirmOpenFile:
			if !m.openFile(m.filename) {
				m.mode = ModeFileInput
				m.filename = trimExt(filepath.Base(m.filename), animExt)
				return m, nil
			}
		}
		m.mode = ModeNormal
		m.filename = ""
		return m, nil
	case "n", "N", "esc":
		switch m.confirmAction {
		case ConfirmOverwriteFile:
			m.mode = ModeFileInput
			m.fileOp = FileOpSave
			m.filename = trimExt(filepath.Base(m.filename), animExt)
		case ConfirmOpenFile:
			m.mode = ModeFileInput
			m.fileOp = FileOpOpen
			m.filename = trimExt(filepath.Base(m.filename), animExt)
		default:
			m.mode = ModeNormal
		}
		return m, nil
	}
	return m, nil
}
