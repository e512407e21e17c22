package main

import (
	"fmt"
	"os"

	"cubanimate/internal/render"
)

func (m *model) exportVisualTXT(filename string) error {
	sel := m.anim.Selected()
	if sel == nil {
		return fmt.Errorf("no frame selected")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s %s\n", m.anim.Name(), sel.Name); err != nil {
		return err
	}
	return render.Text(file, sel.Data)
}

func (m *model) exportPNG(filename string) error {
	sel := m.anim.Selected()
	if sel == nil {
		return fmt.Errorf("no frame selected")
	}
	return render.SheetPNG(filename, sel.Data, fmt.Sprintf("%s %s", m.anim.Name(), sel.Name))
}

func (m *model) exportGIF(filename string) error {
	return render.GIF(filename, m.anim.Timeline().Frames(), m.anim.FPS())
}
