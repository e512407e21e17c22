package main

import (
	"fmt"
	"image"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"cubanimate/internal/animation"
	"cubanimate/internal/config"
	"cubanimate/internal/cube"
	"cubanimate/internal/gradient"
	"cubanimate/internal/render"
	"cubanimate/internal/view"
)

func runEditor(path string) error {
	cfg := loadConfig()

	logger := log.New(io.Discard, "", 0)
	if debugMode {
		logFile := cfg.DebugLog
		if logFile == "" {
			logFile = "debug.log"
		}
		f, err := tea.LogToFile(logFile, "debug")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	m, err := newModel(cfg, logger, path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newModel builds the editor state. With an empty path a new animation is
// created from the flags and the config.
func newModel(cfg *config.Config, logger *log.Logger, path string) (model, error) {
	name, size, fps, err := settings(cfg)
	if err != nil {
		return model{}, err
	}

	anim := animation.New(
		animation.WithPreviewer(func(g cube.Grid) image.Image { return render.Thumbnail(g, thumbnailPixel) }),
		animation.WithLogger(logger),
	)
	if err := anim.Create(name, size, fps); err != nil {
		return model{}, err
	}

	m := model{
		anim:     anim,
		palette:  cfg.NewPalette(),
		gradient: gradient.Default(),
		mode:     ModeNormal,
		config:   cfg,
		log:      logger,
	}
	for _, o := range view.Orientations {
		s := view.NewSlice(o, size)
		anim.AddView(s)
		m.slices = append(m.slices, s)
	}
	m.orientation = len(m.slices) - 1

	if path != "" {
		if err := anim.Load(path); err != nil {
			return model{}, err
		}
		m.successMessage = fmt.Sprintf("Opened %s", anim.Path())
	}
	return m, nil
}
