package main

import (
	"log"

	"cubanimate/internal/animation"
	"cubanimate/internal/config"
	"cubanimate/internal/gradient"
	"cubanimate/internal/paint"
	"cubanimate/internal/view"
)

type model struct {
	width             int
	height            int
	cursorX           int // column in the current slice
	cursorY           int // row in the current slice, counted upwards
	layer             int
	orientation       int
	anim              *animation.Animation
	slices            []*view.Slice
	palette           *paint.Palette
	gradient          *gradient.Gradient
	stop              int // selected gradient stop
	mode              Mode
	help              bool
	helpScroll        int
	filename          string
	fileList          []string
	selectedFileIndex int
	fileOp            FileOperation
	confirmAction     ConfirmAction
	input             string
	inputOp           TextInput
	errorMessage      string
	successMessage    string
	playing           bool
	playGen           int
	config            *config.Config
	log               *log.Logger
}

// playTickMsg advances playback. Ticks from an older playback are dropped.
type playTickMsg struct {
	gen int
}
