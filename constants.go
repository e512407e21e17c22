package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeTextInput
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveGIF
	FileOpSaveVisualTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmDeleteFrame ConfirmAction = iota
	ConfirmQuit
	ConfirmNewAnimation
	ConfirmOverwriteFile
	ConfirmOpenFile
)

// TextInput names what the single-line prompt is asking for.
type TextInput int

const (
	InputName TextInput = iota
	InputSize
	InputFPS
	InputEquation
	InputHueFrames
	InputColor
	InputStop
)

const (
	animExt        = ".anim"
	defaultName    = "untitled"
	thumbnailPixel = 4
	minFPS         = 1
	maxFPS         = 120
)
