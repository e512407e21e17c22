package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cubanimate/internal/animfile"
	"cubanimate/internal/config"
	"cubanimate/internal/cube"
	"cubanimate/internal/gradient"
)

func TestGeneratorsRejectZeroFrames(t *testing.T) {
	dir := t.TempDir()
	commands := map[string][]string{
		"new":      {filepath.Join(dir, "new"), "--frames", "0"},
		"hue":      {filepath.Join(dir, "hue"), "--frames", "0"},
		"equation": {"z == t", filepath.Join(dir, "equation"), "--frames=-3"},
	}
	for name, args := range commands {
		name, args := name, args
		t.Run(name, func(t *testing.T) {
			cmd := newCommand()
			switch name {
			case "hue":
				cmd = hueCommand()
			case "equation":
				cmd = equationCommand()
			}
			cmd.SetArgs(args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			if err := cmd.Execute(); err == nil {
				t.Fatal("expected an error for a frame count below 1")
			}
			if _, err := os.Stat(filepath.Join(dir, name+animfile.Ext)); !os.IsNotExist(err) {
				t.Errorf("%s wrote a file despite the error", name)
			}
		})
	}
}

func TestWriteGeneratedRejectsEmpty(t *testing.T) {
	cfg := config.Default()
	cfg.SaveDirectory = t.TempDir()
	size := cube.NewSize(2, 2, 2)

	err := writeGenerated(cfg, "empty", "x", size, 24, gradient.Default().Sweep(size, 0))
	if !errors.Is(err, animfile.ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.SaveDirectory, "empty.anim")); !os.IsNotExist(err) {
		t.Error("empty animation was written")
	}

	if err := writeGenerated(cfg, "sweep", "x", size, 24, gradient.Default().Sweep(size, 3)); err != nil {
		t.Fatal(err)
	}
	_, frames, err := animfile.Load(filepath.Join(cfg.SaveDirectory, "sweep.anim"))
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Errorf("loaded %d frames, want 3", len(frames))
	}
}
