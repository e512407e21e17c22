package main

import (
	"fmt"
	"log"
	"path/filepath"

	"cubanimate/internal/config"
	"cubanimate/internal/cube"
)

// loadConfig never fails: a broken config file is reported and the
// defaults are used instead.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		return config.Default()
	}
	return cfg
}

// settings resolves the size, frame rate and name for a new animation from
// the command line flags, falling back to the config.
func settings(cfg *config.Config) (string, cube.Size, int, error) {
	sizeStr := cfg.DefaultSize
	if sizeFlag != "" {
		sizeStr = sizeFlag
	}
	size, err := cube.ParseSize(sizeStr)
	if err != nil {
		return "", cube.Size{}, 0, err
	}
	if !size.Valid() {
		return "", cube.Size{}, 0, fmt.Errorf("cube size %s has an empty axis", size)
	}
	fps := cfg.DefaultFPS
	if fpsFlag != 0 {
		fps = fpsFlag
	}
	if fps < minFPS || fps > maxFPS {
		return "", cube.Size{}, 0, fmt.Errorf("fps must be between %d and %d, got %d", minFPS, maxFPS, fps)
	}
	name := nameFlag
	if name == "" {
		name = defaultName
	}
	return name, size, fps, nil
}

// nameFromPath uses the file name without extension as animation name.
func nameFromPath(path string) string {
	return trimExt(filepath.Base(path), animExt)
}
