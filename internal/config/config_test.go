package config

import (
	"os"
	"path/filepath"
	"testing"

	"cubanimate/internal/cube"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	size, _ := cfg.Size()
	if size != cube.NewSize(8, 8, 8) {
		t.Errorf("default size %s", size)
	}
	if len(cfg.NewPalette().Colors()) != 8 {
		t.Error("default palette should have 8 colors")
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")
	cfg := Default()
	cfg.DefaultSize = "4,4,4"
	cfg.DefaultFPS = 12
	cfg.Palette = []string{"#ff0000", "#00ff00"}
	cfg.SaveDirectory = dir
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.DefaultSize != "4,4,4" || got.DefaultFPS != 12 || len(got.Palette) != 2 || got.SaveDirectory != dir {
		t.Errorf("loaded %+v", got)
	}
}

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("default_fps = 30\n"), 0644)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultFPS != 30 || cfg.DefaultSize != "8,8,8" || !cfg.Confirmations {
		t.Errorf("loaded %+v", cfg)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"size":    "default_size = \"8,8\"\n",
		"empty":   "default_size = \"0,8,8\"\n",
		"fps":     "default_fps = 0\n",
		"palette": "palette = [\"red\"]\n",
		"syntax":  "default_fps = \n",
	}
	for name, content := range tests {
		name, content := name, content
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			os.WriteFile(path, []byte(content), 0644)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestGetSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anims")
	cfg := &Config{SaveDirectory: dir}
	if got := cfg.GetSavePath("cube.anim"); got != filepath.Join(dir, "cube.anim") {
		t.Errorf("got %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("save directory not created")
	}
	abs := filepath.Join(t.TempDir(), "x.anim")
	if got := cfg.GetSavePath(abs); got != abs {
		t.Errorf("absolute path rewritten to %q", got)
	}
	if got := (&Config{}).GetSavePath("cube.anim"); got != "cube.anim" {
		t.Errorf("got %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/anims"); got != filepath.Join(home, "anims") {
		t.Errorf("got %q", got)
	}
	if got := expandPath("rel"); !filepath.IsAbs(got) {
		t.Errorf("relative path not made absolute: %q", got)
	}
}
