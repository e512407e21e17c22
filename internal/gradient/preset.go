package gradient

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cubanimate/internal/cube"
)

type presetStop struct {
	Pos   float64 `yaml:"pos"`
	Color string  `yaml:"color"`
}

type preset struct {
	Name  string       `yaml:"name"`
	Stops []presetStop `yaml:"stops"`
}

// SavePreset writes a gradient to a YAML file
func SavePreset(g *Gradient, path string) error {
	p := preset{Name: g.Name}
	for _, s := range g.stops {
		p.Stops = append(p.Stops, presetStop{Pos: s.Pos, Color: s.Color.Hex()})
	}
	data, err := yaml.Marshal(&p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadPreset reads a gradient from a YAML file. Missing end stops are
// filled in with the nearest color.
func LoadPreset(path string) (*Gradient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.Stops) == 0 {
		return nil, errors.New("gradient preset has no stops")
	}

	g := &Gradient{Name: p.Name}
	for i, s := range p.Stops {
		c, err := cube.ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		g.AddStop(s.Pos, c)
	}
	if g.stops[0].Pos > 0 {
		g.AddStop(0, g.stops[0].Color)
	}
	if last := g.stops[len(g.stops)-1]; last.Pos < 1 {
		g.AddStop(1, last.Color)
	}
	return g, nil
}
