package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cubanimate/internal/animation"
	"cubanimate/internal/animfile"
	"cubanimate/internal/config"
	"cubanimate/internal/cube"
	"cubanimate/internal/equation"
	"cubanimate/internal/gradient"
	"cubanimate/internal/render"
)

func newCommand() *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create an empty animation file",
		Example: `  # A 8x8x8 animation with 10 blank frames
  cubanimate new wave --size 8,8,8 --frames 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := checkFrames(frames); err != nil {
				return err
			}
			cfg := loadConfig()
			path := cfg.GetSavePath(animfile.EnsureExt(args[0]))
			name, size, fps, err := settings(cfg)
			if err != nil {
				return err
			}
			if nameFlag == "" {
				name = nameFromPath(path)
			}
			a := animation.New()
			if err := a.Create(name, size, fps); err != nil {
				return err
			}
			for i := 1; i < frames; i++ {
				if _, err := a.AddFrame(); err != nil {
					return err
				}
			}
			if err := a.Save(path); err != nil {
				return err
			}
			fmt.Printf("Created %s (%s, %d frames at %d fps)\n", path, size, a.Timeline().Len(), fps)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 1, "Number of blank frames")
	return cmd
}

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print the header and frame summary of an animation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, frames, err := animfile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Name:   %s\n", h.Name)
			fmt.Printf("Size:   %s (%d LEDs)\n", h.Size, h.Size.Total())
			fmt.Printf("FPS:    %d\n", h.FPS)
			fmt.Printf("Frames: %d\n", len(frames))
			for i, f := range frames {
				fmt.Printf("  #%-4d %d lit\n", i+1, f.Lit())
			}
			return nil
		},
	}
}

func exportCommand() *cobra.Command {
	var output string
	var frame int

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export an animation as an image or text",
	}

	loadFrame := func(path string) (animfile.Header, *cube.Frame, error) {
		h, frames, err := animfile.Load(path)
		if err != nil {
			return h, nil, err
		}
		if frame < 1 || frame > len(frames) {
			return h, nil, fmt.Errorf("frame %d out of range 1..%d", frame, len(frames))
		}
		return h, frames[frame-1], nil
	}
	outPath := func(src, ext string) string {
		if output != "" {
			return output
		}
		return strings.TrimSuffix(src, filepath.Ext(src)) + ext
	}

	pngCmd := &cobra.Command{
		Use:   "png <file>",
		Short: "Export one frame as a PNG sheet of its layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, f, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			out := outPath(args[0], ".png")
			if err := render.SheetPNG(out, f, fmt.Sprintf("%s #%d", h.Name, frame)); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", out)
			return nil
		},
	}

	gifCmd := &cobra.Command{
		Use:   "gif <file>",
		Short: "Export every frame as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, frames, err := animfile.Load(args[0])
			if err != nil {
				return err
			}
			out := outPath(args[0], ".gif")
			if err := render.GIF(out, frames, h.FPS); err != nil {
				return err
			}
			fmt.Printf("Exported %d frames to %s\n", len(frames), out)
			return nil
		},
	}

	txtCmd := &cobra.Command{
		Use:   "txt <file>",
		Short: "Print one frame layer by layer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, f, err := loadFrame(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return render.Text(os.Stdout, f)
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer file.Close()
			return render.Text(file, f)
		},
	}

	exportCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file (default: next to the input)")
	pngCmd.Flags().IntVar(&frame, "frame", 1, "Frame number to export")
	txtCmd.Flags().IntVar(&frame, "frame", 1, "Frame number to export")
	exportCmd.AddCommand(pngCmd, gifCmd, txtCmd)
	return exportCmd
}

func hueCommand() *cobra.Command {
	var presetPath, savePreset, axisName string
	var frames int

	cmd := &cobra.Command{
		Use:   "hue <file>",
		Short: "Generate a gradient animation",
		Long: `Generate an animation from a color gradient.

By default every frame is filled with one color and the frames sweep through
the gradient. With --axis a single frame is written with the gradient laid
out along that axis.`,
		Example: `  # Rainbow sweep over 60 frames
  cubanimate hue rainbow --frames 60

  # One frame, gradient from bottom to top, from a preset
  cubanimate hue sunset --preset sunset.yaml --axis z`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := checkFrames(frames); err != nil {
				return err
			}
			cfg := loadConfig()
			name, size, fps, err := settings(cfg)
			if err != nil {
				return err
			}
			g := gradient.Default()
			if presetPath != "" {
				if g, err = gradient.LoadPreset(presetPath); err != nil {
					return err
				}
			}
			if savePreset != "" {
				if err := gradient.SavePreset(g, savePreset); err != nil {
					return err
				}
			}

			var out []*cube.Frame
			if axisName != "" {
				axis, err := cube.ParseAxis(axisName)
				if err != nil {
					return err
				}
				out = []*cube.Frame{g.Along(size, axis)}
			} else {
				out = g.Sweep(size, frames)
			}
			return writeGenerated(cfg, args[0], name, size, fps, out)
		},
	}
	cmd.Flags().StringVar(&presetPath, "preset", "", "Gradient preset (YAML)")
	cmd.Flags().StringVar(&savePreset, "save-preset", "", "Write the gradient used to a YAML preset")
	cmd.Flags().StringVar(&axisName, "axis", "", "Lay the gradient out along x, y or z instead of sweeping")
	cmd.Flags().IntVar(&frames, "frames", 24, "Number of frames in the sweep")
	return cmd
}

func equationCommand() *cobra.Command {
	var frames int
	var colorHex string

	cmd := &cobra.Command{
		Use:   "equation <expression> <file>",
		Short: "Plot an equation into an animation",
		Long: `Light every LED where a boolean expression holds.

The expression can use x, y, z, the frame number t, the cube size sx, sy, sz,
pi and the functions sin, cos, tan and sqrt.`,
		Example: `  # A plane sweeping upwards
  cubanimate equation "z == t % sz" plane --frames 8

  # A sphere
  cubanimate equation "(x-3.5)**2 + (y-3.5)**2 + (z-3.5)**2 <= 9" sphere`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := checkFrames(frames); err != nil {
				return err
			}
			cfg := loadConfig()
			name, size, fps, err := settings(cfg)
			if err != nil {
				return err
			}
			c, err := cube.ParseHex(colorHex)
			if err != nil {
				return err
			}
			eq, err := equation.Compile(args[0])
			if err != nil {
				return err
			}
			out, err := eq.Frames(size, frames, c)
			if err != nil {
				return err
			}
			return writeGenerated(cfg, args[1], name, size, fps, out)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 1, "Number of frames, t runs from 0 to frames-1")
	cmd.Flags().StringVar(&colorHex, "color", "#ff0000", "Color of lit LEDs")
	return cmd
}

func checkFrames(n int) error {
	if n < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", n)
	}
	return nil
}

func writeGenerated(cfg *config.Config, file, name string, size cube.Size, fps int, frames []*cube.Frame) error {
	if len(frames) == 0 {
		return animfile.ErrNoFrames
	}
	path := cfg.GetSavePath(animfile.EnsureExt(file))
	if nameFlag == "" {
		name = nameFromPath(path)
	}
	h := animfile.Header{Name: name, Size: size, FPS: fps}
	if err := animfile.Save(path, h, frames); err != nil {
		return err
	}
	fmt.Printf("Wrote %d frames to %s\n", len(frames), path)
	return nil
}

func configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cubanimate configuration",
	}
	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	configCmd.AddCommand(configPathCmd)
	return configCmd
}
