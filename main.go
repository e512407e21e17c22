// Package main implements cubanimate, a terminal editor and toolkit for
// LED cube animations.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	debugMode bool
	sizeFlag  string
	fpsFlag   int
	nameFlag  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cubanimate [file]",
		Short: "LED cube animation editor",
		Long: `cubanimate - LED cube animation editor

Paint an LED cube layer by layer, frame by frame, and save the result as an
.anim file. Without a file argument a new animation is started using the
size and frame rate from the configuration.`,
		Example: `  # Start a new animation
  cubanimate

  # Open an existing animation
  cubanimate wave.anim

  # Start a 4x4x4 animation at 12 fps
  cubanimate --size 4,4,4 --fps 12

  # Write debug output to the configured log file
  cubanimate --debug`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runEditor(path)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&sizeFlag, "size", "", "Cube size as x,y,z (default: from config)")
	rootCmd.PersistentFlags().IntVar(&fpsFlag, "fps", 0, "Frames per second (default: from config)")
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "Animation name for new animations")

	rootCmd.AddCommand(newCommand(), infoCommand(), exportCommand())
	rootCmd.AddCommand(hueCommand(), equationCommand(), configCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
