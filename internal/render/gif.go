package render

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cubanimate/internal/cube"
)

const gifCell = 16

// Delay converts a frame rate to a GIF delay in 100ths of a second.
func Delay(fps int) int {
	if fps <= 0 {
		return 100
	}
	return max(1, 100/fps)
}

// WriteGIF encodes one GIF frame per cube frame, looping forever.
func WriteGIF(w io.Writer, frames []*cube.Frame, fps int) error {
	if len(frames) == 0 {
		return errors.New("no frames to export")
	}
	images := make([]*image.Paletted, len(frames))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, f := range frames {
		i, f := i, f
		g.Go(func() error {
			rgba := Layers(f, gifCell)
			pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
			draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
			images[i] = pimg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := &gif.GIF{
		Image:     images,
		Delay:     make([]int, len(images)),
		LoopCount: 0,
	}
	for i := range out.Delay {
		out.Delay[i] = Delay(fps)
	}
	return gif.EncodeAll(w, out)
}

// GIF writes an animated GIF file.
func GIF(path string, frames []*cube.Frame, fps int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGIF(f, frames, fps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
