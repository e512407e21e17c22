// Package render turns cube frames into flat images and text.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"cubanimate/internal/cube"
)

// gap is the space in pixels between two layers of a sheet.
const gap = 1

var gridColor = color.NRGBA{R: 160, G: 160, B: 160, A: 255}

// Thumbnail looks down on the cube: each (x, y) shows the first painted LED
// from the top layer down, or Null when the column is empty.
func Thumbnail(g cube.Grid, px int) *image.RGBA {
	px = max(px, 1)
	size := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.X*px, size.Y*px))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c := cube.Null
			for z := size.Z - 1; z >= 0; z-- {
				if lit := g.At(x, y, z); !lit.IsNull() {
					c = lit
					break
				}
			}
			r := image.Rect(x*px, (size.Y-1-y)*px, (x+1)*px, (size.Y-y)*px)
			draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return img
}

// Layers draws every z layer side by side, y up, with a gray border
// around each LED.
func Layers(g cube.Grid, cell int) *image.RGBA {
	cell = max(cell, 3)
	size := g.Size()
	w := size.Z*size.X*cell + max(size.Z-1, 0)*gap*cell
	h := size.Y * cell
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for z := 0; z < size.Z; z++ {
		left := z * (size.X + gap) * cell
		for y := 0; y < size.Y; y++ {
			top := (size.Y - 1 - y) * cell
			for x := 0; x < size.X; x++ {
				r := image.Rect(left+x*cell, top, left+(x+1)*cell, top+cell)
				draw.Draw(img, r, image.NewUniform(gridColor), image.Point{}, draw.Src)
				draw.Draw(img, r.Inset(1), image.NewUniform(g.At(x, y, z)), image.Point{}, draw.Src)
			}
		}
	}
	return img
}
