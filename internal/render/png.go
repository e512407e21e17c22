package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"cubanimate/internal/cube"
)

const (
	sheetCell   = 24
	labelHeight = 20.0
	margin      = 10.0
)

// Sheet draws every z layer of the frame side by side, each labelled with
// its layer number.
func Sheet(g cube.Grid, title string) (image.Image, error) {
	size := g.Size()
	if !size.Valid() {
		return nil, fmt.Errorf("nothing to export")
	}
	layers := Layers(g, sheetCell)

	top := margin + labelHeight
	if title != "" {
		top += labelHeight
	}
	width := int(2*margin) + layers.Bounds().Dx()
	height := int(top+margin) + layers.Bounds().Dy()

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)
	dc.SetColor(color.Black)

	if title != "" {
		dc.DrawString(title, margin, margin+labelHeight-6)
	}
	for z := 0; z < size.Z; z++ {
		x := margin + float64(z*(size.X+gap)*sheetCell)
		dc.DrawString(fmt.Sprintf("z=%d", z), x, top-6)
	}
	dc.DrawImage(layers, int(margin), int(top))
	return dc.Image(), nil
}

// SheetPNG writes Sheet to a PNG file.
func SheetPNG(path string, g cube.Grid, title string) error {
	img, err := Sheet(g, title)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
