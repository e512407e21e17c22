package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cubanimate/internal/cube"
)

// Text dumps a frame layer by layer, one row of hex colors per y from the
// top row down. Null LEDs are shown as dots.
func Text(w io.Writer, g cube.Grid) error {
	bw := bufio.NewWriter(w)
	size := g.Size()
	blank := strings.Repeat(".", cube.HexLen)
	for z := 0; z < size.Z; z++ {
		if z > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "z=%d\n", z)
		for y := size.Y - 1; y >= 0; y-- {
			cells := make([]string, size.X)
			for x := range cells {
				c := g.At(x, y, z)
				if c.IsNull() {
					cells[x] = blank
				} else {
					cells[x] = c.Hex()
				}
			}
			fmt.Fprintln(bw, strings.Join(cells, " "))
		}
	}
	return bw.Flush()
}
