// Package render draws overview images of colormaps.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aclements/go-gg/palette"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/draw"
)

// Samples is the number of values drawn per colormap
const Samples = 100

var errNoColormaps = errors.New("no colormaps to draw")

// Named is a colormap to draw with its title
type Named struct {
	Name string
	Map  palette.Continuous
}

const (
	stripWidth  = 24
	stripGap    = 16
	stripHeight = 2 * Samples
	titleSpace  = 120
	margin      = 8
)

// SVG draws one vertical strip per colormap, lowest value at the bottom,
// with the name written above it.
func SVG(w io.Writer, maps []Named) error {
	if len(maps) == 0 {
		return errNoColormaps
	}
	width := 2*margin + len(maps)*stripWidth + (len(maps)-1)*stripGap
	height := 2*margin + titleSpace + stripHeight

	canvas := svg.New(w)
	canvas.Start(width, height, `font-family="sans-serif" font-size="10px"`)
	defer canvas.End()

	step := stripHeight / Samples
	for i, m := range maps {
		x := margin + i*(stripWidth+stripGap)
		y0 := margin + titleSpace
		for s := 0; s < Samples; s++ {
			v := (float64(s) + 0.5) / Samples
			y := y0 + stripHeight - (s+1)*step
			canvas.Rect(x, y, stripWidth, step, "fill:"+hex(m.Map.Map(v)))
		}
		tx, ty := x+stripWidth/2, y0-4
		canvas.Text(tx, ty, m.Name, fmt.Sprintf(`transform="rotate(-90 %d %d)"`, tx, ty))
	}
	return nil
}

// PNG draws the same strips without titles, scaled up by scale
func PNG(w io.Writer, maps []Named, scale int) error {
	if len(maps) == 0 {
		return errNoColormaps
	}
	if scale < 1 {
		scale = 1
	}
	// Each map is two pixels wide with a one pixel white gap.
	small := image.NewRGBA(image.Rect(0, 0, 3*len(maps)-1, Samples))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	for i, m := range maps {
		for s := 0; s < Samples; s++ {
			c := m.Map.Map((float64(s) + 0.5) / Samples)
			y := Samples - 1 - s
			small.Set(3*i, y, c)
			small.Set(3*i+1, y, c)
		}
	}

	sb := small.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx()*scale, sb.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, sb, draw.Src, nil)
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
