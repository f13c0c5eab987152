// Package render implements the three function-painting strategies of spec
// component C6 (Cartesian line-scan, parametric polyline, implicit
// root-tracking) over a minimal drawing interface, plus the adaptive
// implicit-curve tracer that is this module's other non-trivial algorithm
// besides the expression evaluator.
package render

import (
	"image"
	"image/color"
)

// Canvas is the minimal drawing surface a renderer paints onto (spec.md
// §4.4's "raster/painter abstracted to a minimal drawing interface").
// Renderers in this package never import anything beyond this interface
// and image/color -- no GUI toolkit, no widget library.
type Canvas interface {
	Size() (width, height int)
	SetPixel(x, y int, c color.Color)
	DrawLine(x0, y0, x1, y1 int, c color.Color, width float64)
}

// ImageCanvas implements Canvas over a standard library *image.RGBA,
// sufficient to run the pixel-export operation of spec.md §6 end-to-end
// from the CLI without any GUI dependency.
type ImageCanvas struct {
	Img *image.RGBA
}

// NewImageCanvas allocates a white width x height canvas.
func NewImageCanvas(width, height int) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, white)
		}
	}
	return &ImageCanvas{Img: img}
}

func (c *ImageCanvas) Size() (int, int) {
	b := c.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) SetPixel(x, y int, col color.Color) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.Img.Set(x, y, col)
}

// DrawLine walks a Bresenham line from (x0,y0) to (x1,y1), widening each
// point into a square of side 2*int(width/2)+1 to approximate a stroke width.
func (c *ImageCanvas) DrawLine(x0, y0, x1, y1 int, col color.Color, width float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	half := int(width / 2)

	x, y := x0, y0
	for {
		c.paintStroke(x, y, half, col)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (c *ImageCanvas) paintStroke(cx, cy, half int, col color.Color) {
	if half <= 0 {
		c.SetPixel(cx, cy, col)
		return
	}
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			c.SetPixel(cx+dx, cy+dy, col)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
