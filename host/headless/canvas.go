package headless

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	circleSegments = 32
	lineWidth      = 1.0
)

// Canvas is a wirecube.Canvas backed by an RGBA image. Shapes are filled
// with an anti-aliasing rasterizer.
type Canvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	parent *Container
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the pixels drawn so far.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Mounted reports whether the canvas is attached to a container.
func (c *Canvas) Mounted() bool { return c.parent != nil }

func (c *Canvas) Remove() {
	if c.parent == nil {
		return
	}
	c.parent.removeChild(c)
	c.parent = nil
}

func (c *Canvas) FillRect(x, y, width, height float64, clr color.RGBA) {
	if !finite(x, y, width, height) {
		return
	}
	r := image.Rect(
		int(math.Floor(c.clamp(x))), int(math.Floor(c.clamp(y))),
		int(math.Ceil(c.clamp(x+width))), int(math.Ceil(c.clamp(y+height))),
	).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) FillCircle(x, y, radius float64, clr color.RGBA) {
	if !finite(x, y, radius) || radius <= 0 {
		return
	}
	xs := make([]float64, circleSegments)
	ys := make([]float64, circleSegments)
	for i := range xs {
		a := 2 * math.Pi * float64(i) / circleSegments
		xs[i] = x + radius*math.Cos(a)
		ys[i] = y + radius*math.Sin(a)
	}
	c.fillPolygon(xs, ys, clr)
}

// StrokeLine fills a one unit wide quad along the segment.
func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, clr color.RGBA) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := -dy / length * lineWidth / 2
	ny := dx / length * lineWidth / 2
	c.fillPolygon(
		[]float64{x1 + nx, x2 + nx, x2 - nx, x1 - nx},
		[]float64{y1 + ny, y2 + ny, y2 - ny, y1 - ny},
		clr,
	)
}

// FillText writes text with its baseline at y.
func (c *Canvas) FillText(text string, x, y float64, clr color.RGBA) {
	if !finite(x, y) {
		return
	}
	tinyfont.WriteLine(textDisplay{img: c.img}, &proggy.TinySZ8pt7b, int16(c.clamp(x)), int16(c.clamp(y)), text, clr)
}

func (c *Canvas) fillPolygon(xs, ys []float64, clr color.RGBA) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(c.clamp(xs[0])), float32(c.clamp(ys[0])))
	for i := 1; i < len(xs); i++ {
		c.z.LineTo(float32(c.clamp(xs[i])), float32(c.clamp(ys[i])))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(clr), image.Point{})
}

// clamp keeps far off-canvas coordinates in a range the rasterizer and
// integer conversions handle.
func (c *Canvas) clamp(v float64) float64 {
	b := c.img.Bounds()
	limit := float64(4 * max(b.Dx(), b.Dy()))
	return math.Max(-limit, math.Min(limit, v))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// textDisplay lets tinyfont plot glyph pixels into the canvas image.
type textDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = textDisplay{}

func (d textDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d textDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d textDisplay) Display() error {
	return nil
}
