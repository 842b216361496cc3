package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugGlyphAscent moves FillText's baseline y to the top edge that
// ebitenutil's debug font is positioned by.
const debugGlyphAscent = 12

// Canvas is an offscreen ebiten image shown while mounted in the window.
type Canvas struct {
	img           *ebiten.Image
	width, height int
	parent        *Container
}

func newCanvas(width, height int) *Canvas {
	return &Canvas{
		img:    ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

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
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (c *Canvas) FillCircle(x, y, radius float64, clr color.RGBA) {
	if !finite(x, y, radius) {
		return
	}
	xp, yp := circlePolygon(float32(x), float32(y), float32(radius))
	fillConvexPolygon(c.img, xp, yp, clr)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64, clr color.RGBA) {
	if !finite(x1, y1, x2, y2) {
		return
	}
	strokePolyline(c.img, []float32{float32(x1), float32(x2)}, []float32{float32(y1), float32(y2)}, 1, clr)
}

// FillText uses ebiten's debug font, which is always white.
func (c *Canvas) FillText(text string, x, y float64, _ color.RGBA) {
	if !finite(x, y) {
		return
	}
	ebitenutil.DebugPrintAt(c.img, text, int(x), int(y)-debugGlyphAscent)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
