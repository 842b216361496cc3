package wirecube

import "image/color"

var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorPoint      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorLine       = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PointRadius is the radius of a vertex marker.
const PointRadius = 5.0

// Surface is a 2D immediate-mode drawing target.
type Surface interface {
	FillRect(x, y, width, height float64, clr color.RGBA)
	FillCircle(x, y, radius float64, clr color.RGBA)
	StrokeLine(x1, y1, x2, y2 float64, clr color.RGBA)
	FillText(text string, x, y float64, clr color.RGBA)
}

// ClearSurface paints the whole width x height area with the background.
func ClearSurface(s Surface, width, height float64) {
	s.FillRect(0, 0, width, height, ColorBackground)
}
