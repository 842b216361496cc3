package wirecube

import (
	"fmt"
	"math"
	"time"
)

const (
	arrowLength     = 100.0
	arrowHeadLength = 20.0
	arrowHeadAngle  = 5 * math.Pi / 6
)

// ArrowLogic points an arrow in the direction of the last arrow key pressed.
// It is the simpler of the two frame logics and also tracks frame timing.
type ArrowLogic struct {
	// Now is the clock used for frame deltas. Defaults to time.Now.
	Now func() time.Time

	width, height float64
	direction     float64
	lastFrame     time.Time
	lastDelta     time.Duration
}

func NewArrowLogic(width, height float64) *ArrowLogic {
	return &ArrowLogic{
		Now:    time.Now,
		width:  width,
		height: height,
	}
}

func (a *ArrowLogic) Setup() {
	a.lastFrame = a.Now()
	a.lastDelta = 0
}

func (a *ArrowLogic) OnKeyDown(e *KeyEvent) {
	switch e.Key {
	case KeyArrowRight:
		a.direction = 0
	case KeyArrowUp:
		a.direction = math.Pi / 2
	case KeyArrowLeft:
		a.direction = math.Pi
	case KeyArrowDown:
		a.direction = math.Pi/2 + math.Pi
	default:
		return
	}
	e.PreventDefault()
}

func (a *ArrowLogic) OnKeyUp(e *KeyEvent) {
	if isArrowKey(e.Key) {
		e.PreventDefault()
	}
}

func (a *ArrowLogic) Update() {
	now := a.Now()
	a.lastDelta = now.Sub(a.lastFrame)
	a.lastFrame = now
}

// Direction is the current heading in radians, counter-clockwise from +X.
func (a *ArrowLogic) Direction() float64 { return a.direction }

// LastDelta is the time between the two most recent updates.
func (a *ArrowLogic) LastDelta() time.Duration { return a.lastDelta }

func (a *ArrowLogic) Draw(s Surface) {
	ClearSurface(s, a.width, a.height)

	cx, cy := a.width/2, a.height/2
	dir := NewVectorFromAngle(a.direction)
	tip := dir.Mult(arrowLength).FlipY()
	tx, ty := cx+tip.X, cy+tip.Y
	s.StrokeLine(cx, cy, tx, ty, ColorLine)

	for _, side := range []float64{arrowHeadAngle, -arrowHeadAngle} {
		head := RotateVector2(dir, side).Mult(arrowHeadLength).FlipY()
		s.StrokeLine(tx, ty, tx+head.X, ty+head.Y, ColorLine)
	}

	deg := a.direction * 180 / math.Pi
	s.FillText(fmt.Sprintf("direction %3.0f deg", deg), 8, 16, ColorText)
}
