package wirecube

import (
	"strings"
	"testing"
	"time"
)

func TestCubeLogicDrawOrder(t *testing.T) {
	logic := NewCubeLogic(DefaultProjectionConfig())
	s := &recordingSurface{}
	logic.Draw(s)

	if got := s.kinds(); got != "rect line circle " {
		t.Errorf("draw sequence = %q, want clear then lines then circles", got)
	}
	if s.count("line") != 12 || s.count("circle") != 8 {
		t.Errorf("got %d lines and %d circles, want 12 and 8", s.count("line"), s.count("circle"))
	}

	bg := s.ops[0]
	if bg.args[2] != 480 || bg.args[3] != 360 || bg.clr != ColorBackground {
		t.Errorf("clear = %+v, want the full 480x360 in the background colour", bg)
	}
	for _, op := range s.ops[1:] {
		switch op.kind {
		case "line":
			if op.clr != ColorLine {
				t.Errorf("line colour = %v", op.clr)
			}
		case "circle":
			if op.clr != ColorPoint || op.args[2] != PointRadius {
				t.Errorf("circle = %+v", op)
			}
		}
	}

	// vertex 2 is (1, 1, -1)
	if c := s.ops[13+2]; !almostEqual(c.args[0], 330) || !almostEqual(c.args[1], 270) {
		t.Errorf("vertex 2 marker at (%f, %f), want (330, 270)", c.args[0], c.args[1])
	}
}

func TestCubeLogicSetupResetsMotion(t *testing.T) {
	logic := NewCubeLogic(DefaultProjectionConfig())
	logic.OnKeyDown(NewKeyEvent(KeyArrowUp))
	logic.Update()
	logic.Setup()

	if logic.Motion().Angles() != (RotationState{}) || logic.Motion().Intent() != (AngularIntent{}) {
		t.Errorf("Setup left motion at %+v %+v", logic.Motion().Angles(), logic.Motion().Intent())
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestArrowLogicDirection(t *testing.T) {
	testCases := []struct {
		key      string
		expected float64
		tipX     float64
		tipY     float64
	}{
		{KeyArrowRight, 0, 340, 180},
		{KeyArrowUp, 1.5707963267948966, 240, 80},
		{KeyArrowLeft, 3.141592653589793, 140, 180},
		{KeyArrowDown, 4.71238898038469, 240, 280},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			a := NewArrowLogic(480, 360)
			a.OnKeyDown(NewKeyEvent(KeyArrowDown))
			e := NewKeyEvent(tc.key)
			a.OnKeyDown(e)

			if !almostEqual(a.Direction(), tc.expected) {
				t.Errorf("Direction() = %f, want %f", a.Direction(), tc.expected)
			}
			if !e.DefaultPrevented() {
				t.Errorf("arrow key-down not prevented")
			}

			s := &recordingSurface{}
			a.Draw(s)
			shaft := s.ops[1]
			if shaft.args[0] != 240 || shaft.args[1] != 180 {
				t.Errorf("shaft starts at (%f, %f), want the centre", shaft.args[0], shaft.args[1])
			}
			if !almostEqual(shaft.args[2], tc.tipX) || !almostEqual(shaft.args[3], tc.tipY) {
				t.Errorf("tip at (%f, %f), want (%f, %f)", shaft.args[2], shaft.args[3], tc.tipX, tc.tipY)
			}
		})
	}
}

func TestArrowLogicIgnoresOtherKeys(t *testing.T) {
	a := NewArrowLogic(480, 360)
	a.OnKeyDown(NewKeyEvent(KeyArrowLeft))

	e := NewKeyEvent("q")
	a.OnKeyDown(e)
	if e.DefaultPrevented() || !almostEqual(a.Direction(), 3.141592653589793) {
		t.Errorf("non-arrow key changed state: direction %f, prevented %v", a.Direction(), e.DefaultPrevented())
	}

	up := NewKeyEvent(KeyArrowLeft)
	a.OnKeyUp(up)
	if !up.DefaultPrevented() {
		t.Errorf("arrow key-up not prevented")
	}
	if !almostEqual(a.Direction(), 3.141592653589793) {
		t.Errorf("key-up changed direction to %f", a.Direction())
	}
}

func TestArrowLogicFrameDelta(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	a := NewArrowLogic(480, 360)
	a.Now = clock.Now

	a.Setup()
	clock.advance(16 * time.Millisecond)
	a.Update()
	if a.LastDelta() != 16*time.Millisecond {
		t.Errorf("LastDelta() = %v, want 16ms", a.LastDelta())
	}

	clock.advance(40 * time.Millisecond)
	a.Update()
	if a.LastDelta() != 40*time.Millisecond {
		t.Errorf("LastDelta() = %v, want 40ms", a.LastDelta())
	}

	a.Setup()
	if a.LastDelta() != 0 {
		t.Errorf("LastDelta() = %v after Setup, want 0", a.LastDelta())
	}
}

func TestArrowLogicDrawsHeading(t *testing.T) {
	a := NewArrowLogic(480, 360)
	a.OnKeyDown(NewKeyEvent(KeyArrowUp))

	s := &recordingSurface{}
	a.Draw(s)

	if got := s.kinds(); got != "rect line text " {
		t.Errorf("draw sequence = %q", got)
	}
	if s.count("line") != 3 {
		t.Errorf("got %d lines, want shaft and two head strokes", s.count("line"))
	}
	text := s.ops[len(s.ops)-1]
	if !strings.Contains(text.text, "90") {
		t.Errorf("text = %q, want the heading in degrees", text.text)
	}
}
