package wirecube

import "testing"

func TestKeyDownSetsIntent(t *testing.T) {
	testCases := []struct {
		key           string
		expected      AngularIntent
		wantPrevented bool
	}{
		{KeyArrowUp, AngularIntent{Y: 1}, true},
		{KeyArrowDown, AngularIntent{Y: -1}, true},
		{KeyArrowLeft, AngularIntent{X: -1}, true},
		{KeyArrowRight, AngularIntent{X: 1}, true},
		{"a", AngularIntent{}, false},
		{"Enter", AngularIntent{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			m := NewMotion()
			e := NewKeyEvent(tc.key)
			m.OnKeyDown(e)

			if got := m.Intent(); got != tc.expected {
				t.Errorf("Intent() = %+v, want %+v", got, tc.expected)
			}
			if e.DefaultPrevented() != tc.wantPrevented {
				t.Errorf("DefaultPrevented() = %v, want %v", e.DefaultPrevented(), tc.wantPrevented)
			}
		})
	}
}

func TestKeyUpClearsOnlyItsAxis(t *testing.T) {
	m := NewMotion()
	m.OnKeyDown(NewKeyEvent(KeyArrowLeft))
	m.OnKeyDown(NewKeyEvent(KeyArrowUp))

	e := NewKeyEvent(KeyArrowDown)
	m.OnKeyUp(e)
	if got := m.Intent(); got != (AngularIntent{X: -1}) {
		t.Errorf("after releasing a vertical key Intent() = %+v, want {X:-1}", got)
	}
	if !e.DefaultPrevented() {
		t.Errorf("arrow key-up not prevented")
	}

	m.OnKeyUp(NewKeyEvent(KeyArrowRight))
	if got := m.Intent(); got != (AngularIntent{}) {
		t.Errorf("after releasing a horizontal key Intent() = %+v, want zero", got)
	}

	other := NewKeyEvent("x")
	m.OnKeyUp(other)
	if other.DefaultPrevented() {
		t.Errorf("non-arrow key-up was prevented")
	}
}

func TestUpdatePriority(t *testing.T) {
	testCases := []struct {
		name     string
		keys     []string
		expected RotationState
	}{
		{"nothing held", nil, RotationState{}},
		{"right spins x", []string{KeyArrowRight}, RotationState{X: 0.1}},
		{"left spins x back", []string{KeyArrowLeft}, RotationState{X: -0.1}},
		{"up spins y", []string{KeyArrowUp}, RotationState{Y: 0.1}},
		{"down spins y back", []string{KeyArrowDown}, RotationState{Y: -0.1}},
		{"left and up spin z", []string{KeyArrowLeft, KeyArrowUp}, RotationState{Z: 0.1}},
		{"right and down spin z back", []string{KeyArrowRight, KeyArrowDown}, RotationState{Z: -0.1}},
		{"later key on an axis wins", []string{KeyArrowUp, KeyArrowDown}, RotationState{Y: -0.1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMotion()
			for _, k := range tc.keys {
				m.OnKeyDown(NewKeyEvent(k))
			}
			m.Update()

			got := m.Angles()
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) || !almostEqual(got.Z, tc.expected.Z) {
				t.Errorf("Angles() = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestUpdateAccumulates(t *testing.T) {
	m := NewMotion()
	m.OnKeyDown(NewKeyEvent(KeyArrowRight))
	for i := 0; i < 5; i++ {
		m.Update()
	}
	m.OnKeyUp(NewKeyEvent(KeyArrowRight))
	m.Update()

	if got := m.Angles().X; !almostEqual(got, 0.5) {
		t.Errorf("Angles().X = %f, want 0.5", got)
	}
}

func TestMotionReset(t *testing.T) {
	m := NewMotion()
	m.OnKeyDown(NewKeyEvent(KeyArrowLeft))
	m.OnKeyDown(NewKeyEvent(KeyArrowUp))
	m.Update()
	m.Reset()

	if m.Angles() != (RotationState{}) {
		t.Errorf("Angles() = %+v after Reset", m.Angles())
	}
	if m.Intent() != (AngularIntent{}) {
		t.Errorf("Intent() = %+v after Reset", m.Intent())
	}
}
