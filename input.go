package wirecube

// Recognized key identifiers.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// RotationStep is the angle added per tick for a held key, in radians.
const RotationStep = 0.1

// KeyEvent is a raw key-down or key-up from the host.
type KeyEvent struct {
	Key              string
	defaultPrevented bool
}

func NewKeyEvent(key string) *KeyEvent {
	return &KeyEvent{Key: key}
}

// PreventDefault tells the host to skip its own handling of the key.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

func isArrowKey(key string) bool {
	switch key {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

// RotationState holds the cumulative rotation angles in radians.
type RotationState struct {
	X, Y, Z float64
}

// AngularIntent holds the signed per-axis velocity requested by held keys.
type AngularIntent struct {
	X, Y int
}

// Motion turns arrow keys into rotation. Up/Down drive the Y intent and
// Left/Right the X intent.
type Motion struct {
	angles RotationState
	intent AngularIntent
}

func NewMotion() *Motion {
	return &Motion{}
}

func (m *Motion) OnKeyDown(e *KeyEvent) {
	switch e.Key {
	case KeyArrowUp:
		m.intent.Y = 1
	case KeyArrowDown:
		m.intent.Y = -1
	case KeyArrowLeft:
		m.intent.X = -1
	case KeyArrowRight:
		m.intent.X = 1
	default:
		return
	}
	e.PreventDefault()
}

func (m *Motion) OnKeyUp(e *KeyEvent) {
	switch e.Key {
	case KeyArrowUp, KeyArrowDown:
		m.intent.Y = 0
	case KeyArrowLeft, KeyArrowRight:
		m.intent.X = 0
	default:
		return
	}
	e.PreventDefault()
}

// Update advances the angles by one tick. Holding an X and a Y key together
// spins about Z in the direction of the Y intent instead of combining the two
// rotations.
func (m *Motion) Update() {
	switch {
	case m.intent.X != 0 && m.intent.Y != 0:
		m.angles.Z += RotationStep * float64(m.intent.Y)
	case m.intent.X != 0:
		m.angles.X += RotationStep * float64(m.intent.X)
	case m.intent.Y != 0:
		m.angles.Y += RotationStep * float64(m.intent.Y)
	}
}

func (m *Motion) Reset() {
	m.angles = RotationState{}
	m.intent = AngularIntent{}
}

func (m *Motion) Angles() RotationState {
	return m.angles
}

func (m *Motion) Intent() AngularIntent {
	return m.intent
}
