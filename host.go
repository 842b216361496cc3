package wirecube

// Fixed canvas size in logical units.
const (
	CanvasWidth  = 480
	CanvasHeight = 360
)

// Event kinds delivered by an EventSource.
const (
	EventKeyDown = "keydown"
	EventKeyUp   = "keyup"
)

// Host is the only contact point between the renderer and the outside world.
type Host interface {
	// Window returns nil when no window is available.
	Window() Window
}

type Window interface {
	// Document returns nil when the window has no document.
	Document() Document
	Events() EventSource
	Scheduler() Scheduler
}

type Document interface {
	CreateCanvas(width, height int) (Canvas, error)
	// Body returns nil when the document has no default container.
	Body() Container
}

type Container interface {
	AppendChild(c Canvas) error
}

// Canvas is a drawing surface element owned by a document.
type Canvas interface {
	Surface
	Width() int
	Height() int
	// Remove detaches the canvas from its container. Removing a detached
	// canvas does nothing.
	Remove()
}

type ListenerID uint64

type EventSource interface {
	AddEventListener(kind string, fn func(*KeyEvent)) ListenerID
	RemoveEventListener(kind string, id ListenerID)
}

type FrameID uint64

// Scheduler runs callbacks before the next repaint.
type Scheduler interface {
	RequestAnimationFrame(fn func()) FrameID
	// CancelAnimationFrame drops a pending callback. Unknown or already run
	// IDs are ignored.
	CancelAnimationFrame(id FrameID)
}
