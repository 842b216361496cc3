package wirecube

import (
	"fmt"
	"log"
)

// LoopState is the render loop's lifecycle state.
type LoopState int

const (
	Idle LoopState = iota
	Running
)

func (s LoopState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return fmt.Sprintf("LoopState(%d)", int(s))
}

// Options configures New.
type Options struct {
	// Container receives the canvas. Nil mounts it into the document body.
	Container Container
	// DevMode is reserved. Nothing reads it yet.
	DevMode bool
	// Logic drives each frame. Nil selects a CubeLogic sized to the canvas.
	Logic Logic
}

// Game owns a canvas and runs a render loop on it. All methods must be
// called from the host's event loop, the same goroutine that delivers key
// events and animation frames.
type Game struct {
	canvas  Canvas
	events  EventSource
	frames  Scheduler
	logic   Logic
	devMode bool

	state      LoopState
	pending    FrameID
	hasPending bool
	keydown    *EventHandler
	keyup      *EventHandler
	lifecycle  lifecycleEvents
	closed     bool
}

// New creates the canvas and mounts it. Any failure to find a window,
// document or container, or to create and attach the canvas, is returned
// and nothing is left mounted.
func New(host Host, opts Options) (*Game, error) {
	log.Println("Creating canvas...")
	win, canvas, err := createCanvas(host, opts.Container)
	if err != nil {
		return nil, err
	}

	logic := opts.Logic
	if logic == nil {
		cfg := DefaultProjectionConfig()
		cfg.Width = float64(canvas.Width())
		cfg.Height = float64(canvas.Height())
		logic = NewCubeLogic(cfg)
	}

	g := &Game{
		canvas:  canvas,
		events:  win.Events(),
		frames:  win.Scheduler(),
		logic:   logic,
		devMode: opts.DevMode,
	}
	log.Printf("Canvas %dx%d mounted.", canvas.Width(), canvas.Height())
	return g, nil
}

func createCanvas(host Host, container Container) (Window, Canvas, error) {
	if host == nil {
		return nil, nil, ErrNoWindow
	}
	win := host.Window()
	if win == nil {
		return nil, nil, ErrNoWindow
	}
	doc := win.Document()
	if doc == nil {
		return nil, nil, ErrNoDocument
	}

	canvas, err := doc.CreateCanvas(CanvasWidth, CanvasHeight)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCanvasCreation, err)
	}

	if container == nil {
		container = doc.Body()
	}
	if container == nil {
		return nil, nil, ErrNoContainer
	}
	if err := container.AppendChild(canvas); err != nil {
		canvas.Remove()
		return nil, nil, fmt.Errorf("%w: %w", ErrAppendChild, err)
	}
	return win, canvas, nil
}

// Run starts the loop. It does nothing if the loop is already running or
// the game has been closed.
func (g *Game) Run() {
	if g.closed || g.state == Running {
		return
	}

	g.logic.Setup()
	g.keydown = NewEventHandler(g.events, EventKeyDown, g.logic.OnKeyDown)
	g.keyup = NewEventHandler(g.events, EventKeyUp, g.logic.OnKeyUp)
	g.requestFrame()
	g.state = Running

	g.lifecycle.dispatch(EventRunning, g)
}

// Stop halts the loop and cancels the pending frame. It does nothing if the
// loop is idle.
func (g *Game) Stop() {
	if g.state == Idle {
		return
	}

	g.unsubscribe()
	g.cancelFrame()
	g.state = Idle

	g.lifecycle.dispatch(EventRunning, g)
}

// Reset restarts the loop from a clean first frame with zeroed state.
func (g *Game) Reset() {
	g.Stop()
	g.Run()
}

// Close tears the game down for good: it drops key listeners, cancels any
// pending frame and detaches the canvas. It does not notify listeners and
// may be called more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true

	g.unsubscribe()
	g.cancelFrame()
	g.state = Idle
	g.canvas.Remove()
	log.Println("Canvas removed.")
}

func (g *Game) requestFrame() {
	var id FrameID
	id = g.frames.RequestAnimationFrame(func() {
		g.tick(id)
	})
	g.pending = id
	g.hasPending = true
}

func (g *Game) cancelFrame() {
	if !g.hasPending {
		return
	}
	g.frames.CancelAnimationFrame(g.pending)
	g.hasPending = false
}

func (g *Game) unsubscribe() {
	g.keydown.Close()
	g.keyup.Close()
	g.keydown, g.keyup = nil, nil
}

// tick runs one frame. A callback whose frame is no longer the pending one
// was cancelled and must neither draw nor schedule a successor.
func (g *Game) tick(id FrameID) {
	if !g.hasPending || g.pending != id {
		return
	}
	g.hasPending = false

	g.lifecycle.dispatch(EventFrame, g)

	g.logic.Update()
	g.logic.Draw(g.canvas)

	// a frame listener may have restarted the loop, which already
	// requested a frame
	if g.state == Running && !g.hasPending {
		g.requestFrame()
	}
}

func (g *Game) State() LoopState { return g.state }
func (g *Game) IsRunning() bool  { return g.state == Running }
func (g *Game) Canvas() Canvas   { return g.canvas }
func (g *Game) Logic() Logic     { return g.logic }
func (g *Game) DevMode() bool    { return g.devMode }

// AddEventListener subscribes to EventRunning or EventFrame.
func (g *Game) AddEventListener(name string, fn func(*Game)) ListenerID {
	return g.lifecycle.add(name, fn)
}

func (g *Game) RemoveEventListener(name string, id ListenerID) {
	g.lifecycle.remove(name, id)
}
