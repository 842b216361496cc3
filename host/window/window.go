// Package window hosts wirecube in an ebiten desktop window. Ebiten's
// update loop is the event loop: it polls the keyboard, then runs the
// animation frames, and Draw shows the mounted canvases.
package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smasonuk/wirecube"
	"github.com/smasonuk/wirecube/host/eventloop"
)

// Host is a wirecube.Host backed by a single ebiten window.
type Host struct {
	title string
	scale int

	events *eventloop.Events
	frames *eventloop.Scheduler
	body   *Container
	quit   bool
}

func NewHost(title string, scale int) *Host {
	if scale <= 0 {
		scale = 1
	}
	return &Host{
		title:  title,
		scale:  scale,
		events: eventloop.NewEvents(),
		frames: eventloop.NewScheduler(),
		body:   &Container{},
	}
}

func (h *Host) Window() wirecube.Window { return hostWindow{h: h} }

func (h *Host) Events() *eventloop.Events { return h.events }

// Quit closes the window after the current update.
func (h *Host) Quit() { h.quit = true }

// Run opens the window and blocks until it is closed or Quit is called.
func Run(h *Host) error {
	w, ht := h.layoutSize()
	ebiten.SetWindowSize(w*h.scale, ht*h.scale)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetTPS(60)

	log.Printf("Opening window %q...", h.title)
	err := ebiten.RunGame(&hostGame{h: h})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (h *Host) layoutSize() (int, int) {
	if len(h.body.children) == 0 {
		return wirecube.CanvasWidth, wirecube.CanvasHeight
	}
	c := h.body.children[0]
	return c.width, c.height
}

type hostGame struct {
	h *Host
}

func (g *hostGame) Update() error {
	pollKeys(g.h.events)
	g.h.frames.Step()
	if g.h.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(wirecube.ColorBackground)
	for _, c := range g.h.body.children {
		screen.DrawImage(c.img, nil)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.layoutSize()
}

type hostWindow struct {
	h *Host
}

func (w hostWindow) Document() wirecube.Document   { return hostDocument{h: w.h} }
func (w hostWindow) Events() wirecube.EventSource  { return w.h.events }
func (w hostWindow) Scheduler() wirecube.Scheduler { return w.h.frames }

type hostDocument struct {
	h *Host
}

func (d hostDocument) CreateCanvas(width, height int) (wirecube.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return newCanvas(width, height), nil
}

func (d hostDocument) Body() wirecube.Container { return d.h.body }

// Container is the window's list of visible canvases, drawn in order.
type Container struct {
	children []*Canvas
}

func (c *Container) AppendChild(child wirecube.Canvas) error {
	canvas, ok := child.(*Canvas)
	if !ok || canvas == nil {
		return fmt.Errorf("cannot append %T to window", child)
	}
	canvas.Remove()
	canvas.parent = c
	c.children = append(c.children, canvas)
	return nil
}

func (c *Container) removeChild(canvas *Canvas) {
	for i, child := range c.children {
		if child == canvas {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}
