// Package headless is a wirecube host without a window. Frames are pumped
// by Step or by Run's ticker and canvases are plain RGBA images.
package headless

import (
	"github.com/smasonuk/wirecube"
	"github.com/smasonuk/wirecube/host/eventloop"
)

// Host is an in-memory window with a document, a body, a key event source
// and an animation scheduler. The flags and CreateErr simulate broken host
// environments.
type Host struct {
	NoWindow   bool
	NoDocument bool
	NoBody     bool
	// CreateErr, when set, makes canvas creation fail with this error.
	CreateErr error

	events *eventloop.Events
	frames *eventloop.Scheduler
	body   *Container
}

func NewHost() *Host {
	return &Host{
		events: eventloop.NewEvents(),
		frames: eventloop.NewScheduler(),
		body:   NewContainer(),
	}
}

func (h *Host) Window() wirecube.Window {
	if h.NoWindow {
		return nil
	}
	return hostWindow{h: h}
}

func (h *Host) Events() *eventloop.Events    { return h.events }
func (h *Host) Frames() *eventloop.Scheduler { return h.frames }
func (h *Host) Body() *Container             { return h.body }

// Step runs one animation frame's worth of callbacks.
func (h *Host) Step() int { return h.frames.Step() }

type hostWindow struct {
	h *Host
}

func (w hostWindow) Document() wirecube.Document {
	if w.h.NoDocument {
		return nil
	}
	return hostDocument{h: w.h}
}

func (w hostWindow) Events() wirecube.EventSource  { return w.h.events }
func (w hostWindow) Scheduler() wirecube.Scheduler { return w.h.frames }

type hostDocument struct {
	h *Host
}

func (d hostDocument) CreateCanvas(width, height int) (wirecube.Canvas, error) {
	if d.h.CreateErr != nil {
		return nil, d.h.CreateErr
	}
	return NewCanvas(width, height), nil
}

func (d hostDocument) Body() wirecube.Container {
	if d.h.NoBody {
		return nil
	}
	return d.h.body
}
