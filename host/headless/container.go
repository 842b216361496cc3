package headless

import (
	"errors"
	"fmt"

	"github.com/smasonuk/wirecube"
)

// Container holds mounted canvases in insertion order.
type Container struct {
	// AppendErr, when set, makes AppendChild fail with this error.
	AppendErr error

	children []*Canvas
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) AppendChild(child wirecube.Canvas) error {
	if c.AppendErr != nil {
		return c.AppendErr
	}
	canvas, ok := child.(*Canvas)
	if !ok {
		return fmt.Errorf("cannot append %T", child)
	}
	if canvas == nil {
		return errors.New("cannot append nil canvas")
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

// Children returns the mounted canvases.
func (c *Container) Children() []*Canvas {
	return append([]*Canvas(nil), c.children...)
}
