package wirecube

import (
	"errors"
	"fmt"
	"math"
)

// CameraDistance pushes the model in front of the near plane.
const CameraDistance = 3.0

// ProjectionConfig holds everything the perspective matrix depends on.
type ProjectionConfig struct {
	FieldOfView float64 // radians
	ZNear       float64
	ZFar        float64
	Width       float64
	Height      float64
}

func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		FieldOfView: math.Pi / 2,
		ZNear:       0.1,
		ZFar:        1000,
		Width:       CanvasWidth,
		Height:      CanvasHeight,
	}
}

// Validate reports inputs for which Perspective degenerates.
func (c ProjectionConfig) Validate() error {
	if !(c.FieldOfView > 0 && c.FieldOfView < math.Pi) {
		return fmt.Errorf("field of view %f outside (0, pi)", c.FieldOfView)
	}
	if !(c.ZNear > 0) {
		return fmt.Errorf("zNear %f must be positive", c.ZNear)
	}
	if !(c.ZFar > c.ZNear) {
		return fmt.Errorf("zFar %f must be greater than zNear %f", c.ZFar, c.ZNear)
	}
	if !(c.Width > 0 && c.Height > 0) {
		return errors.New("viewport must have a positive size")
	}
	return nil
}

// Projector maps model-space points to device coordinates. The perspective
// matrix is cached and rebuilt by every setter.
type Projector struct {
	cfg         ProjectionConfig
	perspective Mat4
	camera      Mat4
}

func NewProjector(cfg ProjectionConfig) *Projector {
	p := &Projector{camera: Translation(0, 0, CameraDistance)}
	p.SetConfig(cfg)
	return p
}

func (p *Projector) Config() ProjectionConfig {
	return p.cfg
}

func (p *Projector) SetConfig(cfg ProjectionConfig) {
	p.cfg = cfg
	p.perspective = Perspective(cfg.Width, cfg.Height, cfg.FieldOfView, cfg.ZNear, cfg.ZFar)
}

func (p *Projector) SetFieldOfView(fov float64) {
	cfg := p.cfg
	cfg.FieldOfView = fov
	p.SetConfig(cfg)
}

func (p *Projector) SetDepthRange(zNear, zFar float64) {
	cfg := p.cfg
	cfg.ZNear, cfg.ZFar = zNear, zFar
	p.SetConfig(cfg)
}

func (p *Projector) SetViewport(width, height float64) {
	cfg := p.cfg
	cfg.Width, cfg.Height = width, height
	p.SetConfig(cfg)
}

// Project runs point through rotate X, Y, Z, the camera translation, the
// perspective matrix, the divide by w and the viewport map, in that order.
// A w at or near zero gives Inf or NaN coordinates; nothing is clamped.
func (p *Projector) Project(point Vec4, rx, ry, rz float64) (float64, float64) {
	v := RotationX(rx).MulVec(point)
	v = RotationY(ry).MulVec(v)
	v = RotationZ(rz).MulVec(v)
	v = p.camera.MulVec(v)
	v = p.perspective.MulVec(v)

	invW := 1.0 / v.W()
	x := v.X() * invW
	y := v.Y() * invW

	halfW := 0.5 * p.cfg.Width
	halfH := 0.5 * p.cfg.Height
	return x*halfW + halfW, y*halfH + halfH
}
