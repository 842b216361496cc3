package wirecube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec4 is a homogeneous point or vector. It is never mutated; matrices
// produce new values.
type Vec4 struct {
	x, y, z, w float64
}

func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x: x, y: y, z: z, w: w}
}

// NewPoint returns the point (x, y, z) with W set to 1.0.
func NewPoint(x, y, z float64) Vec4 {
	return Vec4{x: x, y: y, z: z, w: 1.0}
}

// NewPointInt is NewPoint for integer model coordinates.
func NewPointInt(x, y, z int) Vec4 {
	return NewPoint(float64(x), float64(y), float64(z))
}

func (v Vec4) X() float64 { return v.x }
func (v Vec4) Y() float64 { return v.y }
func (v Vec4) Z() float64 { return v.z }
func (v Vec4) W() float64 { return v.w }

// Mgl converts to the mathgl representation.
func (v Vec4) Mgl() mgl64.Vec4 {
	return mgl64.Vec4{v.x, v.y, v.z, v.w}
}

func Vec4FromMgl(v mgl64.Vec4) Vec4 {
	return Vec4{x: v[0], y: v[1], z: v[2], w: v[3]}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f)", v.x, v.y, v.z, v.w)
}
