package wirecube

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects a rotation axis for NewRotationMatrix.
type Axis int

const (
	RotX Axis = iota
	RotY
	RotZ
)

func (a Axis) String() string {
	switch a {
	case RotX:
		return "x"
	case RotY:
		return "y"
	case RotZ:
		return "z"
	}
	return "unknown"
}

// NewRotationMatrix returns the right-handed rotation by theta radians about
// the given axis. Unknown axes yield the identity.
func NewRotationMatrix(axis Axis, theta float64) Mat4 {
	switch axis {
	case RotX:
		return Mat4FromMgl(mgl64.HomogRotate3DX(theta))
	case RotY:
		return Mat4FromMgl(mgl64.HomogRotate3DY(theta))
	case RotZ:
		return Mat4FromMgl(mgl64.HomogRotate3DZ(theta))
	}
	return IdentMatrix()
}

func RotationX(theta float64) Mat4 { return NewRotationMatrix(RotX, theta) }
func RotationY(theta float64) Mat4 { return NewRotationMatrix(RotY, theta) }
func RotationZ(theta float64) Mat4 { return NewRotationMatrix(RotZ, theta) }

// Translation is the identity with the translation column set.
func Translation(dx, dy, dz float64) Mat4 {
	return Mat4FromMgl(mgl64.Translate3D(dx, dy, dz))
}

// Perspective builds the projection matrix used by the Projector. The last
// row copies the incoming z into w so that dividing by w gives the
// perspective foreshortening.
//
// fov must lie in (0, pi) and zFar > zNear > 0. Other inputs give a
// degenerate matrix rather than an error.
func Perspective(width, height, fov, zNear, zFar float64) Mat4 {
	a := height / width
	f := 1.0 / math.Tan(fov*0.5)
	q1 := zFar / (zFar - zNear)
	q2 := (-zFar * zNear) / (zFar - zNear)

	return NewMat4([4][4]float64{
		{a * f, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, q1, q2},
		{0, 0, 1, 0},
	})
}
