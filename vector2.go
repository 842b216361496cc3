package wirecube

import "math"

// Vector2 is a screen-space direction.
type Vector2 struct {
	X float64
	Y float64
}

// NewVectorFromAngle returns the unit vector at angle radians, measured
// counter-clockwise from +X in a Y-up frame.
func NewVectorFromAngle(angle float64) Vector2 {
	return Vector2{
		X: math.Cos(angle),
		Y: math.Sin(angle),
	}
}

func (v Vector2) Normalize() Vector2 {
	magnitude := math.Sqrt(v.X*v.X + v.Y*v.Y)

	if magnitude == 0 {
		return Vector2{X: 0, Y: 0}
	}

	return Vector2{X: v.X / magnitude, Y: v.Y / magnitude}
}

func RotateVector2(v Vector2, angle float64) Vector2 {
	cosAngle := math.Cos(angle)
	sinAngle := math.Sin(angle)

	return Vector2{
		X: v.X*cosAngle - v.Y*sinAngle,
		Y: v.X*sinAngle + v.Y*cosAngle,
	}
}

// mult by scalar
func (v Vector2) Mult(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// FlipY converts between Y-up and the surface's Y-down frame.
func (v Vector2) FlipY() Vector2 {
	return Vector2{X: v.X, Y: -v.Y}
}
