package wirecube

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a row-major 4x4 matrix applied as matrix * vector.
type Mat4 struct {
	m [4][4]float64
}

func NewMat4(rows [4][4]float64) Mat4 {
	return Mat4{m: rows}
}

func IdentMatrix() Mat4 {
	return Mat4{m: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (m Mat4) At(row, col int) float64 {
	return m.m[row][col]
}

// Rows returns a copy of the matrix data.
func (m Mat4) Rows() [4][4]float64 {
	return m.m
}

// MulVec returns m * v. Component i is the dot product of row i with v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	var out [4]float64
	in := [4]float64{v.x, v.y, v.z, v.w}
	for i := 0; i < 4; i++ {
		out[i] = m.m[i][0]*in[0] + m.m[i][1]*in[1] + m.m[i][2]*in[2] + m.m[i][3]*in[3]
	}
	return Vec4{x: out[0], y: out[1], z: out[2], w: out[3]}
}

// Mgl converts to mathgl's column-major layout.
func (m Mat4) Mgl() mgl64.Mat4 {
	var out mgl64.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Set(row, col, m.m[row][col])
		}
	}
	return out
}

// Mat4FromMgl reads a mathgl matrix back into row-major form.
func Mat4FromMgl(m mgl64.Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.m[row][col] = m.At(row, col)
		}
	}
	return out
}

func (m Mat4) String() string {
	var sb strings.Builder
	for i, row := range m.m {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
