package wirecube

import (
	"fmt"
	"image/color"
)

// recordingSurface is a mock Surface that logs each draw call.
type recordingSurface struct {
	ops []drawOp
}

type drawOp struct {
	kind string
	args []float64
	text string
	clr  color.RGBA
}

func (s *recordingSurface) FillRect(x, y, width, height float64, clr color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "rect", args: []float64{x, y, width, height}, clr: clr})
}

func (s *recordingSurface) FillCircle(x, y, radius float64, clr color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "circle", args: []float64{x, y, radius}, clr: clr})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2 float64, clr color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "line", args: []float64{x1, y1, x2, y2}, clr: clr})
}

func (s *recordingSurface) FillText(text string, x, y float64, clr color.RGBA) {
	s.ops = append(s.ops, drawOp{kind: "text", args: []float64{x, y}, text: text, clr: clr})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) kinds() string {
	out := ""
	for i, op := range s.ops {
		if i > 0 && op.kind == s.ops[i-1].kind {
			continue
		}
		out += fmt.Sprintf("%s ", op.kind)
	}
	return out
}
