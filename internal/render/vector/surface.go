// Package vector renders shapes as Fyne canvas lines. Every primitive is
// turned into a curve path, dashed when the pen asks for it, then flattened
// into straight segments.
package vector

import (
	"image/color"
	"iter"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"honnef.co/go/curve"

	"PaintBoard/internal/shape"
)

// Tolerance is the maximum distance in pixels between a flattened segment
// and the exact curve.
const Tolerance = 0.25

// Surface collects canvas objects for one repaint.
type Surface struct {
	pen     shape.Pen
	objects []fyne.CanvasObject
}

var _ shape.Surface = (*Surface)(nil)

func New() *Surface { return &Surface{} }

func (s *Surface) SetPen(p shape.Pen) { s.pen = p }

func (s *Surface) Line(a, b shape.Point) {
	s.stroke(curve.Line{P0: pt(a), P1: pt(b)}.PathElements(Tolerance))
}

func (s *Surface) Rect(origin shape.Point, w, h int) {
	s.stroke(box(origin, w, h).PathElements(Tolerance))
}

func (s *Surface) Oval(origin shape.Point, w, h int) {
	if w == 0 || h == 0 {
		// A flat box has no ellipse; it degenerates to its diagonal.
		s.Line(origin, shape.Pt(origin.X+w, origin.Y+h))
		return
	}
	s.stroke(curve.NewEllipseFromRect(box(origin, w, h)).PathElements(Tolerance))
}

// Objects returns everything drawn since the last Reset, in paint order.
func (s *Surface) Objects() []fyne.CanvasObject { return s.objects }

// Reset drops the collected objects, keeping the backing storage.
func (s *Surface) Reset() {
	clear(s.objects)
	s.objects = s.objects[:0]
}

func (s *Surface) stroke(path iter.Seq[curve.PathElement]) {
	if len(s.pen.Dash) > 0 {
		path = curve.Dash(path, s.pen.DashOffset, s.pen.Dash)
	}
	var start, last curve.Point
	for el := range curve.Flatten(path, Tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			start, last = el.P0, el.P0
		case curve.LineToKind:
			s.segment(last, el.P0)
			last = el.P0
		case curve.ClosePathKind:
			if last != start {
				s.segment(last, start)
			}
			last = start
		}
	}
}

func (s *Surface) segment(a, b curve.Point) {
	col := s.pen.Color
	if col == nil {
		col = color.Black
	}
	l := canvas.NewLine(col)
	l.StrokeWidth = float32(s.pen.Width)
	l.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	l.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	s.objects = append(s.objects, l)
}

func pt(p shape.Point) curve.Point {
	return curve.Pt(float64(p.X), float64(p.Y))
}

func box(origin shape.Point, w, h int) curve.Rect {
	return curve.NewRectFromOrigin(pt(origin), curve.Sz(float64(w), float64(h)))
}
