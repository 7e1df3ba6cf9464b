// Package raster paints shapes into an image with the gg software
// renderer.
package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"PaintBoard/internal/shape"
)

// Renderer is anything that can repaint itself onto a surface, such as
// *state.Board.
type Renderer interface {
	Render(dst shape.Surface)
}

// Surface adapts a gg.Context to shape.Surface. Primitives are stroked
// immediately; the first stroke error is kept and reported by Err.
type Surface struct {
	dc  *gg.Context
	err error
}

var _ shape.Surface = (*Surface)(nil)

// New creates a w×h surface filled with the background color.
func New(w, h int) *Surface {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.FromColor(shape.Background))
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Surface{dc: dc}
}

func (s *Surface) SetPen(p shape.Pen) {
	s.dc.SetColor(p.Color)
	s.dc.SetLineWidth(p.Width)
	if len(p.Dash) > 0 {
		s.dc.SetDash(p.Dash...)
		s.dc.SetDashOffset(p.DashOffset)
	} else {
		s.dc.ClearDash()
	}
}

func (s *Surface) Line(a, b shape.Point) {
	s.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	s.stroke()
}

func (s *Surface) Rect(origin shape.Point, w, h int) {
	s.dc.DrawRectangle(float64(origin.X), float64(origin.Y), float64(w), float64(h))
	s.stroke()
}

func (s *Surface) Oval(origin shape.Point, w, h int) {
	rx, ry := float64(w)/2, float64(h)/2
	s.dc.DrawEllipse(float64(origin.X)+rx, float64(origin.Y)+ry, rx, ry)
	s.stroke()
}

func (s *Surface) stroke() {
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = fmt.Errorf("raster stroke: %w", err)
	}
}

// Err returns the first stroke failure, if any.
func (s *Surface) Err() error { return s.err }

// Image returns the painted pixels.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// Close releases the underlying context.
func (s *Surface) Close() error { return s.dc.Close() }

// Snapshot repaints r from scratch into a new w×h image.
func Snapshot(r Renderer, w, h int) (image.Image, error) {
	s := New(w, h)
	defer s.Close()
	r.Render(s)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s.Image(), nil
}
