// Package shape holds the drawable primitives of the board: lines,
// rectangles, ovals, freehand strokes and eraser strokes.
package shape

import (
	"image"
	"slices"
)

// Shape is a tagged union over the five drawable variants. Kind selects
// which geometry fields are meaningful:
//
//	ToolLine                 Start, End
//	ToolRectangle, ToolOval  Anchor, Origin, Width, Height
//	ToolFreehand, ToolEraser Points
//
// Style is set by New and never changed afterwards.
type Shape struct {
	ID   string
	Seq  uint64
	Kind Tool

	Start, End Point

	Anchor        Point
	Origin        Point
	Width, Height int

	Points []Point

	style StrokeStyle
}

// New starts a shape of the given tool anchored at p. The eraser ignores
// the requested color and always paints with Background.
func New(tool Tool, p Point, style StrokeStyle) (*Shape, error) {
	s := &Shape{Kind: tool, style: style}
	switch tool {
	case ToolLine:
		s.Start, s.End = p, p
	case ToolRectangle, ToolOval:
		s.Anchor, s.Origin = p, p
	case ToolFreehand:
		s.Points = []Point{p}
	case ToolEraser:
		s.Points = []Point{p}
		s.style.Color = Background
	default:
		return nil, &ConfigurationError{Tool: tool}
	}
	return s, nil
}

func (s *Shape) Style() StrokeStyle { return s.style }

// Extend updates the geometry for a new pointer location.
func (s *Shape) Extend(p Point) {
	switch s.Kind {
	case ToolLine:
		s.End = p
	case ToolRectangle, ToolOval:
		s.Origin = Point{X: min(s.Anchor.X, p.X), Y: min(s.Anchor.Y, p.Y)}
		s.Width = abs(p.X - s.Anchor.X)
		s.Height = abs(p.Y - s.Anchor.Y)
	case ToolFreehand, ToolEraser:
		s.Points = append(s.Points, p)
	}
}

// Pen returns the stroke state the shape renders with.
func (s *Shape) Pen() Pen {
	pen := Pen{Color: s.style.Color, Width: StrokeWidth}
	if s.Kind == ToolEraser {
		pen.Width = EraserWidth
	}
	if s.style.Dashed {
		pen.Dash = DashPattern
		pen.DashOffset = DashOffset
	}
	return pen
}

// Render paints the shape onto dst. It does not modify the shape.
func (s *Shape) Render(dst Surface) {
	dst.SetPen(s.Pen())
	switch s.Kind {
	case ToolLine:
		dst.Line(s.Start, s.End)
	case ToolRectangle:
		dst.Rect(s.Origin, s.Width, s.Height)
	case ToolOval:
		dst.Oval(s.Origin, s.Width, s.Height)
	case ToolFreehand, ToolEraser:
		for i := 1; i < len(s.Points); i++ {
			dst.Line(s.Points[i-1], s.Points[i])
		}
	}
}

// Bounds is the smallest rectangle covering the shape's geometry, not
// counting line width.
func (s *Shape) Bounds() image.Rectangle {
	switch s.Kind {
	case ToolLine:
		return image.Rect(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
	case ToolRectangle, ToolOval:
		return image.Rect(s.Origin.X, s.Origin.Y, s.Origin.X+s.Width, s.Origin.Y+s.Height)
	}
	if len(s.Points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// Clone returns a deep copy that shares no point storage with s.
func (s *Shape) Clone() *Shape {
	c := *s
	c.Points = slices.Clone(s.Points)
	return &c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
