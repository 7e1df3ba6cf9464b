package shape

import "image/color"

const (
	// StrokeWidth is used by every tool except the eraser.
	StrokeWidth = 1.0
	// EraserWidth is the line weight of eraser strokes.
	EraserWidth = 8.0
)

// DashPattern is the on/off run used by every dashed shape. Strokes start
// DashOffset into the pattern, so the first dash is 4 pixels long.
var DashPattern = []float64{6, 6}

const DashOffset = 2.0

// Background is the canvas color; erasers paint with it.
var Background = White

// Pen is the stroke state a shape sets before issuing primitives.
// A nil Dash means a continuous line.
type Pen struct {
	Color      color.Color
	Width      float64
	Dash       []float64
	DashOffset float64
}

// Surface is the primitive drawing capability supplied by the host.
// Rect and Oval outline the box with top-left origin and the given size.
type Surface interface {
	SetPen(p Pen)
	Line(a, b Point)
	Rect(origin Point, w, h int)
	Oval(origin Point, w, h int)
}

// OpKind names a recorded primitive.
type OpKind int

const (
	OpLine OpKind = iota + 1
	OpRect
	OpOval
)

// Op is one primitive captured by a Recorder.
type Op struct {
	Kind OpKind
	Pen  Pen
	A, B Point
	W, H int
}

// Recorder is a Surface that remembers every primitive it receives.
type Recorder struct {
	pen Pen
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) SetPen(p Pen) { r.pen = p }

func (r *Recorder) Line(a, b Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Pen: r.pen, A: a, B: b})
}

func (r *Recorder) Rect(origin Point, w, h int) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Pen: r.pen, A: origin, W: w, H: h})
}

func (r *Recorder) Oval(origin Point, w, h int) {
	r.Ops = append(r.Ops, Op{Kind: OpOval, Pen: r.pen, A: origin, W: w, H: h})
}

// Reset drops the recorded primitives.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
