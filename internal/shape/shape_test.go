package shape

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, tool Tool, p Point, style StrokeStyle) *Shape {
	t.Helper()
	s, err := New(tool, p, style)
	require.NoError(t, err)
	return s
}

func TestBoxNormalization(t *testing.T) {
	for _, tool := range []Tool{ToolRectangle, ToolOval} {
		t.Run(tool.String(), func(t *testing.T) {
			s := mustNew(t, tool, Pt(10, 10), StrokeStyle{})
			s.Extend(Pt(4, 2))
			assert.Equal(t, Pt(4, 2), s.Origin)
			assert.Equal(t, 6, s.Width)
			assert.Equal(t, 8, s.Height)

			s.Extend(Pt(16, 18))
			assert.Equal(t, Pt(10, 10), s.Origin)
			assert.Equal(t, 6, s.Width)
			assert.Equal(t, 8, s.Height)
		})
	}
}

func TestBoxExtendUsesAnchor(t *testing.T) {
	s := mustNew(t, ToolRectangle, Pt(10, 10), StrokeStyle{})
	s.Extend(Pt(0, 0))
	s.Extend(Pt(5, 20))
	assert.Equal(t, Pt(5, 10), s.Origin)
	assert.Equal(t, 5, s.Width)
	assert.Equal(t, 10, s.Height)
	assert.Equal(t, Pt(10, 10), s.Anchor)
}

func TestLineKeepsStart(t *testing.T) {
	s := mustNew(t, ToolLine, Pt(1, 2), StrokeStyle{})
	assert.Equal(t, Pt(1, 2), s.End)
	s.Extend(Pt(7, 7))
	s.Extend(Pt(9, 3))
	assert.Equal(t, Pt(1, 2), s.Start)
	assert.Equal(t, Pt(9, 3), s.End)
}

func TestFreehandAccumulates(t *testing.T) {
	s := mustNew(t, ToolFreehand, Pt(0, 0), StrokeStyle{Color: Red})
	s.Extend(Pt(1, 1))
	s.Extend(Pt(2, 2))
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, s.Points)

	var rec Recorder
	s.Render(&rec)
	require.Len(t, rec.Ops, 2)
	assert.Equal(t, Op{Kind: OpLine, Pen: Pen{Color: Red, Width: StrokeWidth}, A: Pt(0, 0), B: Pt(1, 1)}, rec.Ops[0])
	assert.Equal(t, Pt(1, 1), rec.Ops[1].A)
	assert.Equal(t, Pt(2, 2), rec.Ops[1].B)
}

func TestSinglePointStrokeDrawsNothing(t *testing.T) {
	s := mustNew(t, ToolFreehand, Pt(3, 3), StrokeStyle{})
	var rec Recorder
	s.Render(&rec)
	assert.Empty(t, rec.Ops)
}

func TestEraserPen(t *testing.T) {
	s := mustNew(t, ToolEraser, Pt(0, 0), StrokeStyle{Color: Red, Dashed: true})
	s.Extend(Pt(5, 0))

	pen := s.Pen()
	assert.Equal(t, Background, pen.Color)
	assert.Equal(t, EraserWidth, pen.Width)
	assert.Equal(t, DashPattern, pen.Dash)
	assert.Equal(t, DashOffset, pen.DashOffset)
	assert.Equal(t, Background, s.Style().Color)
	assert.True(t, s.Style().Dashed)
}

func TestRenderPrimitives(t *testing.T) {
	style := StrokeStyle{Color: Blue, Dashed: true}
	rect := mustNew(t, ToolRectangle, Pt(10, 10), style)
	rect.Extend(Pt(20, 30))
	oval := mustNew(t, ToolOval, Pt(10, 10), style)
	oval.Extend(Pt(0, 0))

	var rec Recorder
	rect.Render(&rec)
	oval.Render(&rec)
	want := Pen{Color: Blue, Width: StrokeWidth, Dash: DashPattern, DashOffset: DashOffset}
	assert.Equal(t, []Op{
		{Kind: OpRect, Pen: want, A: Pt(10, 10), W: 10, H: 20},
		{Kind: OpOval, Pen: want, A: Pt(0, 0), W: 10, H: 10},
	}, rec.Ops)
}

func TestRenderDoesNotMutate(t *testing.T) {
	s := mustNew(t, ToolFreehand, Pt(0, 0), StrokeStyle{})
	s.Extend(Pt(4, 4))
	before := s.Clone()
	var rec Recorder
	s.Render(&rec)
	s.Render(&rec)
	assert.Equal(t, before, s)
}

func TestUnknownTool(t *testing.T) {
	_, err := New(Tool(42), Pt(0, 0), StrokeStyle{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTool))
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, Tool(42), cfgErr.Tool)
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	got, err := ParseTool(" Pencil ")
	require.NoError(t, err)
	assert.Equal(t, ToolFreehand, got)

	_, err = ParseTool("spray")
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestBounds(t *testing.T) {
	s := mustNew(t, ToolFreehand, Pt(5, 5), StrokeStyle{})
	s.Extend(Pt(1, 9))
	s.Extend(Pt(8, 2))
	assert.Equal(t, image.Rect(1, 2, 8, 9), s.Bounds())

	l := mustNew(t, ToolLine, Pt(9, 9), StrokeStyle{})
	l.Extend(Pt(3, 4))
	assert.Equal(t, image.Rect(3, 4, 9, 9), l.Bounds())
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustNew(t, ToolFreehand, Pt(0, 0), StrokeStyle{})
	c := s.Clone()
	s.Extend(Pt(1, 1))
	assert.Len(t, c.Points, 1)
	assert.Len(t, s.Points, 2)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, Red, ColorOf(Red))
	assert.Equal(t, "#ff0000", Red.String())
}
