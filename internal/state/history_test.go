package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PaintBoard/internal/shape"
)

var shapeCmp = cmp.AllowUnexported(shape.Shape{})

func line(t *testing.T, a, b shape.Point, c shape.Color) *shape.Shape {
	t.Helper()
	s, err := shape.New(shape.ToolLine, a, shape.StrokeStyle{Color: c})
	require.NoError(t, err)
	s.Extend(b)
	return s
}

func sampleHistory(t *testing.T) *History {
	h := &History{}
	h.Append(line(t, shape.Pt(0, 0), shape.Pt(10, 0), shape.Red))
	h.Append(line(t, shape.Pt(0, 5), shape.Pt(10, 5), shape.Blue))
	return h
}

func TestClearIsIdempotent(t *testing.T) {
	once := sampleHistory(t)
	once.Clear()

	twice := sampleHistory(t)
	assert.Equal(t, 2, twice.Clear())
	assert.Equal(t, 0, twice.Clear())

	assert.Zero(t, twice.Len())
	if diff := cmp.Diff(once.Shapes(), twice.Shapes(), shapeCmp); diff != "" {
		t.Errorf("histories differ (-once +twice):\n%s", diff)
	}
}

func TestAppendUndoRestores(t *testing.T) {
	h := sampleHistory(t)
	before := h.Shapes()
	last := before[len(before)-1]

	h.Append(last)
	require.Equal(t, 3, h.Len())
	assert.Same(t, last, h.Undo())

	if diff := cmp.Diff(before, h.Shapes(), shapeCmp); diff != "" {
		t.Errorf("history not restored (-want +got):\n%s", diff)
	}
}

func TestUndoOnEmpty(t *testing.T) {
	var h History
	assert.Nil(t, h.Undo())
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Shapes())
}

func TestShapesIsACopy(t *testing.T) {
	h := sampleHistory(t)
	got := h.Shapes()
	got[0] = nil
	assert.NotNil(t, h.Shapes()[0])

	before := h.Shapes()
	for _, s := range h.Shapes() {
		s.Extend(shape.Pt(99, 99))
	}
	if diff := cmp.Diff(before, h.Shapes(), shapeCmp); diff != "" {
		t.Errorf("history changed through Shapes (-want +got):\n%s", diff)
	}
}

func TestRenderAllOrder(t *testing.T) {
	h := sampleHistory(t)
	inProgress, err := shape.New(shape.ToolOval, shape.Pt(1, 1), shape.StrokeStyle{Color: shape.Green})
	require.NoError(t, err)

	var rec shape.Recorder
	h.RenderAll(&rec, inProgress)
	require.Len(t, rec.Ops, 3)
	assert.Equal(t, shape.Red, rec.Ops[0].Pen.Color)
	assert.Equal(t, shape.Blue, rec.Ops[1].Pen.Color)
	assert.Equal(t, shape.OpOval, rec.Ops[2].Kind)

	rec.Reset()
	h.RenderAll(&rec, nil)
	assert.Len(t, rec.Ops, 2)
}
