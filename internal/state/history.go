package state

import "PaintBoard/internal/shape"

// History is the ordered list of finalized shapes. Earlier shapes are
// painted first. The zero value is an empty history.
type History struct {
	shapes []*shape.Shape
}

// Append adds s to the end of the history.
func (h *History) Append(s *shape.Shape) {
	h.shapes = append(h.shapes, s)
}

// Undo removes the most recent shape and returns it, or nil if the
// history is empty.
func (h *History) Undo() *shape.Shape {
	n := len(h.shapes)
	if n == 0 {
		return nil
	}
	last := h.shapes[n-1]
	h.shapes[n-1] = nil
	h.shapes = h.shapes[:n-1]
	return last
}

// Clear empties the history and returns how many shapes were dropped.
func (h *History) Clear() int {
	n := len(h.shapes)
	h.shapes = nil
	return n
}

func (h *History) Len() int { return len(h.shapes) }

// Shapes returns deep copies of the finalized shapes in render order.
// Finalized shapes cannot be changed through the result.
func (h *History) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(h.shapes))
	for i, s := range h.shapes {
		out[i] = s.Clone()
	}
	return out
}

// RenderAll repaints every finalized shape in order, then inProgress on top
// when it is non-nil.
func (h *History) RenderAll(dst shape.Surface, inProgress *shape.Shape) {
	for _, s := range h.shapes {
		s.Render(dst)
	}
	if inProgress != nil {
		inProgress.Render(dst)
	}
}
