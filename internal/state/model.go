package state

import "PaintBoard/internal/shape"

// Selection is the toolbar state handed to PointerDown. It is copied into
// the new shape, so later toolbar changes never reach a stroke in progress.
type Selection struct {
	Tool   shape.Tool
	Color  shape.Color
	Dashed bool
}

func (s Selection) Style() shape.StrokeStyle {
	return shape.StrokeStyle{Color: s.Color, Dashed: s.Dashed}
}

// DefaultSelection matches the initial toolbar: black pencil, solid.
var DefaultSelection = Selection{Tool: shape.ToolFreehand, Color: shape.Black}
