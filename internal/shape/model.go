package shape

import (
	"fmt"
	"image/color"
	"strings"
)

// Point is a location in canvas-local device pixels.
type Point struct{ X, Y int }

func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Color is an opaque RGB triple.
type Color struct{ R, G, B uint8 }

var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255}
	Green = Color{G: 255}
	Blue  = Color{B: 255}
)

// ColorOf drops the alpha channel of c.
func ColorOf(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// StrokeStyle is fixed when a shape is created.
type StrokeStyle struct {
	Color  Color
	Dashed bool
}

// Tool selects which shape variant a gesture produces.
type Tool int

const (
	ToolLine Tool = iota + 1
	ToolRectangle
	ToolOval
	ToolFreehand
	ToolEraser
)

// Tools lists every recognised tool in toolbar order.
var Tools = []Tool{ToolLine, ToolRectangle, ToolOval, ToolFreehand, ToolEraser}

var toolNames = map[Tool]string{
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolOval:      "oval",
	ToolFreehand:  "freehand",
	ToolEraser:    "eraser",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Valid reports whether t is one of the five recognised tools.
func (t Tool) Valid() bool {
	_, ok := toolNames[t]
	return ok
}

// ParseTool maps a tool name to its Tool. "pencil" and "rect" are accepted
// as aliases.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "pencil":
		return ToolFreehand, nil
	case "rect":
		return ToolRectangle, nil
	}
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &ConfigurationError{Name: name}
}
