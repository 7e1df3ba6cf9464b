package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PaintBoard/internal/shape"
)

const (
	styleSolid  = "Solid"
	styleDashed = "Dotted"
)

var toolLabels = map[shape.Tool]string{
	shape.ToolLine:      "Line",
	shape.ToolRectangle: "Rect",
	shape.ToolOval:      "Oval",
	shape.ToolFreehand:  "Pencil",
	shape.ToolEraser:    "Eraser",
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    shape.Color
	OnTapped func(shape.Color)
}

func newColorSwatch(c shape.Color, tapped func(shape.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(20, 20))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls that choose the board's selection.
type Toolbar struct {
	board    *BoardWidget
	tools    *widget.RadioGroup
	dash     *widget.RadioGroup
	colorBox *fyne.Container
	content  fyne.CanvasObject
}

func NewToolbar(board *BoardWidget, palette []shape.Color) *Toolbar {
	t := &Toolbar{board: board}

	names := make([]string, 0, len(shape.Tools))
	byName := make(map[string]shape.Tool, len(shape.Tools))
	for _, tool := range shape.Tools {
		names = append(names, toolLabels[tool])
		byName[toolLabels[tool]] = tool
	}
	t.tools = widget.NewRadioGroup(names, func(name string) {
		if tool, ok := byName[name]; ok {
			board.SetTool(tool)
		}
	})
	t.tools.Horizontal = true
	t.tools.Required = true

	t.dash = widget.NewRadioGroup([]string{styleSolid, styleDashed}, func(name string) {
		board.SetDashed(name == styleDashed)
	})
	t.dash.Horizontal = true
	t.dash.Required = true

	t.colorBox = container.NewHBox()
	t.SetPalette(palette)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
	)

	t.Sync()
	t.content = container.NewHBox(
		t.tools,
		widget.NewSeparator(),
		t.colorBox,
		widget.NewSeparator(),
		t.dash,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
	return t
}

// SetPalette replaces the color swatches.
func (t *Toolbar) SetPalette(palette []shape.Color) {
	swatches := make([]fyne.CanvasObject, 0, len(palette))
	for _, c := range palette {
		swatches = append(swatches, newColorSwatch(c, t.board.SetColor))
	}
	t.colorBox.Objects = swatches
	t.colorBox.Refresh()
}

// Sync shows the board's current selection in the controls.
func (t *Toolbar) Sync() {
	sel := t.board.Selection()
	t.tools.SetSelected(toolLabels[sel.Tool])
	if sel.Dashed {
		t.dash.SetSelected(styleDashed)
	} else {
		t.dash.SetSelected(styleSolid)
	}
}

func (t *Toolbar) CanvasObject() fyne.CanvasObject { return t.content }
