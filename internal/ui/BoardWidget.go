package ui

import (
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PaintBoard/internal/config"
	"PaintBoard/internal/render/raster"
	"PaintBoard/internal/render/vector"
	"PaintBoard/internal/shape"
	"PaintBoard/internal/state"
)

// BoardWidget feeds pointer events into a state.Board and paints it.
type BoardWidget struct {
	widget.BaseWidget
	board     *state.Board
	selection state.Selection
	renderer  string
	lastPos   shape.Point
	statusBar *widget.Label

	// OnSelectionChanged is called after the tool, color or dash style changes.
	OnSelectionChanged func(state.Selection)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(renderer string) *BoardWidget {
	b := &BoardWidget{
		board:     state.NewBoard(),
		selection: state.DefaultSelection,
		renderer:  renderer,
		statusBar: widget.NewLabel("Ready"),
	}
	b.board.OnChange = b.Refresh
	b.ExtendBaseWidget(b)
	return b
}

// Board exposes the engine behind the widget.
func (b *BoardWidget) Board() *state.Board { return b.board }

func (b *BoardWidget) Selection() state.Selection { return b.selection }

func (b *BoardWidget) SetSelection(sel state.Selection) {
	b.selection = sel
	if b.OnSelectionChanged != nil {
		b.OnSelectionChanged(sel)
	}
}

func (b *BoardWidget) SetTool(t shape.Tool) {
	sel := b.selection
	sel.Tool = t
	b.SetSelection(sel)
}

func (b *BoardWidget) SetColor(c shape.Color) {
	sel := b.selection
	sel.Color = c
	b.SetSelection(sel)
}

func (b *BoardWidget) SetDashed(dashed bool) {
	sel := b.selection
	sel.Dashed = dashed
	b.SetSelection(sel)
}

func (b *BoardWidget) Undo()  { b.board.Undo() }
func (b *BoardWidget) Clear() { b.board.Clear() }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func toPoint(p fyne.Position) shape.Point {
	return shape.Pt(int(p.X), int(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastPos = toPoint(e.Position)
	if err := b.board.PointerDown(b.lastPos, b.selection); err != nil {
		log.Printf("[UI] %v", err)
		b.SetStatus(err.Error())
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.lastPos = toPoint(e.Position)
	b.board.PointerMove(b.lastPos)
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.lastPos = toPoint(e.Position)
	b.release()
}

// DragEnd also arrives when the pointer is released outside the widget,
// where no MouseUp is delivered. The last reported position is used.
func (b *BoardWidget) DragEnd() { b.release() }

func (b *BoardWidget) release() {
	if !b.board.Drawing() {
		return
	}
	b.board.PointerUp(b.lastPos)
	b.SetStatus(fmt.Sprintf("%d shapes", len(b.board.Shapes())))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(shape.Background)
	if b.renderer == config.RendererRaster {
		r.raster = canvas.NewRaster(r.paint)
	} else {
		r.surface = vector.New()
	}
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	surface    *vector.Surface
	raster     *canvas.Raster
	objects    []fyne.CanvasObject
}

// rebuild repaints the whole drawing from scratch.
func (r *boardWidgetRenderer) rebuild() {
	if r.raster != nil {
		r.objects = []fyne.CanvasObject{r.raster}
		return
	}
	r.surface.Reset()
	r.board.board.Render(r.surface)
	r.objects = append([]fyne.CanvasObject{r.background}, r.surface.Objects()...)
}

func (r *boardWidgetRenderer) paint(w, h int) image.Image {
	img, err := raster.Snapshot(r.board.board, w, h)
	if err != nil {
		log.Printf("[UI] raster repaint: %v", err)
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return img
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	if r.raster != nil {
		r.raster.Refresh()
	}
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if r.raster != nil {
		r.raster.Resize(size)
	}
}

func (r *boardWidgetRenderer) MinSize() fyne.Size { return fyne.NewSize(300, 300) }
func (r *boardWidgetRenderer) Destroy()           {}
