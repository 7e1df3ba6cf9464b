package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"PaintBoard/internal/config"
	"PaintBoard/internal/shape"
	"PaintBoard/internal/state"
)

const appID = "io.paintboard.app"

const (
	prefTool   = "tool"
	prefColor  = "color"
	prefDashed = "dashed"
)

// initialSelection starts from the config and applies whatever the user
// picked in the previous session.
func initialSelection(cfg config.Config, prefs fyne.Preferences) state.Selection {
	sel := state.DefaultSelection
	if tool, err := cfg.InitialTool(); err == nil {
		sel.Tool = tool
	}
	if colors, err := cfg.Colors(); err == nil {
		sel.Color = colors[0]
	}
	sel.Dashed = cfg.Dashed

	if name := prefs.String(prefTool); name != "" {
		if tool, err := shape.ParseTool(name); err == nil {
			sel.Tool = tool
		}
	}
	if hex := prefs.String(prefColor); hex != "" {
		if c, err := config.ParseColor(hex); err == nil {
			sel.Color = c
		}
	}
	sel.Dashed = prefs.BoolWithFallback(prefDashed, sel.Dashed)
	return sel
}

func saveSelection(prefs fyne.Preferences, sel state.Selection) {
	prefs.SetString(prefTool, sel.Tool.String())
	prefs.SetString(prefColor, sel.Color.String())
	prefs.SetBool(prefDashed, sel.Dashed)
}

// RunApp opens the board window and blocks until it is closed. When
// cfgPath is non-empty the palette follows edits to that file.
func RunApp(cfg config.Config, cfgPath string) {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	board := NewBoardWidget(cfg.Renderer)
	board.SetSelection(initialSelection(cfg, myApp.Preferences()))
	board.OnSelectionChanged = func(sel state.Selection) {
		saveSelection(myApp.Preferences(), sel)
	}

	palette, err := cfg.Colors()
	if err != nil {
		log.Printf("[UI] %v", err)
		palette, _ = config.Default().Colors()
	}
	toolbar := NewToolbar(board, palette)

	content := container.NewBorder(toolbar.CanvasObject(), board.statusBar, nil, nil, board)
	myWindow.SetContent(content)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfgPath != "" {
		go func() {
			err := config.Watch(ctx, cfgPath, func(c config.Config) {
				colors, err := c.Colors()
				if err != nil {
					return
				}
				fyne.Do(func() { toolbar.SetPalette(colors) })
			})
			if err != nil {
				log.Printf("[UI] %v", err)
			}
		}()
	}

	myWindow.ShowAndRun()
}
