package main

import (
	"flag"
	"log"

	"PaintBoard/internal/config"
	"PaintBoard/internal/ui"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML settings file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Invalid config, using defaults: %v", err)
		cfg = config.Default()
	}
	log.Printf("Starting %q (%dx%d, %s renderer)", cfg.Title, cfg.Width, cfg.Height, cfg.Renderer)
	ui.RunApp(cfg, *cfgPath)
}
