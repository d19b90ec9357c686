// Package main is the entry point for roomgen.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/roomgen/data"
	"github.com/samdwyer/roomgen/internal/asset"
	"github.com/samdwyer/roomgen/internal/config"
	"github.com/samdwyer/roomgen/internal/devtools"
	"github.com/samdwyer/roomgen/internal/game"
	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/room"
	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/viewer"
)

func main() {
	roomName := flag.String("room", "", "blueprint file name (default: configured start room)")
	dump := flag.Bool("dump", false, "print the room's debug grid")
	summary := flag.Bool("summary", false, "print room metadata")
	pngPath := flag.String("png", "", "write the composited room to this PNG file")
	layersDir := flag.String("layers", "", "write floor.png and walls.png to this directory")
	tui := flag.Bool("tui", false, "browse rooms in the terminal")
	window := flag.Bool("window", false, "show the room layers in a window")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupLogging()
	telemetry.ConfigureHoneycombEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tileset, err := gamedata.LoadTilesetRegistry()
	if err != nil {
		log.Fatalf("Failed to load tileset: %v", err)
	}

	// Tile images are loaded once, before any room is built.
	images, err := asset.FromConfig(cfg, tileset)
	if err != nil {
		log.Fatalf("Failed to load tile images: %v", err)
	}

	var rooms fs.FS = data.Rooms()
	if cfg.RoomDir != "" {
		rooms = os.DirFS(cfg.RoomDir)
	}
	loader := room.NewLoader(rooms, room.Options{Config: cfg, Images: images})

	name := cfg.StartRoom
	if *roomName != "" {
		name = *roomName
	}

	if *tui {
		names, err := data.RoomNames(rooms)
		if err != nil {
			log.Fatalf("Failed to list rooms: %v", err)
		}
		g, err := game.New(loader, tileset, names, name)
		if err != nil {
			log.Fatalf("Failed to initialize preview: %v", err)
		}
		if path := os.Getenv("ROOMGEN_LOG_FILE"); path != "" {
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				log.Fatalf("Failed to open log file: %v", err)
			}
			defer f.Close()
			g.SetLogOutput(f)
		}
		if err := g.Run(ctx); err != nil {
			log.Fatalf("Preview error: %v", err)
		}
		return
	}

	r, err := loader.Load(ctx, name)
	if err != nil {
		log.Fatalf("Failed to load room: %v", err)
	}

	if !*summary && *pngPath == "" && *layersDir == "" && !*window {
		*dump = true
	}

	if *summary {
		if err := devtools.WriteSummary(os.Stdout, r); err != nil {
			log.Fatalf("Failed to write summary: %v", err)
		}
	}

	if *dump {
		colored := term.IsTerminal(int(os.Stdout.Fd()))
		if err := devtools.WriteGrid(os.Stdout, r, tileset, colored); err != nil {
			log.Fatalf("Failed to write grid: %v", err)
		}
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, r); err != nil {
			log.Fatalf("Failed to export PNG: %v", err)
		}
	}

	if *layersDir != "" {
		paths, err := devtools.ExportLayersPNG(*layersDir, r)
		if err != nil {
			log.Fatalf("Failed to export layers: %v", err)
		}
		for _, p := range paths {
			log.Printf("Wrote %s", p)
		}
	}

	if *window {
		if err := viewer.Run(r, fmt.Sprintf("roomgen - %s", r.Name)); err != nil {
			log.Fatalf("Viewer error: %v", err)
		}
	}
}

func writePNG(path string, r *room.Room) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := devtools.ExportPNG(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// setupLogging sets the default slog level from ROOMGEN_LOG_LEVEL.
func setupLogging() {
	var level slog.Level
	if raw := os.Getenv("ROOMGEN_LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			log.Printf("Note: ignoring ROOMGEN_LOG_LEVEL %q: %v", raw, err)
		}
	}
	slog.SetLogLoggerLevel(level)
}
