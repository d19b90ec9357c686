package game

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/room"
	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/ui"
)

// Game holds the preview state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	loader   *room.Loader
	names    []string
	index    int
	room     *room.Room
	state    State
	status   string
	running  bool

	logOutput io.Writer
}

// New creates a preview on the terminal for the given rooms, starting at start.
func New(loader *room.Loader, tileset *gamedata.TilesetRegistry, names []string, start string) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, loader, tileset, names, start), nil
}

// NewWithScreen creates a preview on an already initialized screen.
func NewWithScreen(screen *ui.Screen, loader *room.Loader, tileset *gamedata.TilesetRegistry, names []string, start string) *Game {
	index := 0
	for i, n := range names {
		if n == start {
			index = i
			break
		}
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, tileset),
		loader:   loader,
		names:    names,
		index:    index,
		running:  true,

		logOutput: io.Discard,
	}
}

// SetLogOutput sets where log output goes while the preview runs.
// The default discards it so it cannot overwrite the screen.
func (g *Game) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	g.logOutput = w
}

// Room returns the room currently shown, or nil if the last load failed.
func (g *Game) Room() *room.Room {
	return g.room
}

// State returns what the preview is showing.
func (g *Game) State() State {
	return g.state
}

// Run executes the preview loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	restoreLogs := redirectLogs(g.logOutput)
	defer restoreLogs()

	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	g.loadCurrent(ctx)
	initSpan.SetAttributes(
		attribute.Int("rooms.available", len(g.names)),
		attribute.String("preview.state", g.state.String()),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.room, g.status)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// loadCurrent loads the selected room. Failures are kept on the status line
// so the user can pick another room.
func (g *Game) loadCurrent(ctx context.Context) {
	if len(g.names) == 0 {
		g.room = nil
		g.state = StateLoadFailed
		g.status = "no rooms found"
		return
	}

	name := g.names[g.index]
	r, err := g.loader.Load(ctx, name)
	if err != nil {
		log.Printf("Failed to load room %s: %v", name, err)
		g.room = nil
		g.state = StateLoadFailed
		g.status = fmt.Sprintf("%s: %v", name, err)
		return
	}

	g.room = r
	g.state = StateViewing
	rows, cols := r.Size()
	g.status = fmt.Sprintf("%s  %dx%d  [n]ext [p]rev [r]eload [q]uit", name, cols, rows)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRight:
		g.cycle(ctx, 1)
	case tcell.KeyLeft:
		g.cycle(ctx, -1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'n':
			g.cycle(ctx, 1)
		case 'p':
			g.cycle(ctx, -1)
		case 'r':
			g.loadCurrent(ctx)
		}
	}
}

// cycle moves the selection by delta, wrapping around, and loads the room.
func (g *Game) cycle(ctx context.Context, delta int) {
	if len(g.names) == 0 {
		return
	}
	g.index = (g.index + delta + len(g.names)) % len(g.names)
	g.loadCurrent(ctx)
}
