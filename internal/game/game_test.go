package game

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomgen/internal/asset"
	"github.com/samdwyer/roomgen/internal/config"
	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/room"
	"github.com/samdwyer/roomgen/internal/ui"
)

func newTestGame(t *testing.T, fsys fstest.MapFS, names []string, start string) (*Game, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}

	cfg := config.Default()
	tileset := gamedata.MustLoadTilesetRegistry()
	loader := room.NewLoader(fsys, room.Options{
		Config: cfg,
		Images: asset.Placeholders(tileset, cfg.TileWidth, cfg.TileHeight),
	})

	return NewWithScreen(screen, loader, tileset, names, start), sim
}

func testRooms() fstest.MapFS {
	return fstest.MapFS{
		"a.txt": &fstest.MapFile{Data: []byte("xxx\nx.x\nxxx\n")},
		"b.txt": &fstest.MapFile{Data: []byte("000\n")},
		"c.txt": &fstest.MapFile{Data: []byte("...\n")},
	}
}

func TestRunCyclesRoomsAndQuits(t *testing.T) {
	g, sim := newTestGame(t, testRooms(), []string{"a.txt", "b.txt", "c.txt"}, "b.txt")

	sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if g.State() != StateViewing {
		t.Errorf("State = %v, want viewing", g.State())
	}
	if g.Room() == nil || g.Room().Name != "c.txt" {
		t.Errorf("Expected c.txt to be shown, got %+v", g.Room())
	}
}

func TestCycleWrapsAround(t *testing.T) {
	g, sim := newTestGame(t, testRooms(), []string{"a.txt", "b.txt", "c.txt"}, "a.txt")

	sim.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if g.Room() == nil || g.Room().Name != "c.txt" {
		t.Errorf("Expected wrap to c.txt, got %+v", g.Room())
	}
}

func TestLoadFailureIsShownNotFatal(t *testing.T) {
	g, sim := newTestGame(t, testRooms(), []string{"a.txt", "missing.txt"}, "missing.txt")

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if g.State() != StateLoadFailed {
		t.Errorf("State = %v, want load_failed", g.State())
	}
	if g.Room() != nil {
		t.Error("No room should be shown after a failed load")
	}
}

func TestStateString(t *testing.T) {
	if StateViewing.String() != "viewing" || StateLoadFailed.String() != "load_failed" {
		t.Error("Unexpected state names")
	}
	if State(99).String() != "unknown" {
		t.Error("Unknown states should say so")
	}
}

func TestRunKeepsLogsOffTheTerminal(t *testing.T) {
	var stderr, captured bytes.Buffer
	prevWriter, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&stderr)
	t.Cleanup(func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	})

	g, sim := newTestGame(t, testRooms(), []string{"missing.txt"}, "missing.txt")
	g.SetLogOutput(&captured)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if stderr.Len() != 0 {
		t.Errorf("Log output leaked while the screen was active: %q", stderr.String())
	}
	if !strings.Contains(captured.String(), "Failed to load room missing.txt") {
		t.Errorf("Expected the load failure in the redirected log, got %q", captured.String())
	}

	log.Print("after run")
	if !strings.Contains(stderr.String(), "after run") {
		t.Error("Log output should be restored after Run returns")
	}
}

func TestRunDiscardsLogsByDefault(t *testing.T) {
	var stderr bytes.Buffer
	prevWriter, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&stderr)
	t.Cleanup(func() {
		log.SetOutput(prevWriter)
		log.SetFlags(prevFlags)
	})

	g, sim := newTestGame(t, testRooms(), []string{"missing.txt"}, "missing.txt")
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected no log output, got %q", stderr.String())
	}
}
