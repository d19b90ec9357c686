// Package room builds rooms from blueprints: a tile grid plus its rendered
// floor and wall layers.
package room

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/samdwyer/roomgen/internal/render"
	"github.com/samdwyer/roomgen/internal/world"
)

// Room is a fully built room. It owns its grid and both layers.
type Room struct {
	ID   uuid.UUID
	Name string

	// Structure is the tile grid, row-major. Rows may differ in length.
	Structure [][]world.Tile

	Floor *render.Surface // floors and holes, opaque
	Walls *render.Surface // walls only, transparent elsewhere

	// Edge availability, reserved for connecting rooms. All open by default.
	LeftAvailable   bool
	TopAvailable    bool
	RightAvailable  bool
	BottomAvailable bool
}

func newRoom(name string, structure [][]world.Tile, floor, walls *render.Surface) *Room {
	return &Room{
		ID:              uuid.New(),
		Name:            name,
		Structure:       structure,
		Floor:           floor,
		Walls:           walls,
		LeftAvailable:   true,
		TopAvailable:    true,
		RightAvailable:  true,
		BottomAvailable: true,
	}
}

// Size returns the number of rows and the length of the longest row.
func (r *Room) Size() (rows, cols int) {
	for _, row := range r.Structure {
		cols = max(cols, len(row))
	}
	return len(r.Structure), cols
}

// TileAt returns the tile at a grid index. It reports false for cells that
// are outside the grid, including past the end of a short row.
func (r *Room) TileAt(row, col int) (world.Tile, bool) {
	if row < 0 || row >= len(r.Structure) {
		return world.Tile{}, false
	}
	if col < 0 || col >= len(r.Structure[row]) {
		return world.Tile{}, false
	}
	return r.Structure[row][col], true
}

// Count returns how many tiles of a kind the room has.
func (r *Room) Count(kind world.Kind) int {
	n := 0
	for _, row := range r.Structure {
		for _, t := range row {
			if t.Kind() == kind {
				n++
			}
		}
	}
	return n
}

// Dump writes the grid as debug characters, one line per row.
func (r *Room) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range r.Structure {
		for _, t := range row {
			bw.WriteRune(t.Char())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String returns the same text Dump writes.
func (r *Room) String() string {
	var sb strings.Builder
	_ = r.Dump(&sb)
	return sb.String()
}

// Build parses a blueprint from src and renders it. name is only used to label the room.
func Build(ctx context.Context, name string, src io.Reader, opts Options) (*Room, error) {
	structure, err := opts.parser().Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	floor, walls := render.Compose(ctx, structure, opts.Config.DisplayWidth, opts.Config.DisplayHeight)
	return newRoom(name, structure, floor, walls), nil
}
