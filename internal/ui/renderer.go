package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/room"
	"github.com/samdwyer/roomgen/internal/world"
)

// Renderer handles drawing rooms to the screen.
type Renderer struct {
	screen *Screen
	styles [world.KindCount]tcell.Style
}

// NewRenderer creates a new renderer for the given screen, styling tiles
// with their tileset colours.
func NewRenderer(screen *Screen, tileset *gamedata.TilesetRegistry) *Renderer {
	r := &Renderer{screen: screen}
	for _, k := range world.Kinds {
		r.styles[k] = tcell.StyleDefault.Foreground(tileset.ByKind(k).TCellColor())
	}
	r.styles[world.KindWall] = r.styles[world.KindWall].Bold(true)
	return r
}

// Render draws the room's debug grid with a status line at the bottom.
// A nil room draws only the status line.
func (r *Renderer) Render(rm *room.Room, status string) {
	r.screen.Clear()

	if rm != nil {
		for y, row := range rm.Structure {
			for x, tile := range row {
				r.screen.SetContent(x, y, tile.Char(), r.tileStyle(tile.Kind()))
			}
		}
	}

	_, height := r.screen.Size()
	r.RenderMessage(status, height-1)

	r.screen.Show()
}

// tileStyle returns the style for a tile variant.
func (r *Renderer) tileStyle(kind world.Kind) tcell.Style {
	if kind < 0 || kind >= world.KindCount {
		return tcell.StyleDefault
	}
	return r.styles[kind]
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
