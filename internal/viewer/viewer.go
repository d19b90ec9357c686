// Package viewer shows a room's layers in a window using Ebiten.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/samdwyer/roomgen/internal/room"
)

// Viewer is an ebiten.Game drawing the floor layer, then the wall layer.
type Viewer struct {
	floor  *ebiten.Image
	walls  *ebiten.Image
	width  int
	height int

	showWalls bool
}

// New uploads the room's layers as Ebiten images.
func New(r *room.Room) *Viewer {
	w, h := r.Floor.Size()
	return &Viewer{
		floor:     ebiten.NewImageFromImage(r.Floor.Image()),
		walls:     ebiten.NewImageFromImage(r.Walls.Image()),
		width:     w,
		height:    h,
		showWalls: true,
	}
}

// Update handles input. Esc closes the window, W toggles the wall layer.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		v.showWalls = !v.showWalls
	}
	return nil
}

// Draw composites the layers in order.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.floor, nil)
	if v.showWalls {
		screen.DrawImage(v.walls, nil)
	}
}

// Layout keeps the logical screen at the display size.
func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.width, v.height
}

// Run opens a window titled title and blocks until it is closed.
func Run(r *room.Room, title string) error {
	v := New(r)
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(v)
}
