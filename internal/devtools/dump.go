// Package devtools provides developer tools for inspecting built rooms.
package devtools

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"

	"github.com/samdwyer/roomgen/internal/gamedata"
	"github.com/samdwyer/roomgen/internal/render"
	"github.com/samdwyer/roomgen/internal/room"
	"github.com/samdwyer/roomgen/internal/world"
)

// WriteGrid writes the room's debug grid to w. With colored set, each
// character is tinted with its tileset colour.
func WriteGrid(w io.Writer, r *room.Room, tileset *gamedata.TilesetRegistry, colored bool) error {
	if !colored {
		return r.Dump(w)
	}

	var styles [world.KindCount]color.RGBColor
	for _, k := range world.Kinds {
		c := tileset.ByKind(k).RGBA()
		styles[k] = color.RGB(c.R, c.G, c.B)
	}

	bw := bufio.NewWriter(w)
	for _, row := range r.Structure {
		for _, t := range row {
			bw.WriteString(styles[t.Kind()].Sprint(string(t.Char())))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteSummary writes the room's metadata in key: value form.
func WriteSummary(w io.Writer, r *room.Room) error {
	rows, cols := r.Size()
	fw, fh := r.Floor.Size()
	lines := []string{
		fmt.Sprintf("room: %s", r.Name),
		fmt.Sprintf("id: %s", r.ID),
		fmt.Sprintf("rows: %d", rows),
		fmt.Sprintf("cols: %d", cols),
		fmt.Sprintf("walls: %d", r.Count(world.KindWall)),
		fmt.Sprintf("floors: %d", r.Count(world.KindFloor)),
		fmt.Sprintf("holes: %d", r.Count(world.KindHole)),
		fmt.Sprintf("layer_size: %dx%d", fw, fh),
		fmt.Sprintf("edges: left=%t top=%t right=%t bottom=%t",
			r.LeftAvailable, r.TopAvailable, r.RightAvailable, r.BottomAvailable),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// ExportPNG writes the room as it would appear on screen: floor layer with
// the wall layer composited over it.
func ExportPNG(w io.Writer, r *room.Room) error {
	return png.Encode(w, render.Flatten(r.Floor, r.Walls))
}

// ExportLayersPNG writes floor.png and walls.png into dir and returns their paths.
func ExportLayersPNG(dir string, r *room.Room) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	layers := []struct {
		name    string
		surface *render.Surface
	}{
		{"floor.png", r.Floor},
		{"walls.png", r.Walls},
	}

	paths := make([]string, 0, len(layers))
	for _, l := range layers {
		path := filepath.Join(dir, l.name)
		if err := writePNGFile(path, l.surface); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNGFile(path string, s *render.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
