package render

import (
	"context"
	"image/color"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/world"
)

// WallColorKey is the colour made transparent on the wall layer.
// Wall images should not use it, or those pixels will show through.
var WallColorKey = color.RGBA{A: 0xff}

// Route draws every tile onto the surface for its layer and returns how many
// tiles went to each.
func Route(structure [][]world.Tile, floor, walls world.Surface) (floorBlits, wallBlits int) {
	for _, row := range structure {
		for _, tile := range row {
			switch tile.Kind().Layer() {
			case world.LayerWalls:
				tile.Draw(walls)
				wallBlits++
			default:
				tile.Draw(floor)
				floorBlits++
			}
		}
	}
	return floorBlits, wallBlits
}

// Compose renders a parsed room into a floor layer and a wall layer, each
// width x height. The wall layer is transparent everywhere there is no wall.
func Compose(ctx context.Context, structure [][]world.Tile, width, height int) (floor, walls *Surface) {
	tracer := telemetry.Tracer("render")
	_, span := tracer.Start(ctx, "room.compose")
	defer span.End()

	floor = NewSurface(width, height)
	walls = NewSurface(width, height)

	floorBlits, wallBlits := Route(structure, floor, walls)

	walls.SetColorKey(WallColorKey)

	span.SetAttributes(
		attribute.Int("display.width", width),
		attribute.Int("display.height", height),
		attribute.Int("compose.floor_blits", floorBlits),
		attribute.Int("compose.wall_blits", wallBlits),
	)

	return floor, walls
}
