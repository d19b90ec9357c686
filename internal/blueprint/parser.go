// Package blueprint parses plain-text room blueprints into tile grids.
//
// A blueprint is a sequence of lines. A line starting with "$$" opens or closes
// a comment region. Outside comments every line is one row of the room: 'x' is
// a wall, '.' a floor and '0' a hole. Any other character is ignored and takes
// up no space in the row. Lines may be of any length.
package blueprint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomgen/internal/telemetry"
	"github.com/samdwyer/roomgen/internal/world"
)

// CommentDelimiter toggles a comment region when it starts a line.
const CommentDelimiter = "$$"

// ErrMissingImage is returned when a blueprint uses a variant with no loaded image.
var ErrMissingImage = errors.New("no image loaded for tile kind")

// errReadBlueprint marks failures of the underlying reader.
var errReadBlueprint = errors.New("read blueprint")

// ImageSource supplies the shared image for each tile variant.
type ImageSource interface {
	Image(kind world.Kind) image.Image
}

// Stats describes what a parse saw.
type Stats struct {
	Rows           int  // Rows emitted
	Tiles          int  // Tiles created
	Skipped        int  // Unrecognized characters dropped from content lines
	CommentLines   int  // Lines hidden inside comment regions
	DelimiterLines int  // "$$" lines
	Unterminated   bool // Input ended inside a comment region
}

// Parser turns blueprint text into a row-major tile grid.
type Parser struct {
	TileWidth  int
	TileHeight int
	Images     ImageSource

	// Logger receives per-tile debug output. Nil uses slog.Default().
	Logger *slog.Logger
}

// NewParser creates a parser for the given tile size and image table.
func NewParser(tileWidth, tileHeight int, images ImageSource) *Parser {
	return &Parser{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Images:     images,
	}
}

// Parse reads a blueprint from r and returns its tiles, one slice per row.
func (p *Parser) Parse(ctx context.Context, r io.Reader) ([][]world.Tile, error) {
	structure, _, err := p.ParseWithStats(ctx, r)
	return structure, err
}

// ParseWithStats is Parse that also reports what was seen.
//
// Delimiter lines and lines inside a comment region neither emit a row nor
// advance y. Every other line emits a row, even an empty one, and advances y
// by one tile height.
func (p *Parser) ParseWithStats(ctx context.Context, r io.Reader) ([][]world.Tile, Stats, error) {
	tracer := telemetry.Tracer("blueprint")
	_, span := tracer.Start(ctx, "blueprint.parse")
	defer span.End()

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var images [world.KindCount]image.Image
	for _, k := range world.Kinds {
		images[k] = p.Images.Image(k)
	}

	var (
		stats     Stats
		structure [][]world.Tile
		inComment bool
		y         int
	)

	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			span.RecordError(err)
			return nil, stats, fmt.Errorf("%w: %w", errReadBlueprint, err)
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(line, CommentDelimiter):
			inComment = !inComment
			stats.DelimiterLines++
		case inComment:
			stats.CommentLines++
		default:
			row := []world.Tile{}
			x := 0
			for _, ch := range line {
				kind, ok := world.KindFromChar(ch)
				if !ok {
					stats.Skipped++
					continue
				}
				if images[kind] == nil {
					span.RecordError(ErrMissingImage)
					return nil, stats, fmt.Errorf("%w: %s", ErrMissingImage, kind)
				}
				logger.Debug("creating tile", "kind", kind.String(), "x", x, "y", y)
				row = append(row, world.NewTile(kind, x, y, images[kind]))
				x += p.TileWidth
			}

			structure = append(structure, row)
			stats.Tiles += len(row)
			y += p.TileHeight
		}

		if err != nil {
			break
		}
	}

	stats.Rows = len(structure)
	stats.Unterminated = inComment

	span.SetAttributes(
		attribute.Int("blueprint.rows", stats.Rows),
		attribute.Int("blueprint.tiles", stats.Tiles),
		attribute.Int("blueprint.skipped", stats.Skipped),
		attribute.Int("blueprint.comment_lines", stats.CommentLines),
		attribute.Bool("blueprint.unterminated_comment", stats.Unterminated),
	)

	return structure, stats, nil
}
