package room

import (
	"context"
	"io/fs"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomgen/internal/blueprint"
	"github.com/samdwyer/roomgen/internal/config"
	"github.com/samdwyer/roomgen/internal/render"
	"github.com/samdwyer/roomgen/internal/telemetry"
)

// Options carries what every room build needs.
type Options struct {
	Config config.Config
	Images blueprint.ImageSource
	Logger *slog.Logger
}

func (o Options) parser() *blueprint.Parser {
	p := blueprint.NewParser(o.Config.TileWidth, o.Config.TileHeight, o.Images)
	p.Logger = o.Logger
	return p
}

// Loader builds rooms from blueprint files in a filesystem.
type Loader struct {
	fsys fs.FS
	opts Options
}

// NewLoader creates a loader reading blueprints from fsys.
func NewLoader(fsys fs.FS, opts Options) *Loader {
	return &Loader{fsys: fsys, opts: opts}
}

// FS returns the filesystem blueprints are read from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Load reads, parses and renders the named blueprint. Either a complete room
// is returned or an error; a missing file wraps blueprint.ErrBlueprintNotFound.
func (l *Loader) Load(ctx context.Context, name string) (*Room, error) {
	tracer := telemetry.Tracer("room")
	ctx, span := tracer.Start(ctx, "room.load")
	defer span.End()

	span.SetAttributes(attribute.String("room.name", name))

	structure, err := l.opts.parser().Load(ctx, l.fsys, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "blueprint load failed")
		return nil, err
	}

	floor, walls := render.Compose(ctx, structure, l.opts.Config.DisplayWidth, l.opts.Config.DisplayHeight)
	r := newRoom(name, structure, floor, walls)

	rows, cols := r.Size()
	span.SetAttributes(
		attribute.String("room.id", r.ID.String()),
		attribute.Int("room.rows", rows),
		attribute.Int("room.cols", cols),
	)

	return r, nil
}
