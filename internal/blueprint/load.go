package blueprint

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/samdwyer/roomgen/internal/world"
)

// ErrBlueprintNotFound is returned when a blueprint file cannot be opened or read.
var ErrBlueprintNotFound = errors.New("blueprint not found")

// Load opens the named blueprint in fsys and parses it.
// The file is closed before Load returns, whether or not parsing succeeded.
func (p *Parser) Load(ctx context.Context, fsys fs.FS, name string) ([][]world.Tile, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBlueprintNotFound, name, err)
	}
	defer f.Close()

	structure, err := p.Parse(ctx, f)
	if errors.Is(err, errReadBlueprint) {
		return nil, fmt.Errorf("%w: %s: %w", ErrBlueprintNotFound, name, err)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return structure, nil
}
