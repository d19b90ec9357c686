// Package data provides the embedded tileset and sample room blueprints.
package data

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

// dataFS embeds the tileset and every blueprint under rooms/ at build time.
//
//go:embed tileset.json rooms/*.txt
var dataFS embed.FS

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}

// Rooms returns a filesystem rooted at the embedded blueprint directory.
func Rooms() fs.FS {
	sub, err := fs.Sub(dataFS, "rooms")
	if err != nil {
		// rooms/ is embedded, so Sub cannot fail.
		panic(err)
	}
	return sub
}

// RoomNames lists the blueprint files found directly in fsys, sorted by name.
func RoomNames(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*.txt")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	sort.Strings(names)
	return names, nil
}
