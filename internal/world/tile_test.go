package world

import (
	"image"
	"testing"
)

type blit struct {
	img  image.Image
	x, y int
}

// recordingSurface is a test Surface that remembers every blit.
type recordingSurface struct {
	blits []blit
}

func (s *recordingSurface) Blit(img image.Image, x, y int) {
	s.blits = append(s.blits, blit{img: img, x: x, y: y})
}

func TestCharMappingIsInverse(t *testing.T) {
	for _, k := range Kinds {
		got, ok := KindFromChar(k.Char())
		if !ok {
			t.Fatalf("KindFromChar(%q) not recognized", k.Char())
		}
		if got != k {
			t.Errorf("KindFromChar(%q) = %v, want %v", k.Char(), got, k)
		}
	}

	for _, ch := range []rune{'x', '.', '0'} {
		k, ok := KindFromChar(ch)
		if !ok {
			t.Fatalf("KindFromChar(%q) not recognized", ch)
		}
		if k.Char() != ch {
			t.Errorf("%v.Char() = %q, want %q", k, k.Char(), ch)
		}
	}
}

func TestKindFromCharRejectsUnknown(t *testing.T) {
	for _, ch := range []rune{'?', ' ', '\n', '\r', 'X', '#', '$', 'o'} {
		if _, ok := KindFromChar(ch); ok {
			t.Errorf("KindFromChar(%q) should not be recognized", ch)
		}
	}
}

func TestKindLayer(t *testing.T) {
	tests := []struct {
		kind  Kind
		layer Layer
	}{
		{KindWall, LayerWalls},
		{KindFloor, LayerFloor},
		{KindHole, LayerFloor},
	}

	for _, tt := range tests {
		if got := tt.kind.Layer(); got != tt.layer {
			t.Errorf("%v.Layer() = %v, want %v", tt.kind, got, tt.layer)
		}
	}
}

func TestKindPolicies(t *testing.T) {
	if KindWall.IsPassable() {
		t.Error("Walls should not be passable")
	}
	if !KindFloor.IsPassable() || !KindHole.IsPassable() {
		t.Error("Floors and holes should be passable")
	}
	if !KindHole.IsHazard() {
		t.Error("Holes should be hazards")
	}
	if KindFloor.IsHazard() || KindWall.IsHazard() {
		t.Error("Only holes should be hazards")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if _, err := ParseKind("lava"); err == nil {
		t.Error("ParseKind(\"lava\") should fail")
	}
}

func TestTileDrawBlitsSharedImageAtPosition(t *testing.T) {
	shared := image.NewRGBA(image.Rect(0, 0, 4, 4))
	a := NewTile(KindFloor, 0, 0, shared)
	b := NewTile(KindFloor, 4, 8, shared)

	surface := &recordingSurface{}
	a.Draw(surface)
	b.Draw(surface)

	if len(surface.blits) != 2 {
		t.Fatalf("Expected 2 blits, got %d", len(surface.blits))
	}
	if surface.blits[1].x != 4 || surface.blits[1].y != 8 {
		t.Errorf("Second blit at (%d,%d), want (4,8)", surface.blits[1].x, surface.blits[1].y)
	}
	for i, bl := range surface.blits {
		if bl.img != image.Image(shared) {
			t.Errorf("Blit %d did not use the shared image", i)
		}
	}
}

func TestTileAccessors(t *testing.T) {
	tile := NewTile(KindHole, 32, 64, nil)

	if tile.Kind() != KindHole {
		t.Errorf("Kind() = %v, want hole", tile.Kind())
	}
	if x, y := tile.Position(); x != 32 || y != 64 {
		t.Errorf("Position() = (%d,%d), want (32,64)", x, y)
	}
	if tile.Char() != '0' {
		t.Errorf("Char() = %q, want '0'", tile.Char())
	}
}
