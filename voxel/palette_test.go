package voxel

import (
	"errors"
	"testing"
)

func TestPaletteAirAtZero(t *testing.T) {
	p := NewPalette()
	if p.Len() != 1 {
		t.Fatalf("new palette has %d entries, want 1", p.Len())
	}
	got, err := p.Lookup(0)
	if err != nil {
		t.Fatalf("Lookup(0): %v", err)
	}
	if !got.IsAir() {
		t.Fatalf("index 0 = %q, want air", got.String())
	}
}

func TestPaletteAddIdempotent(t *testing.T) {
	p := NewPalette()
	stone := ParseBlockState("minecraft:stone")
	dirt := ParseBlockState("minecraft:dirt")

	if idx := p.Add(stone); idx != 1 {
		t.Errorf("first non-air state got index %d, want 1", idx)
	}
	if idx := p.Add(dirt); idx != 2 {
		t.Errorf("second state got index %d, want 2", idx)
	}
	if idx := p.Add(stone); idx != 1 {
		t.Errorf("re-adding stone got index %d, want 1", idx)
	}
	if p.Len() != 3 {
		t.Errorf("palette size %d, want 3", p.Len())
	}
}

func TestPaletteLookupUnknown(t *testing.T) {
	p := NewPalette()
	for _, idx := range []int{-1, 1, 99} {
		if _, err := p.Lookup(idx); !errors.Is(err, ErrUnknownIndex) {
			t.Errorf("Lookup(%d) err = %v, want ErrUnknownIndex", idx, err)
		}
	}
}

func TestPaletteIndex(t *testing.T) {
	p := NewPalette()
	p.Add(ParseBlockState("minecraft:stone"))
	if idx := p.Index(ParseBlockState("minecraft:stone")); idx != 1 {
		t.Errorf("Index(stone) = %d, want 1", idx)
	}
	if idx := p.Index(ParseBlockState("minecraft:dirt")); idx != -1 {
		t.Errorf("Index(dirt) = %d, want -1", idx)
	}
}
