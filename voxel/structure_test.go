package voxel

import (
	"errors"
	"testing"
)

func TestUnsetCoordinatesReadAir(t *testing.T) {
	s := NewStructure()
	s.SetBlock(Pos{0, 0, 0}, "minecraft:stone")

	for _, p := range []Pos{
		{1, 0, 0},          // next to a block
		{-5, -5, -5},       // negative
		{1000, 1000, 1000}, // far outside
		{0, 1, 0},          // above
	} {
		if got := s.BlockAt(p); got != Air {
			t.Errorf("BlockAt(%v) = %q, want air", p, got)
		}
	}
}

func TestBoundsAndDimensions(t *testing.T) {
	s := NewStructure()
	s.SetBlock(Pos{0, 0, 0}, "minecraft:stone")
	s.SetBlock(Pos{1, 0, 0}, "minecraft:dirt")

	want := Box{Min: Pos{0, 0, 0}, Max: Pos{1, 0, 0}}
	if got := s.Bounds(); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
	dx, dy, dz := s.Dimensions()
	if dx != 2 || dy != 1 || dz != 1 {
		t.Fatalf("Dimensions() = (%d,%d,%d), want (2,1,1)", dx, dy, dz)
	}
}

func TestBoundsExtendNegative(t *testing.T) {
	s := NewStructure()
	s.SetBlock(Pos{3, 4, 5}, "minecraft:stone")
	s.SetBlock(Pos{-2, -1, 0}, "minecraft:dirt")

	want := Box{Min: Pos{-2, -1, 0}, Max: Pos{3, 4, 5}}
	if got := s.Bounds(); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestEmptyStructureSentinel(t *testing.T) {
	s := NewStructure()
	if !s.Empty() {
		t.Fatal("new structure not Empty")
	}
	if got := s.Bounds(); got != (Box{}) {
		t.Fatalf("empty Bounds() = %v, want degenerate box at origin", got)
	}
	dx, dy, dz := s.Dimensions()
	if dx != 0 || dy != 0 || dz != 0 {
		t.Fatalf("empty Dimensions() = (%d,%d,%d), want (0,0,0)", dx, dy, dz)
	}

	// Setting only air keeps the structure empty.
	s.SetBlock(Pos{5, 5, 5}, "minecraft:air")
	if !s.Empty() {
		t.Fatal("air-only structure not Empty")
	}
}

func TestLastWriteWins(t *testing.T) {
	s := NewStructure()
	p := Pos{1, 2, 3}
	s.SetBlock(p, "minecraft:stone")
	s.SetBlock(p, "minecraft:dirt")
	if got := s.BlockAt(p); got != "minecraft:dirt" {
		t.Fatalf("BlockAt = %q, want dirt", got)
	}

	s.SetBlock(p, "minecraft:air")
	if got := s.BlockAt(p); got != Air {
		t.Fatalf("after air overwrite BlockAt = %q, want air", got)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after clearing the only block, want 0", s.Len())
	}
	// Bounds cover everything ever set; they do not shrink.
	if got := s.Bounds(); got != (Box{Min: p, Max: p}) {
		t.Fatalf("bounds shrank to %v after air overwrite", got)
	}
}

func TestSubExtractsAndRebases(t *testing.T) {
	s := NewStructure()
	s.SetBlock(Pos{0, 0, 0}, "minecraft:stone")
	s.SetBlock(Pos{1, 0, 0}, "minecraft:dirt")

	sub, err := s.Sub(Pos{1, 0, 0}, Pos{1, 0, 0})
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got := sub.BlockAt(Pos{0, 0, 0}); got != "minecraft:dirt" {
		t.Errorf("sub origin = %q, want dirt", got)
	}
	if sub.Len() != 1 {
		t.Errorf("sub Len() = %d, want 1", sub.Len())
	}
	if got := sub.BlockAt(Pos{-1, 0, 0}); got != Air {
		t.Errorf("block outside sub region leaked in: %q", got)
	}
}

func TestSubInvalidRegion(t *testing.T) {
	s := NewStructure()
	if _, err := s.Sub(Pos{2, 0, 0}, Pos{1, 0, 0}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("inverted region err = %v, want ErrInvalidArgument", err)
	}
}

func TestSubThenPlaceRoundTrip(t *testing.T) {
	s := NewStructure()
	blocks := map[Pos]string{
		{-1, 0, 0}: "minecraft:stone",
		{0, 1, 2}:  "minecraft:dirt",
		{3, 2, 1}:  "minecraft:oak_log[axis=y]",
		{5, 5, 5}:  "minecraft:glass", // outside the extracted region
	}
	for p, id := range blocks {
		s.SetBlock(p, id)
	}

	minC, maxC := Pos{-1, 0, 0}, Pos{3, 2, 2}
	sub, err := s.Sub(minC, maxC)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	fresh := NewStructure()
	fresh.Place(sub, minC)

	box := Box{Min: minC, Max: maxC}
	for p, id := range blocks {
		want := Air
		if box.Contains(p) {
			want = ParseBlockState(id).String()
		}
		if got := fresh.BlockAt(p); got != want {
			t.Errorf("BlockAt(%v) = %q, want %q", p, got, want)
		}
	}
	if got := fresh.BlockAt(Pos{5, 5, 5}); got != Air {
		t.Errorf("block outside region reproduced: %q", got)
	}
}

func TestPlaceDoesNotCopyAir(t *testing.T) {
	dst := NewStructure()
	dst.SetBlock(Pos{0, 0, 0}, "minecraft:stone")

	src := NewStructure()
	src.SetBlock(Pos{0, 0, 0}, "minecraft:air")
	src.SetBlock(Pos{1, 0, 0}, "minecraft:dirt")

	dst.Place(src, Pos{})
	if got := dst.BlockAt(Pos{0, 0, 0}); got != "minecraft:stone" {
		t.Errorf("air punched a hole: BlockAt(0,0,0) = %q", got)
	}
	if got := dst.BlockAt(Pos{1, 0, 0}); got != "minecraft:dirt" {
		t.Errorf("non-air not copied: BlockAt(1,0,0) = %q", got)
	}
}

func TestPlaceOverwrites(t *testing.T) {
	dst := NewStructure()
	dst.SetBlock(Pos{2, 0, 0}, "minecraft:stone")

	src := NewStructure()
	src.SetBlock(Pos{0, 0, 0}, "minecraft:dirt")

	dst.Place(src, Pos{2, 0, 0})
	if got := dst.BlockAt(Pos{2, 0, 0}); got != "minecraft:dirt" {
		t.Fatalf("Place did not overwrite: %q", got)
	}
}

func TestBlockEntitiesFollowSubAndPlace(t *testing.T) {
	s := NewStructure()
	s.SetBlock(Pos{1, 0, 0}, "minecraft:chest")
	s.SetBlockEntity(&BlockEntity{
		ID:   "minecraft:chest",
		Pos:  Pos{1, 0, 0},
		Data: map[string]any{"CustomName": "loot"},
	})

	sub, err := s.Sub(Pos{1, 0, 0}, Pos{1, 0, 0})
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	be := sub.BlockEntityAt(Pos{0, 0, 0})
	if be == nil {
		t.Fatal("block entity not carried into sub-structure")
	}
	if be.Data["CustomName"] != "loot" {
		t.Errorf("block entity data = %v", be.Data)
	}

	// Mutating the copy must not reach back into the original.
	be.Data["CustomName"] = "changed"
	if orig := s.BlockEntityAt(Pos{1, 0, 0}); orig.Data["CustomName"] != "loot" {
		t.Error("sub-structure shares block entity data with original")
	}
}

func TestBlockEntitiesDeterministicOrder(t *testing.T) {
	s := NewStructure()
	positions := []Pos{{2, 1, 0}, {0, 0, 0}, {1, 0, 2}, {1, 0, 0}}
	for _, p := range positions {
		s.SetBlockEntity(&BlockEntity{ID: "minecraft:chest", Pos: p})
	}
	got := s.BlockEntities()
	want := []Pos{{0, 0, 0}, {1, 0, 0}, {1, 0, 2}, {2, 1, 0}}
	for i, be := range got {
		if be.Pos != want[i] {
			t.Fatalf("BlockEntities()[%d].Pos = %v, want %v", i, be.Pos, want[i])
		}
	}
}
