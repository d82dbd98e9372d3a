// Package voxel implements the in-memory block-state lattice behind a
// schematic: a sparse map of integer coordinates to per-structure palette
// indices, with incremental bounds tracking and geometric operations.
package voxel

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned for geometric arguments the lattice cannot
// honor: inverted region corners, non-positive scale factors, non-finite
// rotation angles.
var ErrInvalidArgument = errors.New("voxel: invalid argument")

// Structure is a sparse 3D lattice of block states. Coordinates that were
// never set read back as air, anywhere in space. A Structure is owned by a
// single goroutine; it performs no locking.
type Structure struct {
	palette       *Palette
	blocks        map[Pos]int // palette indices, never the air index
	blockEntities map[Pos]*BlockEntity

	// bounds covers every non-air coordinate ever set. It is maintained in
	// O(1) per insert and never shrinks; only coordinate transforms rebuild
	// it from scratch.
	bounds    Box
	hasBounds bool
}

// NewStructure creates an empty structure. Its palette starts with air
// interned at index 0.
func NewStructure() *Structure {
	return &Structure{
		palette:       NewPalette(),
		blocks:        make(map[Pos]int),
		blockEntities: make(map[Pos]*BlockEntity),
	}
}

// SetBlock parses blockID and stores it at p, overwriting any prior value.
// Setting air clears the coordinate without shrinking the bounds.
func (s *Structure) SetBlock(p Pos, blockID string) {
	s.SetBlockState(p, ParseBlockState(blockID))
}

// SetBlockState stores an already-parsed block state at p.
func (s *Structure) SetBlockState(p Pos, block BlockState) {
	if block.IsAir() {
		delete(s.blocks, p)
		return
	}
	s.blocks[p] = s.palette.Add(block)
	if !s.hasBounds {
		s.bounds = Box{Min: p, Max: p}
		s.hasBounds = true
		return
	}
	s.bounds = s.bounds.extend(p)
}

// BlockStateAt returns the block state at p. Coordinates never set return
// air, inside or outside the bounds, negative coordinates included.
func (s *Structure) BlockStateAt(p Pos) BlockState {
	idx, ok := s.blocks[p]
	if !ok {
		return AirState()
	}
	block, err := s.palette.Lookup(idx)
	if err != nil {
		// The index came out of the palette; this is unreachable unless the
		// structure was mutated concurrently.
		panic(fmt.Sprintf("voxel: corrupt palette: %v", err))
	}
	return block
}

// BlockAt returns the canonical identifier of the block at p.
func (s *Structure) BlockAt(p Pos) string {
	return s.BlockStateAt(p).String()
}

// Empty reports whether no non-air block was ever set.
func (s *Structure) Empty() bool {
	return !s.hasBounds
}

// Bounds returns the tightest box containing every non-air coordinate ever
// set. For an empty structure it returns the degenerate box at the origin.
func (s *Structure) Bounds() Box {
	if !s.hasBounds {
		return Box{}
	}
	return s.bounds
}

// Dimensions returns the bounds extent per axis. A single block yields
// (1, 1, 1); an empty structure yields (0, 0, 0).
func (s *Structure) Dimensions() (dx, dy, dz int) {
	if !s.hasBounds {
		return 0, 0, 0
	}
	return s.bounds.Dimensions()
}

// Len returns the number of stored non-air blocks.
func (s *Structure) Len() int {
	return len(s.blocks)
}

// Palette returns the structure's palette. Indices are stable for the
// structure's lifetime; encoders build their own palettes at write time.
func (s *Structure) Palette() *Palette {
	return s.palette
}

// SetBlockEntity attaches a block entity at be.Pos, replacing any existing
// one there. Passing nil data is allowed; passing a nil entity is a no-op.
func (s *Structure) SetBlockEntity(be *BlockEntity) {
	if be == nil {
		return
	}
	s.blockEntities[be.Pos] = be
}

// BlockEntityAt returns the block entity at p, or nil.
func (s *Structure) BlockEntityAt(p Pos) *BlockEntity {
	return s.blockEntities[p]
}

// RemoveBlockEntity removes the block entity at p, if any.
func (s *Structure) RemoveBlockEntity(p Pos) {
	delete(s.blockEntities, p)
}

// BlockEntities returns the block entities in Y-major (Y, then Z, then X)
// order so that encoders emit them deterministically.
func (s *Structure) BlockEntities() []*BlockEntity {
	out := make([]*BlockEntity, 0, len(s.blockEntities))
	for _, be := range s.blockEntities {
		out = append(out, be)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Pos, out[j].Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return out
}

// Place copies every non-air block of other into s at position + offset,
// overwriting what is there. Air is never copied: it cannot punch holes in
// the destination. Block entities inside other are carried along.
func (s *Structure) Place(other *Structure, offset Pos) {
	for p, idx := range other.blocks {
		block, err := other.palette.Lookup(idx)
		if err != nil {
			panic(fmt.Sprintf("voxel: corrupt palette: %v", err))
		}
		s.SetBlockState(p.Add(offset), block)
	}
	for p, be := range other.blockEntities {
		c := be.Clone()
		c.Pos = p.Add(offset)
		s.SetBlockEntity(c)
	}
}

// Sub extracts the blocks inside the inclusive box [min, max] as a new,
// independent structure re-based so that min becomes its origin. Blocks
// outside the box are excluded entirely.
func (s *Structure) Sub(minCorner, maxCorner Pos) (*Structure, error) {
	if minCorner.X > maxCorner.X || minCorner.Y > maxCorner.Y || minCorner.Z > maxCorner.Z {
		return nil, fmt.Errorf("%w: region min %v exceeds max %v", ErrInvalidArgument, minCorner, maxCorner)
	}
	box := Box{Min: minCorner, Max: maxCorner}

	sub := NewStructure()
	for p, idx := range s.blocks {
		if !box.Contains(p) {
			continue
		}
		block, err := s.palette.Lookup(idx)
		if err != nil {
			panic(fmt.Sprintf("voxel: corrupt palette: %v", err))
		}
		sub.SetBlockState(p.Sub(minCorner), block)
	}
	for p, be := range s.blockEntities {
		if !box.Contains(p) {
			continue
		}
		c := be.Clone()
		c.Pos = p.Sub(minCorner)
		sub.SetBlockEntity(c)
	}
	return sub, nil
}

// Clone creates a deep copy of the structure.
func (s *Structure) Clone() *Structure {
	c := NewStructure()
	c.Place(s, Pos{})
	return c
}

// reset drops all blocks and block entities but keeps the palette, whose
// indices stay valid for the structure's lifetime.
func (s *Structure) reset() {
	s.blocks = make(map[Pos]int)
	s.blockEntities = make(map[Pos]*BlockEntity)
	s.bounds = Box{}
	s.hasBounds = false
}
