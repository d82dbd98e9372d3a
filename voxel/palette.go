package voxel

import (
	"errors"
	"fmt"
)

// ErrUnknownIndex is returned by Palette.Lookup for an index that was never
// assigned. Hitting it indicates a bug in the caller, not bad input.
var ErrUnknownIndex = errors.New("voxel: unknown palette index")

// Palette is a bidirectional mapping between canonical block-state strings
// and small non-negative indices, scoped to one structure. Index 0 is always
// air; further indices are assigned in first-use order and stay stable for
// the lifetime of the palette.
type Palette struct {
	blocks []BlockState
	index  map[string]int
}

// NewPalette creates a palette with air pre-interned at index 0.
func NewPalette() *Palette {
	p := &Palette{
		blocks: make([]BlockState, 0, 8),
		index:  make(map[string]int),
	}
	p.Add(AirState())
	return p
}

// Add interns a block state and returns its index. If the state was seen
// before, the existing index is returned.
func (p *Palette) Add(block BlockState) int {
	key := block.String()
	if idx, ok := p.index[key]; ok {
		return idx
	}
	idx := len(p.blocks)
	p.blocks = append(p.blocks, block)
	p.index[key] = idx
	return idx
}

// Lookup returns the block state at the given index.
func (p *Palette) Lookup(idx int) (BlockState, error) {
	if idx < 0 || idx >= len(p.blocks) {
		return BlockState{}, fmt.Errorf("%w: %d (palette size %d)", ErrUnknownIndex, idx, len(p.blocks))
	}
	return p.blocks[idx], nil
}

// Index returns the index of a block state, or -1 if not interned.
func (p *Palette) Index(block BlockState) int {
	if idx, ok := p.index[block.String()]; ok {
		return idx
	}
	return -1
}

// Len returns the number of entries in the palette.
func (p *Palette) Len() int {
	return len(p.blocks)
}

// Blocks returns all block states in first-use order.
func (p *Palette) Blocks() []BlockState {
	return p.blocks
}
