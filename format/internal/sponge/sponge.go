// Package sponge implements the Sponge Schematic compound-tag schemas. Each
// era shares the same palette-indexed varint block payload and differs in
// field names and nesting: v1 uses TileEntities under a wrapped root, v2
// flattens everything next to BlockData, v3 nests palette and data inside a
// Blocks compound.
package sponge

import (
	"fmt"
	"math"

	"github.com/oriumgames/schembuild/format/internal/base"
	"github.com/oriumgames/schembuild/voxel"
)

// blockPayload is the schema-independent heart of an encoded schematic: the
// bounds-shaped varint block array, the palette keyed by canonical state
// strings, and the block entities re-based to the bounds minimum.
type blockPayload struct {
	width, height, length int16
	offset                [3]int32
	palette               map[string]int32
	paletteMax            int32
	data                  []byte
	blockEntities         []map[string]any
}

// encodeBlocks scans the structure's full bounds in Y-major (Y, Z, X) order
// and builds the shared payload. The write-time palette is rebuilt fresh
// with air at index 0 and entries assigned in scan order, so output bytes
// are deterministic regardless of insertion history.
func encodeBlocks(s *voxel.Structure) (*blockPayload, error) {
	if s.Empty() {
		return nil, fmt.Errorf("%w: cannot encode an empty structure", base.ErrEncoding)
	}
	bounds := s.Bounds()
	width, height, length := bounds.Dimensions()
	if width > math.MaxInt16 || height > math.MaxInt16 || length > math.MaxInt16 {
		return nil, fmt.Errorf("%w: dimensions %dx%dx%d exceed the schema maximum of %d",
			base.ErrEncoding, width, height, length, math.MaxInt16)
	}

	palette := voxel.NewPalette()
	indices := make([]int, width*height*length)
	for y := range height {
		for z := range length {
			for x := range width {
				idx := x + z*width + y*width*length
				p := voxel.Pos{X: bounds.Min.X + x, Y: bounds.Min.Y + y, Z: bounds.Min.Z + z}
				indices[idx] = palette.Add(s.BlockStateAt(p))
			}
		}
	}
	if palette.Len() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: palette size %d exceeds the schema maximum", base.ErrEncoding, palette.Len())
	}

	paletteMap := make(map[string]int32, palette.Len())
	for i, block := range palette.Blocks() {
		paletteMap[block.String()] = int32(i)
	}

	payload := &blockPayload{
		width:      int16(width),
		height:     int16(height),
		length:     int16(length),
		offset:     [3]int32{int32(bounds.Min.X), int32(bounds.Min.Y), int32(bounds.Min.Z)},
		palette:    paletteMap,
		paletteMax: int32(palette.Len() - 1),
		data:       base.EncodeVarIntArray(indices),
	}

	for _, be := range s.BlockEntities() {
		if !bounds.Contains(be.Pos) {
			continue
		}
		rel := be.Pos.Sub(bounds.Min)
		beData := make(map[string]any, len(be.Data)+2)
		for k, v := range be.Data {
			beData[k] = v
		}
		beData["Pos"] = []int32{int32(rel.X), int32(rel.Y), int32(rel.Z)}
		beData["Id"] = be.ID
		payload.blockEntities = append(payload.blockEntities, beData)
	}
	return payload, nil
}

// decodeBlocks rebuilds a structure from schema fields. Blocks land at
// their relative position plus the stored offset, so the coordinate to
// block mapping round-trips exactly, negative coordinates included.
func decodeBlocks(width, height, length int16, offset []int32, paletteMap map[string]int32, data []byte) (*voxel.Structure, error) {
	w, h, l := int(width), int(height), int(length)
	if w <= 0 || h <= 0 || l <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%dx%d", w, h, l)
	}

	var off voxel.Pos
	if len(offset) >= 3 {
		off = voxel.Pos{X: int(offset[0]), Y: int(offset[1]), Z: int(offset[2])}
	}

	var maxIdx int32
	for _, idx := range paletteMap {
		maxIdx = max(maxIdx, idx)
	}
	palette := make([]voxel.BlockState, maxIdx+1)
	seen := make([]bool, maxIdx+1)
	for stateStr, idx := range paletteMap {
		if idx < 0 {
			return nil, fmt.Errorf("negative palette index %d for %q", idx, stateStr)
		}
		palette[idx] = voxel.ParseBlockState(stateStr)
		seen[idx] = true
	}

	indices, err := base.DecodeVarIntArray(data, w*h*l)
	if err != nil {
		return nil, fmt.Errorf("decode block data: %w", err)
	}

	s := voxel.NewStructure()
	for y := range h {
		for z := range l {
			for x := range w {
				idx := indices[x+z*w+y*w*l]
				if idx < 0 || idx >= len(palette) || !seen[idx] {
					return nil, fmt.Errorf("block data references palette index %d outside palette of size %d", idx, len(palette))
				}
				s.SetBlockState(voxel.Pos{X: x, Y: y, Z: z}.Add(off), palette[idx])
			}
		}
	}
	return s, nil
}

// decodeBlockEntities attaches decoded block entity compounds, shifting
// their relative positions back by the structure offset.
func decodeBlockEntities(s *voxel.Structure, offset voxel.Pos, entries []map[string]any) {
	for _, beData := range entries {
		be := &voxel.BlockEntity{
			Data: make(map[string]any),
		}
		if pos, ok := beData["Pos"].([]any); ok && len(pos) >= 3 {
			x, _ := pos[0].(int32)
			y, _ := pos[1].(int32)
			z, _ := pos[2].(int32)
			be.Pos = voxel.Pos{X: int(x), Y: int(y), Z: int(z)}.Add(offset)
		} else if pos, ok := beData["Pos"].([]int32); ok && len(pos) >= 3 {
			be.Pos = voxel.Pos{X: int(pos[0]), Y: int(pos[1]), Z: int(pos[2])}.Add(offset)
		}
		if id, ok := beData["Id"].(string); ok {
			be.ID = id
		}
		for k, v := range beData {
			if k != "Pos" && k != "Id" {
				be.Data[k] = v
			}
		}
		s.SetBlockEntity(be)
	}
}

func structureOffset(offset []int32) voxel.Pos {
	if len(offset) < 3 {
		return voxel.Pos{}
	}
	return voxel.Pos{X: int(offset[0]), Y: int(offset[1]), Z: int(offset[2])}
}
