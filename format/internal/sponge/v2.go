package sponge

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"

	"github.com/oriumgames/schembuild/voxel"
)

// v2NBT is the compound layout of Sponge Schematic Version 2: flattened
// fields, BlockEntities key, bare root.
type v2NBT struct {
	Version       int32            `nbt:"Version"`
	DataVersion   int32            `nbt:"DataVersion"`
	Width         int16            `nbt:"Width"`
	Height        int16            `nbt:"Height"`
	Length        int16            `nbt:"Length"`
	Offset        []int32          `nbt:"Offset,array,omitempty"`
	Metadata      map[string]any   `nbt:"Metadata,omitempty"`
	PaletteMax    int32            `nbt:"PaletteMax"`
	Palette       map[string]int32 `nbt:"Palette"`
	BlockData     []byte           `nbt:"BlockData,array"`
	BlockEntities []map[string]any `nbt:"BlockEntities,omitempty"`
	Extra         map[string]any   `nbt:"*"`
}

// EncodeV2 builds the v2 compound tree for the structure.
func EncodeV2(s *voxel.Structure, dataVersion int32) (any, error) {
	payload, err := encodeBlocks(s)
	if err != nil {
		return nil, err
	}
	return v2NBT{
		Version:       2,
		DataVersion:   dataVersion,
		Width:         payload.width,
		Height:        payload.height,
		Length:        payload.length,
		Offset:        payload.offset[:],
		PaletteMax:    payload.paletteMax,
		Palette:       payload.palette,
		BlockData:     payload.data,
		BlockEntities: payload.blockEntities,
	}, nil
}

// WriteV2 encodes the structure and writes it as a gzip-compressed v2 file.
func WriteV2(w io.Writer, s *voxel.Structure, dataVersion int32) error {
	tree, err := EncodeV2(s, dataVersion)
	if err != nil {
		return err
	}
	return writeGzipNBT(w, tree)
}

// ReadV2 reads a Sponge Schematic v2 file.
func ReadV2(r io.Reader) (*voxel.Structure, int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var data v2NBT
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&data); err != nil {
		return nil, 0, fmt.Errorf("decode nbt: %w", err)
	}

	if data.Version != 2 {
		return nil, 0, fmt.Errorf("expected version 2, got %d", data.Version)
	}

	s, err := decodeBlocks(data.Width, data.Height, data.Length, data.Offset, data.Palette, data.BlockData)
	if err != nil {
		return nil, 0, err
	}
	decodeBlockEntities(s, structureOffset(data.Offset), data.BlockEntities)
	return s, int(data.DataVersion), nil
}
