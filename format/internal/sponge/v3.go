package sponge

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"

	"github.com/oriumgames/schembuild/voxel"
)

// v3NBT is the compound layout of Sponge Schematic Version 3: palette and
// block data nested inside a Blocks compound, a structured Metadata
// compound, and a root Schematic wrapper.
type v3NBT struct {
	Version     int32 `nbt:"Version"`
	DataVersion int32 `nbt:"DataVersion"`

	Metadata struct {
		Name        string `nbt:"Name,omitempty"`
		Author      string `nbt:"Author,omitempty"`
		Date        int64  `nbt:"Date,omitempty"`
		Description string `nbt:"Description,omitempty"`
	} `nbt:"Metadata"`

	Width  int16 `nbt:"Width"`
	Height int16 `nbt:"Height"`
	Length int16 `nbt:"Length"`

	Offset []int32 `nbt:"Offset,array,omitempty"`

	Blocks struct {
		Palette       map[string]int32 `nbt:"Palette"`
		Data          []byte           `nbt:"Data,array"`
		BlockEntities []map[string]any `nbt:"BlockEntities,omitempty"`
	} `nbt:"Blocks"`

	Extra map[string]any `nbt:"*"`
}

type v3Root struct {
	Schematic v3NBT `nbt:"Schematic"`
}

// EncodeV3 builds the v3 compound tree for the structure.
func EncodeV3(s *voxel.Structure, dataVersion int32) (any, error) {
	payload, err := encodeBlocks(s)
	if err != nil {
		return nil, err
	}
	data := v3NBT{
		Version:     3,
		DataVersion: dataVersion,
		Width:       payload.width,
		Height:      payload.height,
		Length:      payload.length,
		Offset:      payload.offset[:],
	}
	data.Blocks.Palette = payload.palette
	data.Blocks.Data = payload.data
	data.Blocks.BlockEntities = payload.blockEntities
	return v3Root{Schematic: data}, nil
}

// WriteV3 encodes the structure and writes it as a gzip-compressed v3 file.
func WriteV3(w io.Writer, s *voxel.Structure, dataVersion int32) error {
	tree, err := EncodeV3(s, dataVersion)
	if err != nil {
		return err
	}
	return writeGzipNBT(w, tree)
}

// ReadV3 reads a Sponge Schematic v3 file.
func ReadV3(r io.Reader) (*voxel.Structure, int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var root v3Root
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&root); err != nil {
		return nil, 0, fmt.Errorf("decode nbt: %w", err)
	}
	data := root.Schematic

	if data.Version != 3 {
		return nil, 0, fmt.Errorf("expected version 3, got %d", data.Version)
	}

	s, err := decodeBlocks(data.Width, data.Height, data.Length, data.Offset, data.Blocks.Palette, data.Blocks.Data)
	if err != nil {
		return nil, 0, err
	}
	decodeBlockEntities(s, structureOffset(data.Offset), data.Blocks.BlockEntities)
	return s, int(data.DataVersion), nil
}
