package sponge

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"

	"github.com/oriumgames/schembuild/voxel"
)

// v1NBT is the compound layout of Sponge Schematic Version 1, the era
// targeted by releases before the 1.13 flattening. Block entities live
// under the legacy TileEntities key and the tree is wrapped in a root
// Schematic compound.
type v1NBT struct {
	Version      int32            `nbt:"Version"`
	DataVersion  int32            `nbt:"DataVersion"`
	Width        int16            `nbt:"Width"`
	Height       int16            `nbt:"Height"`
	Length       int16            `nbt:"Length"`
	Offset       []int32          `nbt:"Offset,array,omitempty"`
	Metadata     map[string]any   `nbt:"Metadata,omitempty"`
	PaletteMax   int32            `nbt:"PaletteMax"`
	Palette      map[string]int32 `nbt:"Palette"`
	BlockData    []byte           `nbt:"BlockData,array"`
	TileEntities []map[string]any `nbt:"TileEntities,omitempty"`
	Extra        map[string]any   `nbt:"*"`
}

type v1Root struct {
	Schematic v1NBT `nbt:"Schematic"`
}

// EncodeV1 builds the v1 compound tree for the structure.
func EncodeV1(s *voxel.Structure, dataVersion int32) (any, error) {
	payload, err := encodeBlocks(s)
	if err != nil {
		return nil, err
	}
	return v1Root{Schematic: v1NBT{
		Version:      1,
		DataVersion:  dataVersion,
		Width:        payload.width,
		Height:       payload.height,
		Length:       payload.length,
		Offset:       payload.offset[:],
		PaletteMax:   payload.paletteMax,
		Palette:      payload.palette,
		BlockData:    payload.data,
		TileEntities: payload.blockEntities,
	}}, nil
}

// WriteV1 encodes the structure and writes it as a gzip-compressed v1 file.
func WriteV1(w io.Writer, s *voxel.Structure, dataVersion int32) error {
	tree, err := EncodeV1(s, dataVersion)
	if err != nil {
		return err
	}
	return writeGzipNBT(w, tree)
}

// ReadV1 reads a Sponge Schematic v1 file.
func ReadV1(r io.Reader) (*voxel.Structure, int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var root v1Root
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&root); err != nil {
		return nil, 0, fmt.Errorf("decode nbt: %w", err)
	}
	data := root.Schematic

	if data.Version != 1 {
		return nil, 0, fmt.Errorf("expected version 1, got %d", data.Version)
	}

	s, err := decodeBlocks(data.Width, data.Height, data.Length, data.Offset, data.Palette, data.BlockData)
	if err != nil {
		return nil, 0, err
	}
	decodeBlockEntities(s, structureOffset(data.Offset), data.TileEntities)
	return s, int(data.DataVersion), nil
}

// writeGzipNBT serializes the tag tree as big-endian NBT inside a gzip
// stream. The tree is staged in memory so a late encoding failure never
// emits partial bytes to w.
func writeGzipNBT(w io.Writer, tree any) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := nbt.NewEncoderWithEncoding(gz, nbt.BigEndian).Encode(tree); err != nil {
		return fmt.Errorf("encode nbt: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
