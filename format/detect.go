package format

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/nbt"
)

// detect sniffs the schema era of raw .schem file data. All eras are gzip
// NBT; they differ in whether the tree is wrapped in a root Schematic
// compound (v1, v3) or carries Version at the top level (v2).
func detect(data []byte) (schemaEra, error) {
	if len(data) < 2 || data[0] != 0x1F || data[1] != 0x8B {
		return 0, fmt.Errorf("not a gzip stream")
	}

	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	var root map[string]any
	if err := nbt.NewDecoderWithEncoding(gz, nbt.BigEndian).Decode(&root); err != nil {
		return 0, fmt.Errorf("decode nbt: %w", err)
	}

	if wrapped, ok := root["Schematic"].(map[string]any); ok {
		root = wrapped
	}
	version, ok := root["Version"].(int32)
	if !ok {
		return 0, fmt.Errorf("no schematic Version tag")
	}
	switch version {
	case 1:
		return spongeV1, nil
	case 2:
		return spongeV2, nil
	case 3:
		return spongeV3, nil
	default:
		return 0, fmt.Errorf("unknown schematic schema version: %d", version)
	}
}
