// Package format serializes voxel structures to and from the .schem file
// container: a gzip-compressed big-endian NBT stream whose compound layout
// depends on the target game version's schema era.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/oriumgames/schembuild/format/internal/base"
	"github.com/oriumgames/schembuild/format/internal/sponge"
	"github.com/oriumgames/schembuild/voxel"
)

// ErrUnsupportedVersion is returned for versions outside the supported set.
var ErrUnsupportedVersion = errors.New("format: unsupported version")

// ErrEncoding reports an internal invariant violated while building the
// compound tree (empty structure, dimensions or palette beyond the
// schema's fields). It matches errors.Is on encoder failures.
var ErrEncoding = base.ErrEncoding

type schemaWriter func(io.Writer, *voxel.Structure, int32) error

type schemaReader func(io.Reader) (*voxel.Structure, int, error)

var schemaWriters = map[schemaEra]schemaWriter{
	spongeV1: sponge.WriteV1,
	spongeV2: sponge.WriteV2,
	spongeV3: sponge.WriteV3,
}

var schemaReaders = map[schemaEra]schemaReader{
	spongeV1: sponge.ReadV1,
	spongeV2: sponge.ReadV2,
	spongeV3: sponge.ReadV3,
}

// Encode builds the version's compound tree for the structure without
// compressing or writing it. Useful for inspecting what Write would emit.
func Encode(s *voxel.Structure, v Version) (any, error) {
	if !v.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, v)
	}
	dv := versions[v].dataVersion
	switch versions[v].era {
	case spongeV1:
		return sponge.EncodeV1(s, dv)
	case spongeV2:
		return sponge.EncodeV2(s, dv)
	case spongeV3:
		return sponge.EncodeV3(s, dv)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedVersion, v)
}

// Write serializes the structure to w in the schema era selected by v.
func Write(w io.Writer, s *voxel.Structure, v Version) error {
	if !v.valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, v)
	}
	info := versions[v]
	writer, ok := schemaWriters[info.era]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, v)
	}
	if err := writer(w, s, info.dataVersion); err != nil {
		return fmt.Errorf("write %v: %w", v, err)
	}
	return nil
}

// Read sniffs the schema era of the data in r and decodes it. It returns
// the structure and the closest supported version for the stamped data
// version (useful for re-encoding).
func Read(r io.Reader) (*voxel.Structure, Version, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read data: %w", err)
	}
	era, err := detect(data)
	if err != nil {
		return nil, 0, fmt.Errorf("detect schema: %w", err)
	}
	reader := schemaReaders[era]
	s, dataVersion, err := reader(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("read schema v%d: %w", era, err)
	}
	v, ok := VersionForDataVersion(dataVersion)
	if !ok {
		// Stamped below the oldest supported release; default to it.
		v = JE1_9
	}
	return s, v, nil
}
