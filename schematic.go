// Package schembuild builds Minecraft schematics in memory and exports them
// as gzip-compressed NBT .schem files. Callers feed it (position, block
// identifier) pairs; the library handles palette interning, geometric
// transforms and version-specific encoding.
package schembuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oriumgames/schembuild/format"
	"github.com/oriumgames/schembuild/voxel"
)

// Schematic owns a single voxel structure together with the export version
// used when saving. A Schematic is confined to one goroutine; nothing is
// shared between instances.
type Schematic struct {
	structure *voxel.Structure
	version   format.Version
}

// New creates an empty schematic targeting the given version.
func New(v format.Version) *Schematic {
	return &Schematic{
		structure: voxel.NewStructure(),
		version:   v,
	}
}

// Wrap builds a schematic around an existing structure.
func Wrap(s *voxel.Structure, v format.Version) *Schematic {
	return &Schematic{structure: s, version: v}
}

// Structure returns the underlying voxel structure for direct manipulation.
func (s *Schematic) Structure() *voxel.Structure {
	return s.structure
}

// Version returns the schematic's export version.
func (s *Schematic) Version() format.Version {
	return s.version
}

// SetBlock places blockID ("namespace:name[key=value,...]") at (x, y, z),
// overwriting whatever is there.
func (s *Schematic) SetBlock(x, y, z int, blockID string) {
	s.structure.SetBlock(voxel.Pos{X: x, Y: y, Z: z}, blockID)
}

// BlockStateAt returns the canonical block identifier at (x, y, z), or
// "minecraft:air" for any position never set.
func (s *Schematic) BlockStateAt(x, y, z int) string {
	return s.structure.BlockAt(voxel.Pos{X: x, Y: y, Z: z})
}

// Place composes other into this schematic at offset. Non-air blocks of
// other overwrite; air never does.
func (s *Schematic) Place(other *Schematic, offset voxel.Pos) {
	s.structure.Place(other.structure, offset)
}

// Sub extracts the inclusive region [min, max] as a new, independent
// schematic re-based to min and inheriting this schematic's version.
func (s *Schematic) Sub(minCorner, maxCorner voxel.Pos) (*Schematic, error) {
	sub, err := s.structure.Sub(minCorner, maxCorner)
	if err != nil {
		return nil, err
	}
	return Wrap(sub, s.version), nil
}

// Translate shifts every block by offset.
func (s *Schematic) Translate(offset voxel.Pos) {
	s.structure.Translate(offset)
}

// Center moves the bounds midpoint to the origin.
func (s *Schematic) Center() {
	s.structure.Center()
}

// RotateDegrees rotates around anchor; angles snap to quarter turns.
func (s *Schematic) RotateDegrees(anchor voxel.Pos, pitch, yaw, roll float64) error {
	return s.structure.RotateDegrees(anchor, pitch, yaw, roll)
}

// ScaleXYZ spreads blocks by integer factors per axis, leaving gaps.
func (s *Schematic) ScaleXYZ(anchor voxel.Pos, sx, sy, sz int) error {
	return s.structure.ScaleXYZ(anchor, sx, sy, sz)
}

// ScaleConnected scales and fills each block into a solid (or hollow)
// sx*sy*sz cell.
func (s *Schematic) ScaleConnected(anchor voxel.Pos, sx, sy, sz int, hollow bool) error {
	return s.structure.ScaleConnected(anchor, sx, sy, sz, hollow)
}

// ExportResult reports what an export produced.
type ExportResult struct {
	Path        string        // final file location
	Blocks      int           // non-air blocks written
	PaletteSize int           // distinct block states interned
	Bytes       int64         // compressed file size
	Duration    time.Duration // wall time of encode plus write
}

// Save writes the schematic to directory/name.schem at the schematic's
// version. The directory must already exist. A ".schem" suffix on name is
// tolerated and not doubled.
func (s *Schematic) Save(directory, name string) (ExportResult, error) {
	return s.SaveAs(directory, name, s.version)
}

// SaveAs is Save with a per-call version override.
func (s *Schematic) SaveAs(directory, name string, v format.Version) (ExportResult, error) {
	start := time.Now()
	name = strings.TrimSuffix(name, ".schem")
	path := filepath.Join(directory, name+".schem")

	if err := format.WriteFile(path, s.structure, v); err != nil {
		return ExportResult{}, fmt.Errorf("save %s: %w", path, err)
	}

	res := ExportResult{
		Path:        path,
		Blocks:      s.structure.Len(),
		PaletteSize: s.structure.Palette().Len(),
		Duration:    time.Since(start),
	}
	if info, err := os.Stat(path); err == nil {
		res.Bytes = info.Size()
	}
	return res, nil
}
