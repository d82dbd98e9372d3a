package voxel

import (
	"fmt"
	"math"
)

// Translate adds offset to every stored coordinate and to the bounds. The
// coordinate index is rebuilt so that BlockStateAt reflects the new
// absolute positions immediately.
func (s *Structure) Translate(offset Pos) {
	if offset == (Pos{}) {
		return
	}
	blocks := make(map[Pos]int, len(s.blocks))
	for p, idx := range s.blocks {
		blocks[p.Add(offset)] = idx
	}
	s.blocks = blocks

	blockEntities := make(map[Pos]*BlockEntity, len(s.blockEntities))
	for p, be := range s.blockEntities {
		be.Pos = p.Add(offset)
		blockEntities[be.Pos] = be
	}
	s.blockEntities = blockEntities

	if s.hasBounds {
		s.bounds = Box{Min: s.bounds.Min.Add(offset), Max: s.bounds.Max.Add(offset)}
	}
}

// Center translates the structure so its bounds midpoint lands on the
// origin. The midpoint is floorDiv(min+max, 2) per axis: for even extents
// it snaps to the lower of the two middle cells. Empty structures are left
// alone.
func (s *Structure) Center() {
	if !s.hasBounds {
		return
	}
	mid := Pos{
		X: floorDiv(s.bounds.Min.X+s.bounds.Max.X, 2),
		Y: floorDiv(s.bounds.Min.Y+s.bounds.Max.Y, 2),
		Z: floorDiv(s.bounds.Min.Z+s.bounds.Max.Z, 2),
	}
	s.Translate(mid.Neg())
}

// RotateDegrees rotates the structure around anchor by the given angles in
// degrees: pitch about X, then yaw about Y, then roll about Z. Only quarter
// turns are meaningful on a voxel grid, so each angle is snapped to the
// nearest multiple of 90°; non-finite angles are rejected.
//
// One quarter turn maps, relative to the anchor: yaw=90 (x,y,z) to
// (-z,y,x), pitch=90 (x,y,z) to (x,-z,y), roll=90 (x,y,z) to (-y,x,z).
func (s *Structure) RotateDegrees(anchor Pos, pitch, yaw, roll float64) error {
	px, err := quarterTurns("pitch", pitch)
	if err != nil {
		return err
	}
	yw, err := quarterTurns("yaw", yaw)
	if err != nil {
		return err
	}
	rl, err := quarterTurns("roll", roll)
	if err != nil {
		return err
	}
	if px == 0 && yw == 0 && rl == 0 {
		return nil
	}
	s.remap(func(p Pos) Pos {
		rel := p.Sub(anchor)
		for range px {
			rel = Pos{rel.X, -rel.Z, rel.Y}
		}
		for range yw {
			rel = Pos{-rel.Z, rel.Y, rel.X}
		}
		for range rl {
			rel = Pos{-rel.Y, rel.X, rel.Z}
		}
		return anchor.Add(rel)
	})
	return nil
}

// ScaleXYZ maps every block at (x,y,z) to anchor + (rel.x*sx, rel.y*sy,
// rel.z*sz). Scaling spreads blocks apart and leaves gaps; it does not fill
// the scaled volume. Use ScaleConnected for a filled result.
func (s *Structure) ScaleXYZ(anchor Pos, sx, sy, sz int) error {
	if err := checkScale(sx, sy, sz); err != nil {
		return err
	}
	if sx == 1 && sy == 1 && sz == 1 {
		return nil
	}
	s.remap(func(p Pos) Pos {
		rel := p.Sub(anchor)
		return anchor.Add(Pos{rel.X * sx, rel.Y * sy, rel.Z * sz})
	})
	return nil
}

// ScaleConnected scales like ScaleXYZ, then fills the gaps by placing a
// copy of the scaled structure at every grid offset (i,j,k) with
// 0 <= i < sx and so on, turning each original block into a solid
// sx*sy*sz cell. With hollow set, offsets interior on all three axes are
// skipped, leaving each cell as a shell.
func (s *Structure) ScaleConnected(anchor Pos, sx, sy, sz int, hollow bool) error {
	if err := checkScale(sx, sy, sz); err != nil {
		return err
	}
	if sx == 1 && sy == 1 && sz == 1 {
		return nil
	}
	scaled := s.Clone()
	if err := scaled.ScaleXYZ(anchor, sx, sy, sz); err != nil {
		return err
	}
	s.reset()
	for i := range sx {
		for j := range sy {
			for k := range sz {
				if hollow && i > 0 && i < sx-1 && j > 0 && j < sy-1 && k > 0 && k < sz-1 {
					continue
				}
				s.Place(scaled, Pos{i, j, k})
			}
		}
	}
	return nil
}

// remap rebuilds the coordinate index through fn and recomputes tight
// bounds from the surviving entries.
func (s *Structure) remap(fn func(Pos) Pos) {
	blocks := make(map[Pos]int, len(s.blocks))
	s.hasBounds = false
	for p, idx := range s.blocks {
		q := fn(p)
		blocks[q] = idx
		if !s.hasBounds {
			s.bounds = Box{Min: q, Max: q}
			s.hasBounds = true
		} else {
			s.bounds = s.bounds.extend(q)
		}
	}
	s.blocks = blocks

	blockEntities := make(map[Pos]*BlockEntity, len(s.blockEntities))
	for p, be := range s.blockEntities {
		be.Pos = fn(p)
		blockEntities[be.Pos] = be
	}
	s.blockEntities = blockEntities
}

// quarterTurns snaps an angle in degrees to a quarter-turn count in [0, 4).
func quarterTurns(axis string, degrees float64) (int, error) {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return 0, fmt.Errorf("%w: %s angle must be finite, got %v", ErrInvalidArgument, axis, degrees)
	}
	turns := int(math.Round(degrees/90)) % 4
	if turns < 0 {
		turns += 4
	}
	return turns, nil
}

func checkScale(sx, sy, sz int) error {
	if sx < 1 || sy < 1 || sz < 1 {
		return fmt.Errorf("%w: scale factors must be positive integers, got (%d, %d, %d)", ErrInvalidArgument, sx, sy, sz)
	}
	return nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
