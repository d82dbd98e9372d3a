package voxel

// Pos is an integer lattice coordinate.
type Pos struct {
	X, Y, Z int
}

// Add returns p + q.
func (p Pos) Add(q Pos) Pos {
	return Pos{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Neg returns -p.
func (p Pos) Neg() Pos {
	return Pos{-p.X, -p.Y, -p.Z}
}

// Box is an inclusive axis-aligned bounding box.
type Box struct {
	Min, Max Pos
}

// Dimensions returns the box extent per axis, max - min + 1.
func (b Box) Dimensions() (dx, dy, dz int) {
	return b.Max.X - b.Min.X + 1, b.Max.Y - b.Min.Y + 1, b.Max.Z - b.Min.Z + 1
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Pos) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// extend grows the box to include p.
func (b Box) extend(p Pos) Box {
	return Box{
		Min: Pos{min(b.Min.X, p.X), min(b.Min.Y, p.Y), min(b.Min.Z, p.Z)},
		Max: Pos{max(b.Max.X, p.X), max(b.Max.Y, p.Y), max(b.Max.Z, p.Z)},
	}
}
