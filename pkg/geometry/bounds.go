package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that extends to
// enclose the first point added to it
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// NewBoundingBoxFromCorners creates a bounding box spanning two corners
func NewBoundingBoxFromCorners(min, max Vector3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExtendBox expands the bounding box to include another box
func (b *BoundingBox) ExtendBox(other BoundingBox) {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// IsEmpty reports whether the box has never been extended
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// HalfSize returns half the dimensions of the bounding box
func (b BoundingBox) HalfSize() Vector3 {
	return b.Size().Mul(0.5)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	size := b.Size()
	return size.Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether a point lies inside or on the box
func (b BoundingBox) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Octant returns one of the eight equal sub-boxes of the box.
// Bit 0 of i selects the upper X half, bit 1 the upper Y half and
// bit 2 the upper Z half, so octants 0..7 tile the box exactly.
func (b BoundingBox) Octant(i int) BoundingBox {
	center := b.Center()
	min := b.Min
	max := center
	if i&1 != 0 {
		min.X = center.X
		max.X = b.Max.X
	}
	if i&2 != 0 {
		min.Y = center.Y
		max.Y = b.Max.Y
	}
	if i&4 != 0 {
		min.Z = center.Z
		max.Z = b.Max.Z
	}
	return BoundingBox{Min: min, Max: max}
}
