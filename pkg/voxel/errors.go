package voxel

import "errors"

var (
	// ErrEmptyMesh is returned when there is no geometry to voxelize
	ErrEmptyMesh = errors.New("mesh contains no triangles")

	// ErrInvalidDepth is returned for a negative octree depth
	ErrInvalidDepth = errors.New("octree depth must not be negative")

	// ErrDegenerateGeometry is returned when a triangle carries NaN or
	// infinite coordinates
	ErrDegenerateGeometry = errors.New("mesh contains non-finite coordinates")
)
