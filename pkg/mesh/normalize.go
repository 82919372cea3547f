package mesh

import (
	"github.com/saurlax/model-voxelization/pkg/geometry"
)

// CoordinateRange is the half-extent of the normalized coordinate
// space: normalized models fit inside [-1, 1] on every axis.
const CoordinateRange = 1.0

// DefaultNormalizeMargin leaves a 5% border inside the normalized
// range so geometry never sits exactly on the outer boundary.
const DefaultNormalizeMargin = 0.95

// NormalizeResult describes the transform applied by Normalize
type NormalizeResult struct {
	Center geometry.Vector3 // original model center, now at the origin
	Scale  float64          // uniform scale factor applied after recentering
}

// Normalize recenters the model on the origin and uniformly scales it
// so its largest dimension spans margin times the [-1, 1] range. A
// model with zero extent is recentered but not scaled. Triangle
// normals are unchanged since the transform is a uniform scale plus a
// translation.
func (m *Model) Normalize(margin float64) NormalizeResult {
	bbox := m.BoundingBox()
	if bbox.IsEmpty() {
		return NormalizeResult{Scale: 1.0}
	}

	center := bbox.Center()
	size := bbox.Size()
	maxDimension := size.X
	if size.Y > maxDimension {
		maxDimension = size.Y
	}
	if size.Z > maxDimension {
		maxDimension = size.Z
	}

	scale := 1.0
	if maxDimension > 0 {
		scale = CoordinateRange * 2.0 * margin / maxDimension
	}

	for i := range m.Triangles {
		t := &m.Triangles[i]
		t.V1 = t.V1.Sub(center).Mul(scale)
		t.V2 = t.V2.Sub(center).Mul(scale)
		t.V3 = t.V3.Sub(center).Mul(scale)
	}

	return NormalizeResult{Center: center, Scale: scale}
}
