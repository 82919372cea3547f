package geometry

// epsilonAxis is the squared length below which a candidate separating
// axis is considered degenerate and skipped. A skipped axis can never
// produce a false "no intersection" answer, only a slightly
// conservative "intersection" one.
const epsilonAxis = 1e-12

// TriangleIntersectsBox reports whether a triangle's surface intersects
// or touches an axis-aligned box. It performs a separating-axis test
// over the three box face normals, the triangle normal and the nine
// cross products of box edges with triangle edges. Zero-area triangles
// are handled by skipping degenerate axes, which reduces the test to a
// correct segment-box or point-box check.
func TriangleIntersectsBox(t Triangle, box BoundingBox) bool {
	center := box.Center()
	half := box.HalfSize()

	// Translate the triangle so the box is centered at the origin.
	v0 := t.V1.Sub(center)
	v1 := t.V2.Sub(center)
	v2 := t.V3.Sub(center)

	// Box face normals: the projection of the triangle onto each
	// coordinate axis must overlap the box extent.
	if min3(v0.X, v1.X, v2.X) > half.X || max3(v0.X, v1.X, v2.X) < -half.X {
		return false
	}
	if min3(v0.Y, v1.Y, v2.Y) > half.Y || max3(v0.Y, v1.Y, v2.Y) < -half.Y {
		return false
	}
	if min3(v0.Z, v1.Z, v2.Z) > half.Z || max3(v0.Z, v1.Z, v2.Z) < -half.Z {
		return false
	}

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	// Triangle plane: skipped for zero-area triangles, whose cross
	// product has no direction.
	normal := e0.Cross(e1)
	if normal.LengthSquared() > epsilonAxis {
		if !axisOverlaps(normal, v0, v1, v2, half) {
			return false
		}
	}

	// Nine edge-cross axes: box axis x triangle edge.
	axes := [9]Vector3{
		{X: 0, Y: -e0.Z, Z: e0.Y}, // X x e0
		{X: 0, Y: -e1.Z, Z: e1.Y}, // X x e1
		{X: 0, Y: -e2.Z, Z: e2.Y}, // X x e2
		{X: e0.Z, Y: 0, Z: -e0.X}, // Y x e0
		{X: e1.Z, Y: 0, Z: -e1.X}, // Y x e1
		{X: e2.Z, Y: 0, Z: -e2.X}, // Y x e2
		{X: -e0.Y, Y: e0.X, Z: 0}, // Z x e0
		{X: -e1.Y, Y: e1.X, Z: 0}, // Z x e1
		{X: -e2.Y, Y: e2.X, Z: 0}, // Z x e2
	}
	for _, axis := range axes {
		if axis.LengthSquared() <= epsilonAxis {
			continue
		}
		if !axisOverlaps(axis, v0, v1, v2, half) {
			return false
		}
	}

	return true
}

// axisOverlaps projects the triangle and the origin-centered box onto
// an axis and reports whether the projections overlap
func axisOverlaps(axis, v0, v1, v2, half Vector3) bool {
	p0 := v0.Dot(axis)
	p1 := v1.Dot(axis)
	p2 := v2.Dot(axis)

	r := half.X*abs(axis.X) + half.Y*abs(axis.Y) + half.Z*abs(axis.Z)

	return min3(p0, p1, p2) <= r && max3(p0, p1, p2) >= -r
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
