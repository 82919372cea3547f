package geometry

import "testing"

func unitBox() BoundingBox {
	return NewBoundingBoxFromCorners(NewVector3(0, 0, 0), NewVector3(1, 1, 1))
}

func TestTriangleIntersectsBoxInside(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0.2, 0.2, 0.5),
		NewVector3(0.8, 0.2, 0.5),
		NewVector3(0.5, 0.8, 0.5),
	)

	if !TriangleIntersectsBox(tri, unitBox()) {
		t.Error("triangle fully inside the box must intersect")
	}
}

func TestTriangleIntersectsBoxOutside(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(2, 2, 2),
		NewVector3(3, 2, 2),
		NewVector3(2, 3, 2),
	)

	if TriangleIntersectsBox(tri, unitBox()) {
		t.Error("triangle far outside the box must not intersect")
	}
}

func TestTriangleIntersectsBoxCrossing(t *testing.T) {
	// Large triangle slicing straight through the box
	tri := NewTriangle(
		Vector3{},
		NewVector3(-5, 0.5, -5),
		NewVector3(5, 0.5, -5),
		NewVector3(0, 0.5, 5),
	)

	if !TriangleIntersectsBox(tri, unitBox()) {
		t.Error("triangle slicing through the box must intersect")
	}
}

func TestTriangleIntersectsBoxTouchingFace(t *testing.T) {
	// Triangle lying exactly in the x=1 face plane
	tri := NewTriangle(
		Vector3{},
		NewVector3(1, 0, 0),
		NewVector3(1, 1, 0),
		NewVector3(1, 0, 1),
	)

	if !TriangleIntersectsBox(tri, unitBox()) {
		t.Error("triangle touching a box face must intersect")
	}
}

func TestTriangleIntersectsBoxTouchingCorner(t *testing.T) {
	// Triangle whose tip touches the (1,1,1) corner
	tri := NewTriangle(
		Vector3{},
		NewVector3(1, 1, 1),
		NewVector3(2, 1, 1),
		NewVector3(1, 2, 1),
	)

	if !TriangleIntersectsBox(tri, unitBox()) {
		t.Error("triangle touching a box corner must intersect")
	}
}

func TestTriangleIntersectsBoxEdgeCase(t *testing.T) {
	// Plane diagonal to all axes just beyond a corner: only the
	// triangle normal axis separates, the coordinate extents overlap
	tri := NewTriangle(
		Vector3{},
		NewVector3(1.9, 1.9, -0.5),
		NewVector3(-0.5, 1.9, 1.9),
		NewVector3(1.9, -0.5, 1.9),
	)

	if TriangleIntersectsBox(tri, unitBox()) {
		t.Error("diagonal plane beyond the corner must not intersect")
	}
}

func TestTriangleIntersectsBoxDegenerateSegment(t *testing.T) {
	// Zero-area triangle: collinear points form a segment through the box
	inside := NewTriangle(
		Vector3{},
		NewVector3(-1, 0.5, 0.5),
		NewVector3(0.5, 0.5, 0.5),
		NewVector3(2, 0.5, 0.5),
	)
	if !TriangleIntersectsBox(inside, unitBox()) {
		t.Error("degenerate segment through the box must intersect")
	}

	outside := NewTriangle(
		Vector3{},
		NewVector3(-1, 2, 2),
		NewVector3(0.5, 2, 2),
		NewVector3(2, 2, 2),
	)
	if TriangleIntersectsBox(outside, unitBox()) {
		t.Error("degenerate segment outside the box must not intersect")
	}
}

func TestTriangleIntersectsBoxDegeneratePoint(t *testing.T) {
	p := NewVector3(0.5, 0.5, 0.5)
	inside := NewTriangle(Vector3{}, p, p, p)
	if !TriangleIntersectsBox(inside, unitBox()) {
		t.Error("degenerate point inside the box must intersect")
	}

	q := NewVector3(5, 5, 5)
	outside := NewTriangle(Vector3{}, q, q, q)
	if TriangleIntersectsBox(outside, unitBox()) {
		t.Error("degenerate point outside the box must not intersect")
	}
}
