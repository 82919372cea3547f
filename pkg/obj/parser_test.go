package obj

import (
	"strings"
	"testing"

	"github.com/saurlax/model-voxelization/pkg/geometry"
)

const simpleQuad = `# a single quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`

func TestParseQuadFan(t *testing.T) {
	model, err := ParseReader(strings.NewReader(simpleQuad))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.Name != "quad" {
		t.Errorf("Name failed: expected quad, got %q", model.Name)
	}

	// A quad fans into two triangles
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}

	first := model.Triangles[0]
	if first.V1 != geometry.NewVector3(0, 0, 0) ||
		first.V2 != geometry.NewVector3(1, 0, 0) ||
		first.V3 != geometry.NewVector3(1, 1, 0) {
		t.Errorf("first triangle failed: got %v", first)
	}

	second := model.Triangles[1]
	if second.V1 != geometry.NewVector3(0, 0, 0) ||
		second.V2 != geometry.NewVector3(1, 1, 0) ||
		second.V3 != geometry.NewVector3(0, 1, 0) {
		t.Errorf("second triangle failed: got %v", second)
	}
}

func TestParseVertexReferences(t *testing.T) {
	// Negative indices and v/vt/vn forms must resolve to the same vertices
	input := `v 0 0 0
v 1 0 0
v 0 1 0
f -3/1/1 -2/2/1 -1/3/1
`
	model, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}

	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}

	tri := model.Triangles[0]
	if tri.V1 != geometry.NewVector3(0, 0, 0) ||
		tri.V2 != geometry.NewVector3(1, 0, 0) ||
		tri.V3 != geometry.NewVector3(0, 1, 0) {
		t.Errorf("triangle failed: got %v", tri)
	}

	// The computed normal faces +Z for this winding
	if tri.Normal.Distance(geometry.NewVector3(0, 0, 1)) > 1e-10 {
		t.Errorf("Normal failed: got %v", tri.Normal)
	}
}

func TestParseIgnoresNonGeometry(t *testing.T) {
	input := `mtllib cube.mtl
usemtl stone
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
s off
f 1 2 3
`
	model, err := ParseReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}
}

func TestParseOutOfRangeReference(t *testing.T) {
	input := `v 0 0 0
f 1 2 3
`
	if _, err := ParseReader(strings.NewReader(input)); err == nil {
		t.Error("expected error for out-of-range vertex reference")
	}
}
