package analysis

import (
	"math"
	"testing"

	"github.com/saurlax/model-voxelization/pkg/geometry"
	"github.com/saurlax/model-voxelization/pkg/mesh"
	"github.com/saurlax/model-voxelization/pkg/voxel"
)

func TestAnalyzeModel(t *testing.T) {
	model := mesh.NewModel("test")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 4, 0),
	))

	report := AnalyzeModel(model)

	if report.TriangleCount != 1 {
		t.Errorf("TriangleCount failed: expected 1, got %d", report.TriangleCount)
	}
	if math.Abs(report.SurfaceArea-6.0) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 6, got %v", report.SurfaceArea)
	}
	if math.Abs(report.MinEdgeLength-3.0) > 1e-10 {
		t.Errorf("MinEdgeLength failed: expected 3, got %v", report.MinEdgeLength)
	}
	if math.Abs(report.MaxEdgeLength-5.0) > 1e-10 {
		t.Errorf("MaxEdgeLength failed: expected 5, got %v", report.MaxEdgeLength)
	}
	if math.Abs(report.AvgEdgeLength-4.0) > 1e-10 {
		t.Errorf("AvgEdgeLength failed: expected 4, got %v", report.AvgEdgeLength)
	}
	if report.Degenerate != 0 {
		t.Errorf("Degenerate failed: expected 0, got %d", report.Degenerate)
	}
}

func TestAnalyzeModelDegenerateCount(t *testing.T) {
	model := mesh.NewModel("test")
	p := geometry.NewVector3(1, 1, 1)
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, p, p, p))

	report := AnalyzeModel(model)
	if report.Degenerate != 1 {
		t.Errorf("Degenerate failed: expected 1, got %d", report.Degenerate)
	}
}

func TestAnalyzeVoxelization(t *testing.T) {
	triangles := cubeFaceTriangles(
		geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1))

	octree, err := voxel.BuildOctree(triangles, 1)
	if err != nil {
		t.Fatalf("BuildOctree failed: %v", err)
	}
	grid := voxel.ExtractGrid(octree)

	report := AnalyzeVoxelization(octree, grid)

	if report.Depth != 1 {
		t.Errorf("Depth failed: expected 1, got %d", report.Depth)
	}
	if report.OccupiedVoxels != 8 {
		t.Errorf("OccupiedVoxels failed: expected 8, got %d", report.OccupiedVoxels)
	}
	if report.DenseVoxels != 8 {
		t.Errorf("DenseVoxels failed: expected 8, got %d", report.DenseVoxels)
	}
	if math.Abs(report.FillRatio-1.0) > 1e-10 {
		t.Errorf("FillRatio failed: expected 1, got %v", report.FillRatio)
	}
	if report.CellSize != geometry.NewVector3(0.5, 0.5, 0.5) {
		t.Errorf("CellSize failed: expected (0.5,0.5,0.5), got %v", report.CellSize)
	}
}

func TestAnalyzeVoxelizationDeepGridSaturates(t *testing.T) {
	// 8^depth exceeds int64 past depth 20; the dense count must
	// saturate instead of wrapping negative
	octree := &voxel.Octree{Depth: 25}
	grid := &voxel.Grid{
		Depth: 25,
		Bounds: geometry.NewBoundingBoxFromCorners(
			geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1)),
	}

	report := AnalyzeVoxelization(octree, grid)

	if report.DenseVoxels != math.MaxInt64 {
		t.Errorf("DenseVoxels failed: expected MaxInt64, got %d", report.DenseVoxels)
	}
	if report.FillRatio != 0 {
		t.Errorf("FillRatio failed: expected 0, got %v", report.FillRatio)
	}
}

// cubeFaceTriangles returns the 12 triangles of an axis-aligned cube
func cubeFaceTriangles(min, max geometry.Vector3) []geometry.Triangle {
	corner := func(i int) geometry.Vector3 {
		v := min
		if i&1 != 0 {
			v.X = max.X
		}
		if i&2 != 0 {
			v.Y = max.Y
		}
		if i&4 != 0 {
			v.Z = max.Z
		}
		return v
	}

	quads := [6][4]int{
		{0, 2, 6, 4},
		{1, 5, 7, 3},
		{0, 4, 5, 1},
		{2, 3, 7, 6},
		{0, 1, 3, 2},
		{4, 6, 7, 5},
	}

	triangles := make([]geometry.Triangle, 0, 12)
	for _, q := range quads {
		t1 := geometry.Triangle{V1: corner(q[0]), V2: corner(q[1]), V3: corner(q[2])}
		t2 := geometry.Triangle{V1: corner(q[0]), V2: corner(q[2]), V3: corner(q[3])}
		triangles = append(triangles, t1, t2)
	}
	return triangles
}
