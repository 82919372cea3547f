// Package analysis produces summary reports for loaded models and
// voxelization results, consumed by the CLI output layer.
package analysis

import (
	"fmt"
	"math"

	"github.com/saurlax/model-voxelization/pkg/geometry"
	"github.com/saurlax/model-voxelization/pkg/mesh"
	"github.com/saurlax/model-voxelization/pkg/voxel"
)

// ModelReport contains measurements of a triangle soup
type ModelReport struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Degenerate    int // triangles with zero area
}

// AnalyzeModel measures a loaded model
func AnalyzeModel(model *mesh.Model) *ModelReport {
	report := &ModelReport{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}
	report.Dimensions = report.BoundingBox.Size()
	report.Volume = report.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for i := range model.Triangles {
		triangle := &model.Triangles[i]
		if triangle.IsDegenerate() {
			report.Degenerate++
		}
		for _, length := range triangle.EdgeLengths() {
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
			totalLength += length
			edgeCount++
		}
	}

	if edgeCount > 0 {
		report.MinEdgeLength = minLength
		report.MaxEdgeLength = maxLength
		report.AvgEdgeLength = totalLength / float64(edgeCount)
	}

	return report
}

// VoxelizationReport summarizes a voxelization run
type VoxelizationReport struct {
	Depth          int
	NodeCount      int
	OccupiedVoxels int
	DenseVoxels    int64   // 8^depth, what a dense grid would hold
	FillRatio      float64 // occupied / dense
	CellSize       geometry.Vector3
	SurfaceArea    float64 // total exposed area of the occupied cells
}

// AnalyzeVoxelization summarizes an octree and its extracted grid
func AnalyzeVoxelization(octree *voxel.Octree, grid *voxel.Grid) *VoxelizationReport {
	// 8^depth overflows int64 past depth 20; saturate instead
	dense := int64(math.MaxInt64)
	if grid.Depth <= 20 {
		dense = int64(1) << uint(3*grid.Depth)
	}

	report := &VoxelizationReport{
		Depth:          grid.Depth,
		NodeCount:      octree.NodeCount(),
		OccupiedVoxels: grid.Count(),
		DenseVoxels:    dense,
		CellSize:       grid.CellSize(),
	}
	if report.DenseVoxels > 0 {
		report.FillRatio = float64(report.OccupiedVoxels) / float64(report.DenseVoxels)
	}

	cell := report.CellSize
	faceArea := 2.0 * (cell.X*cell.Y + cell.Y*cell.Z + cell.X*cell.Z)
	report.SurfaceArea = faceArea * float64(report.OccupiedVoxels)

	return report
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
