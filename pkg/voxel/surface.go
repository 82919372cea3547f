package voxel

import (
	"math"

	"github.com/saurlax/model-voxelization/pkg/geometry"
	"github.com/saurlax/model-voxelization/pkg/mesh"
)

// cubeCorner holds the sign pattern of one cube corner relative to
// the voxel center
type cubeCorner struct {
	x, y, z float64
}

// The eight corners of a unit cube around the origin. Face quads
// index into this table
var cubeCorners = [8]cubeCorner{
	{-1, -1, -1}, // 0: back bottom left
	{+1, -1, -1}, // 1: back bottom right
	{+1, -1, +1}, // 2: front bottom right
	{-1, -1, +1}, // 3: front bottom left
	{-1, +1, -1}, // 4: back top left
	{+1, +1, -1}, // 5: back top right
	{+1, +1, +1}, // 6: front top right
	{-1, +1, +1}, // 7: front top left
}

// cubeFace is one cube face: the neighbor direction that hides it,
// the corner quad, and the outward normal. emitFace winds the quad so
// the triangle normals point outward
type cubeFace struct {
	neighbor [3]int
	quad     [4]int
	normal   geometry.Vector3
}

var cubeFaces = [6]cubeFace{
	{neighbor: [3]int{+1, 0, 0}, quad: [4]int{1, 2, 6, 5}, normal: geometry.Vector3{X: 1}},
	{neighbor: [3]int{-1, 0, 0}, quad: [4]int{0, 4, 7, 3}, normal: geometry.Vector3{X: -1}},
	{neighbor: [3]int{0, +1, 0}, quad: [4]int{4, 5, 6, 7}, normal: geometry.Vector3{Y: 1}},
	{neighbor: [3]int{0, -1, 0}, quad: [4]int{0, 3, 2, 1}, normal: geometry.Vector3{Y: -1}},
	{neighbor: [3]int{0, 0, +1}, quad: [4]int{3, 7, 6, 2}, normal: geometry.Vector3{Z: 1}},
	{neighbor: [3]int{0, 0, -1}, quad: [4]int{0, 1, 5, 4}, normal: geometry.Vector3{Z: -1}},
}

// SurfaceMesh converts a voxel grid into a renderable cube mesh.
// Faces shared by two occupied voxels are culled, so the result is
// only the visible shell. Two triangles are emitted per visible face
// with outward normals, in grid order
func SurfaceMesh(grid *Grid) *mesh.Model {
	model := mesh.NewModel("voxelized")
	if grid.Count() == 0 {
		return model
	}

	cell := grid.CellSize()
	occupied := make(map[[3]int]struct{}, grid.Count())
	coords := make([][3]int, grid.Count())
	for i, v := range grid.Voxels {
		c := grid.cellCoord(v.Center, cell)
		coords[i] = c
		occupied[c] = struct{}{}
	}

	for i, v := range grid.Voxels {
		coord := coords[i]
		for _, face := range cubeFaces {
			neighbor := [3]int{
				coord[0] + face.neighbor[0],
				coord[1] + face.neighbor[1],
				coord[2] + face.neighbor[2],
			}
			if _, hidden := occupied[neighbor]; hidden {
				continue
			}
			emitFace(model, v, face)
		}
	}

	return model
}

// cellCoord maps a voxel center to its integer cell coordinate within
// the grid bounds
func (g *Grid) cellCoord(center geometry.Vector3, cell geometry.Vector3) [3]int {
	rel := center.Sub(g.Bounds.Min)
	return [3]int{
		cellIndex(rel.X, cell.X),
		cellIndex(rel.Y, cell.Y),
		cellIndex(rel.Z, cell.Z),
	}
}

// cellIndex converts a relative coordinate to a cell index. A
// zero-extent axis has only one cell layer, index 0
func cellIndex(rel, cell float64) int {
	if cell == 0 {
		return 0
	}
	return int(math.Round(rel/cell - 0.5))
}

// emitFace appends the two triangles of one cube face
func emitFace(model *mesh.Model, v Voxel, face cubeFace) {
	var quad [4]geometry.Vector3
	for i, ci := range face.quad {
		corner := cubeCorners[ci]
		quad[i] = geometry.Vector3{
			X: v.Center.X + corner.x*v.HalfSize.X,
			Y: v.Center.Y + corner.y*v.HalfSize.Y,
			Z: v.Center.Z + corner.z*v.HalfSize.Z,
		}
	}
	model.AddTriangle(geometry.NewTriangle(face.normal, quad[0], quad[2], quad[1]))
	model.AddTriangle(geometry.NewTriangle(face.normal, quad[0], quad[3], quad[2]))
}
