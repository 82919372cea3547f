package voxel

import (
	"github.com/saurlax/model-voxelization/pkg/geometry"
)

// Voxel is one occupied cell at the target depth
type Voxel struct {
	Center   geometry.Vector3
	HalfSize geometry.Vector3
}

// Grid is the flattened output of a voxelization: every occupied leaf
// at the target depth, in deterministic pre-order. It is an immutable
// snapshot; changing the depth or the mesh means building a new one
type Grid struct {
	Voxels []Voxel
	Depth  int
	Bounds geometry.BoundingBox
}

// ExtractGrid flattens the occupied leaves of an octree into a voxel
// grid. Traversal is pre-order with children visited in octant order,
// so identical octrees always produce identical voxel sequences
func ExtractGrid(o *Octree) *Grid {
	grid := &Grid{
		Depth:  o.Depth,
		Bounds: o.Bounds,
	}
	if len(o.Nodes) == 0 {
		return grid
	}

	stack := []int32{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := &o.Nodes[idx]
		if node.State == NodeOccupied {
			grid.Voxels = append(grid.Voxels, Voxel{
				Center:   node.Bounds.Center(),
				HalfSize: node.Bounds.HalfSize(),
			})
			continue
		}

		for i := 7; i >= 0; i-- {
			if child := node.Children[i]; child != NoChild {
				stack = append(stack, child)
			}
		}
	}

	return grid
}

// Build voxelizes a triangle soup in one blocking call: bounding
// volume, octree subdivision and grid extraction. It either returns a
// complete grid or an error, never a partial result
func Build(triangles []geometry.Triangle, depth int) (*Grid, error) {
	octree, err := BuildOctree(triangles, depth)
	if err != nil {
		return nil, err
	}
	return ExtractGrid(octree), nil
}

// Count returns the number of occupied voxels
func (g *Grid) Count() int {
	return len(g.Voxels)
}

// CellSize returns the edge lengths of one cell at the grid's depth
func (g *Grid) CellSize() geometry.Vector3 {
	return g.Bounds.Size().Mul(1.0 / float64(int64(1)<<uint(g.Depth)))
}
