// Package voxel converts triangle soups into sparse voxel octrees.
//
// The octree is stored as an arena: nodes live in a single slice and
// reference their children by index. Only cells the mesh surface
// passes through are ever allocated, so memory is proportional to the
// number of surface voxels rather than to the dense 8^depth grid.
package voxel

import (
	"fmt"

	"github.com/saurlax/model-voxelization/pkg/geometry"
)

// NodeState classifies an octree cell
type NodeState uint8

const (
	// NodeEmpty marks a cell no triangle passes through
	NodeEmpty NodeState = iota
	// NodeOccupied marks a leaf cell at the target depth that at
	// least one triangle intersects
	NodeOccupied
	// NodeMixed marks an interior cell with at least one child
	NodeMixed
)

// String returns a readable name for the state
func (s NodeState) String() string {
	switch s {
	case NodeEmpty:
		return "empty"
	case NodeOccupied:
		return "occupied"
	case NodeMixed:
		return "mixed"
	}
	return "unknown"
}

// NoChild marks an absent child slot in a node
const NoChild int32 = -1

// Node is one octree cell. Children are indices into the owning
// Octree's node arena, NoChild where an octant was pruned
type Node struct {
	Bounds   geometry.BoundingBox
	Depth    int
	State    NodeState
	Children [8]int32
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.State != NodeMixed
}

// Octree is a sparse octree over a triangle soup. Node 0 is the root.
// Nodes are laid out in depth-first pre-order, so rebuilding the same
// input yields a byte-identical arena
type Octree struct {
	Nodes  []Node
	Depth  int
	Bounds geometry.BoundingBox
}

// Bounds computes the axis-aligned bounding box enclosing all
// triangle vertices. It fails with ErrEmptyMesh for an empty slice
func Bounds(triangles []geometry.Triangle) (geometry.BoundingBox, error) {
	if len(triangles) == 0 {
		return geometry.BoundingBox{}, ErrEmptyMesh
	}
	bbox := geometry.NewBoundingBox()
	for _, t := range triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox, nil
}

// workItem is one pending subdivision: a node index and the indices
// of the triangles that intersect its bounds
type workItem struct {
	node      int32
	triangles []int32
}

// BuildOctree subdivides the bounding volume of the triangles down to
// the target depth. Cells no triangle touches are pruned and never
// allocated; leaf cells at the target depth are marked occupied. A
// triangle overlapping several octants is assigned to every octant it
// intersects, so surface coverage never has gaps along cell borders.
func BuildOctree(triangles []geometry.Triangle, depth int) (*Octree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	if err := validateTriangles(triangles); err != nil {
		return nil, err
	}

	bounds, err := Bounds(triangles)
	if err != nil {
		return nil, err
	}

	o := &Octree{
		Depth:  depth,
		Bounds: bounds,
	}

	root := o.newNode(bounds, 0)
	rootTriangles := make([]int32, len(triangles))
	for i := range rootTriangles {
		rootTriangles[i] = int32(i)
	}

	// Explicit worklist instead of recursion: recursion depth is
	// bounded anyway, but the stack form keeps sibling octants
	// independent and the arena layout deterministic. Children are
	// pushed in reverse octant order so they are processed 0..7.
	stack := []workItem{{node: root, triangles: rootTriangles}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nodeBounds := o.Nodes[item.node].Bounds
		nodeDepth := o.Nodes[item.node].Depth

		if nodeDepth == depth {
			// Target depth reached. The node exists only because at
			// least one triangle intersects it, so it is occupied.
			o.Nodes[item.node].State = NodeOccupied
			continue
		}

		// On a zero-extent axis the lower and upper halves coincide;
		// keep only the lower half so a flat cell never splits into
		// duplicate copies of itself.
		size := nodeBounds.Size()
		skip := 0
		if size.X == 0 {
			skip |= 1
		}
		if size.Y == 0 {
			skip |= 2
		}
		if size.Z == 0 {
			skip |= 4
		}

		var children [8]workItem
		childCount := 0
		for i := 0; i < 8; i++ {
			if i&skip != 0 {
				continue
			}
			octant := nodeBounds.Octant(i)
			var hits []int32
			for _, ti := range item.triangles {
				if geometry.TriangleIntersectsBox(triangles[ti], octant) {
					hits = append(hits, ti)
				}
			}
			if len(hits) == 0 {
				continue // pruned: empty octants are never stored
			}
			child := o.newNode(octant, nodeDepth+1)
			o.Nodes[item.node].Children[i] = child
			children[childCount] = workItem{node: child, triangles: hits}
			childCount++
		}

		if childCount == 0 {
			// Cannot happen for closed octants that tile the parent,
			// but an empty interior node must never claim children.
			o.Nodes[item.node].State = NodeEmpty
			continue
		}

		o.Nodes[item.node].State = NodeMixed
		for i := childCount - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return o, nil
}

// newNode appends a node to the arena and returns its index
func (o *Octree) newNode(bounds geometry.BoundingBox, depth int) int32 {
	idx := int32(len(o.Nodes))
	node := Node{Bounds: bounds, Depth: depth}
	for i := range node.Children {
		node.Children[i] = NoChild
	}
	o.Nodes = append(o.Nodes, node)
	return idx
}

// NodeCount returns the number of allocated nodes
func (o *Octree) NodeCount() int {
	return len(o.Nodes)
}

// OccupiedLeafCount returns the number of occupied leaves at the
// target depth
func (o *Octree) OccupiedLeafCount() int {
	count := 0
	for i := range o.Nodes {
		if o.Nodes[i].State == NodeOccupied {
			count++
		}
	}
	return count
}

// validateTriangles rejects NaN and infinite coordinates before they
// can poison the subdivision
func validateTriangles(triangles []geometry.Triangle) error {
	for i := range triangles {
		if !triangles[i].IsFinite() {
			return fmt.Errorf("%w: triangle %d", ErrDegenerateGeometry, i)
		}
	}
	return nil
}
