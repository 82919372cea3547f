// Package threemf parses 3MF packages into a triangle soup.
package threemf

import (
	"fmt"

	"github.com/hpinc/go3mf"

	"github.com/saurlax/model-voxelization/pkg/geometry"
	"github.com/saurlax/model-voxelization/pkg/mesh"
)

// Parse reads a 3MF file and returns the triangle soup of all mesh
// objects it contains. Object transforms from the build section are
// not applied; coordinates are taken as stored in the object meshes
func Parse(filename string) (*mesh.Model, error) {
	r, err := go3mf.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open 3MF file: %w", err)
	}
	defer r.Close()

	var doc go3mf.Model
	if err := r.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode 3MF file: %w", err)
	}

	return convert(&doc), nil
}

// convert flattens all mesh objects of a decoded 3MF document
func convert(doc *go3mf.Model) *mesh.Model {
	model := mesh.NewModel("")
	for _, md := range doc.Metadata {
		if md.Name.Local == "Title" {
			model.Name = md.Value
			break
		}
	}

	for _, obj := range doc.Resources.Objects {
		if obj.Mesh == nil {
			continue
		}
		verts := obj.Mesh.Vertices.Vertex
		for _, face := range obj.Mesh.Triangles.Triangle {
			v1 := verts[face.V1]
			v2 := verts[face.V2]
			v3 := verts[face.V3]
			triangle := geometry.Triangle{
				V1: geometry.NewVector3(float64(v1.X()), float64(v1.Y()), float64(v1.Z())),
				V2: geometry.NewVector3(float64(v2.X()), float64(v2.Y()), float64(v2.Z())),
				V3: geometry.NewVector3(float64(v3.X()), float64(v3.Y()), float64(v3.Z())),
			}
			triangle.Normal = triangle.CalculateNormal()
			model.AddTriangle(triangle)
		}
	}

	return model
}
