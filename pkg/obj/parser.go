// Package obj parses Wavefront OBJ files into a triangle soup.
// Only geometry is read: v and f statements. Texture coordinates,
// normals, materials and groups are skipped. Faces with more than
// three vertices are triangulated as a fan around the first vertex.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/saurlax/model-voxelization/pkg/geometry"
	"github.com/saurlax/model-voxelization/pkg/mesh"
)

// Parse reads an OBJ file and returns its triangle soup
func Parse(filename string) (*mesh.Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader parses OBJ data from a reader
func ParseReader(r io.Reader) (*mesh.Model, error) {
	scanner := bufio.NewScanner(r)
	model := mesh.NewModel("")

	var vertices []geometry.Vector3
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "o", "g":
			if model.Name == "" && len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			x, err1 := strconv.ParseFloat(fields[1], 64)
			y, err2 := strconv.ParseFloat(fields[2], 64)
			z, err3 := strconv.ParseFloat(fields[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("line %d: invalid vertex coordinates", lineNum)
			}
			vertices = append(vertices, geometry.NewVector3(x, y, z))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			corners := make([]geometry.Vector3, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				v, err := resolveVertex(ref, vertices)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				corners = append(corners, v)
			}
			// Fan triangulation around the first corner
			for i := 1; i < len(corners)-1; i++ {
				triangle := geometry.Triangle{
					V1: corners[0],
					V2: corners[i],
					V3: corners[i+1],
				}
				triangle.Normal = triangle.CalculateNormal()
				model.AddTriangle(triangle)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return model, nil
}

// resolveVertex resolves a face vertex reference of the form
// "v", "v/vt", "v//vn" or "v/vt/vn". Indices are 1-based; negative
// indices count back from the most recently defined vertex
func resolveVertex(ref string, vertices []geometry.Vector3) (geometry.Vector3, error) {
	idxStr := ref
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		idxStr = ref[:slash]
	}

	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid vertex reference %q", ref)
	}

	if idx < 0 {
		idx = len(vertices) + idx
	} else {
		idx--
	}

	if idx < 0 || idx >= len(vertices) {
		return geometry.Vector3{}, fmt.Errorf("vertex reference %q out of range", ref)
	}

	return vertices[idx], nil
}
