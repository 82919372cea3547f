package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/saurlax/model-voxelization/pkg/mesh"
	"github.com/saurlax/model-voxelization/pkg/obj"
	"github.com/saurlax/model-voxelization/pkg/stl"
	"github.com/saurlax/model-voxelization/pkg/threemf"
)

// loadModel loads a mesh file, dispatching on the file extension
func loadModel(filePath string) (*mesh.Model, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".stl":
		return stl.Parse(filePath)
	case ".obj":
		return obj.Parse(filePath)
	case ".3mf":
		return threemf.Parse(filePath)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl, .obj or .3mf)", ext)
	}
}
