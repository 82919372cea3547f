package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/saurlax/model-voxelization/pkg/mesh"
)

// Write writes a model to a binary STL file
func Write(filename string, model *mesh.Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := WriteTo(w, model); err != nil {
		return err
	}
	return w.Flush()
}

// WriteTo writes a model to a writer in binary STL format: an 80-byte
// header carrying the model name, a little-endian triangle count and
// one 50-byte record per triangle
func WriteTo(w io.Writer, model *mesh.Model) error {
	header := make([]byte, 80)
	copy(header, model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	count := uint32(model.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := [12]float32{
			float32(triangle.Normal.X), float32(triangle.Normal.Y), float32(triangle.Normal.Z),
			float32(triangle.V1.X), float32(triangle.V1.Y), float32(triangle.V1.Z),
			float32(triangle.V2.X), float32(triangle.V2.Y), float32(triangle.V2.Z),
			float32(triangle.V3.X), float32(triangle.V3.Y), float32(triangle.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		// Attribute byte count, always zero
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}

	return nil
}
