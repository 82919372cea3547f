package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saurlax/model-voxelization/version"
)

var rootCmd = &cobra.Command{
	Use:   "voxelize",
	Short: "Convert 3D mesh files into sparse voxel octrees",
	Long: `voxelize loads triangle meshes (STL, OBJ, 3MF) and converts them into
a sparse voxel octree at a configurable depth. The occupied cells can be
inspected, listed, or exported as a cube-surface mesh in STL format.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
