package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saurlax/model-voxelization/pkg/stl"
	"github.com/saurlax/model-voxelization/pkg/voxel"
	"github.com/saurlax/model-voxelization/pkg/watcher"
)

var (
	exportDepth     int
	exportNormalize bool
	exportOut       string
	exportWatch     bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Voxelize a mesh and export the cube-surface mesh as STL",
	Long: `Convert a mesh into voxels and write the visible cube faces of the
occupied cells to a binary STL file. With --watch, the source file is
watched and the export is rebuilt whenever it changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVarP(&exportDepth, "depth", "d", 6, "Octree depth (0-10)")
	exportCmd.Flags().BoolVar(&exportNormalize, "normalize", true, "Fit the model into the [-1,1] cube before voxelizing")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "voxelized.stl", "Output STL file")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "Rebuild the export when the source file changes")
}

func runExport(cmd *cobra.Command, args []string) {
	filename := args[0]

	if err := exportOnce(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !exportWatch {
		return
	}

	w, err := watcher.New(500 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	err = w.Watch([]string{filename}, func(path string) {
		fmt.Printf("\n%s changed, rebuilding...\n", path)
		if err := exportOnce(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w.Start()
	fmt.Printf("Watching %s for changes (Ctrl-C to stop)\n", filename)
	select {}
}

// exportOnce runs a complete load-voxelize-export cycle. Each run
// rebuilds the grid from scratch; the previous output file is only
// replaced after a successful build
func exportOnce(filename string) error {
	model, err := loadModel(filename)
	if err != nil {
		return fmt.Errorf("loading mesh file: %w", err)
	}

	_, grid, err := voxelizeModel(model, exportDepth, exportNormalize)
	if err != nil {
		return fmt.Errorf("voxelizing mesh: %w", err)
	}

	surface := voxel.SurfaceMesh(grid)
	if err := stl.Write(exportOut, surface); err != nil {
		return fmt.Errorf("writing STL: %w", err)
	}

	fmt.Printf("Exported %d voxels (%d triangles) to %s\n",
		grid.Count(), surface.TriangleCount(), exportOut)
	return nil
}
