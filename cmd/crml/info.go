package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/karai17/crml/pkg/models"
)

func newInfoCmd() *cobra.Command {
	var smooth, clean bool
	cmd := &cobra.Command{
		Use:   "info <model.obj|model.glb|model.gltf|model.stl>",
		Short: "Display model information",
		Long:  "Display detailed information about a 3D model file including format, polygon count, vertex count, bounding box, centroid and surface area.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0], smooth, clean)
		},
	}
	cmd.Flags().BoolVar(&smooth, "smooth", false, "Compute averaged vertex normals")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove degenerate, internal and duplicate faces before reporting")
	return cmd
}

func runInfo(cmd *cobra.Command, modelPath string, smooth, clean bool) error {
	ext := strings.ToLower(filepath.Ext(modelPath))

	info, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	mesh, err := models.Load(modelPath, smooth)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	log.S(log.Info, "loaded model", log.Str("path", modelPath), log.Attr("vertices", mesh.VertexCount()),
		log.Attr("triangles", mesh.TriangleCount()))

	removed := 0
	if clean {
		removed = mesh.CleanMesh()
	}

	mesh.CalculateBounds()
	size := mesh.Size()
	uvMin, uvMax := mesh.UVBounds()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(modelPath))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	if clean {
		fmt.Fprintf(w, "Removed:    %d faces\n", removed)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bounds Min: %s\n", mesh.BoundsMin)
	fmt.Fprintf(w, "Bounds Max: %s\n", mesh.BoundsMax)
	fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:     %s\n", mesh.Center())
	fmt.Fprintf(w, "Centroid:   %s\n", mesh.Centroid())
	fmt.Fprintf(w, "Area:       %.3f\n", mesh.SurfaceArea())
	if !uvMin.IsOrigin() || !uvMax.IsOrigin() {
		fmt.Fprintf(w, "UV Range:   %s - %s\n", uvMin, uvMax)
	}
	return nil
}
