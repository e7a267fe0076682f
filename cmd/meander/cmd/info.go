package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show pattern statistics",
	Long: `Generate the pattern for the given parameters and print per-layer
segment counts and the overall bounding box.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	addParameterFlags(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := resolveParameters(cmd)
	if err != nil {
		return err
	}

	layers, err := serpentine.Generate(p)
	if err != nil {
		return fmt.Errorf("generating pattern: %w", err)
	}

	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Layers: %d\n", len(layers))
	for _, name := range names {
		layer := layers[name]
		lines, arcs := 0, 0
		for _, seg := range layer.Segments {
			switch seg.(type) {
			case geom.LineSeg:
				lines++
			case geom.Arc:
				arcs++
			}
		}
		fmt.Printf("  %-10s %3d lines, %3d arcs, width %.2f mm\n", name, lines, arcs, layer.Width)
	}

	bbox := layers.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Printf("Pattern size: %.2f x %.2f mm\n", bbox.Width(), bbox.Height())
		fmt.Printf("Pattern center: (%.2f, %.2f) mm\n", bbox.Center().X, bbox.Center().Y)
	}
	return nil
}
