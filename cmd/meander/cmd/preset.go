package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/MeanderTrace/pkg/serpentine/preset"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Parameter preset file operations",
	Long:  `Commands for reading and writing meander parameter preset files`,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Write the given parameters to a preset file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Parse a preset file and print the effective parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd)
	presetCmd.AddCommand(presetShowCmd)
	addParameterFlags(presetSaveCmd)
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	p, err := resolveParameters(cmd)
	if err != nil {
		return err
	}
	if err := preset.Save(args[0], p); err != nil {
		return fmt.Errorf("saving preset: %w", err)
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	p, err := preset.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading preset: %w", err)
	}

	fmt.Printf("radius:      %g mm\n", p.Radius)
	fmt.Printf("amplitude:   %g mm\n", p.Amplitude)
	fmt.Printf("angle:       %g deg\n", p.Angle)
	fmt.Printf("length:      %g mm\n", p.Length)
	fmt.Printf("pitch:       %g mm\n", p.Pitch)
	fmt.Printf("front:       %d runs, width %g mm\n", p.FrontCount, p.FrontWidth)
	fmt.Printf("back:        %d runs, width %g mm\n", p.BackCount, p.BackWidth)
	fmt.Printf("board edge:  %v\n", !p.NoEdge)
	return nil
}
