package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "meander",
	Short: "MeanderTrace - serpentine PCB trace generator",
	Long: `MeanderTrace generates serpentine (meander) trace patterns for PCB
strain gauges and delay lines, with a live interactive preview.

Examples:
  meander ui                          # Launch interactive GUI
  meander info --amplitude 8          # Show pattern statistics
  meander render -o out.png           # Render pattern to a PNG
  meander preset save strain.mtp      # Write current parameters to a preset`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
