package cmd

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/MeanderTrace/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive GUI",
	Long: `Launch the meander editor with live preview: edit the pattern
parameters on the left and watch the generated traces refit to the
viewport on the right.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		go func() {
			w := new(app.Window)
			w.Option(app.Title("MeanderTrace"))
			w.Option(app.Size(unit.Dp(1100), unit.Dp(720)))

			ui := appui.NewAppWithWindow(w)
			if err := ui.Run(); err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		app.Main()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
