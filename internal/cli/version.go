package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keycodec %s\n", app.Info.Version)
			fmt.Fprintf(out, "Commit: %s\n", app.Info.Commit)
			fmt.Fprintf(out, "Built: %s\n", app.Info.Date)
		},
	}
}
