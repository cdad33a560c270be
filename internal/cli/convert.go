package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keymap"
)

func newConvertCommand(app *App) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a keymap between JSON, YAML and TOML",
		Long: `Read IN and write it to OUT in the format given by OUT's extension.
Use "-" as OUT to print to stdout in the format chosen with --format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			km, err := keymap.Load(in)
			if err != nil {
				return err
			}

			if out == "-" {
				format, err := keymap.ParseFormat(formatName)
				if err != nil {
					return err
				}
				return km.Encode(cmd.OutOrStdout(), format)
			}

			if err := km.Save(out); err != nil {
				return err
			}
			app.Logger.Info().Str("from", in).Str("to", out).Int("bindings", km.Len()).Msg("keymap converted")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bindings to %s\n", km.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatName, "format", "f", string(keymap.FormatJSON), "output format when OUT is -")
	return cmd
}
