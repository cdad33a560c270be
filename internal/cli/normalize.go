package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keycodec"
)

func newNormalizeCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize CODE [MODIFIERS]",
		Short: "Print the canonical form of a binding",
		Long: `Decode CODE and MODIFIERS and encode them again, printing the canonical
display form ("ALT+CONTROL+Left") or, with --json, the binding record.

  keycodec normalize Left "CONTROL+ALT"   # ALT+CONTROL+Left
  keycodec normalize " x "                # x
  keycodec normalize a NONE --json        # {"code":"a","modifiers":"NONE"}`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := keycodec.Binding{Code: args[0]}
			if len(args) == 2 {
				b.Modifiers = &args[1]
			}

			ev, err := keycodec.DecodeEvent(b)
			if err != nil {
				return err
			}

			if asJSON {
				canon, err := keycodec.EncodeEvent(ev)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetEscapeHTML(false)
				return enc.Encode(canon)
			}

			label, err := keycodec.Format(ev)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Styles.Render(app.Styles.Key, label))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the canonical binding record")
	return cmd
}
