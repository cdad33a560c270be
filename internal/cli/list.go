package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keycodec"
	"github.com/dshills/keycodec/internal/input/keymap"
)

func newListCommand(app *App) *cobra.Command {
	var conflictsOnly bool

	cmd := &cobra.Command{
		Use:   "list [FILE]",
		Short: "List the bindings of a keymap",
		Long: `List every action and its key. Without FILE the effective keymap is shown:
the built-in defaults overridden by keymap.path and then by [bindings] from the
config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var km *keymap.Keymap
			if len(args) == 1 {
				loaded, err := keymap.Load(args[0])
				if err != nil {
					return err
				}
				km = loaded
			} else {
				reg, err := app.registry("")
				if err != nil {
					return err
				}
				km = reg.Resolve("effective")
			}

			s := app.Styles
			if conflictsOnly {
				for _, c := range km.Conflicts() {
					fmt.Fprintln(cmd.OutOrStdout(), s.Render(s.Warning, c.String()))
				}
				return nil
			}

			rows := make([]row, 0, km.Len())
			for _, action := range km.Actions() {
				ev, _ := km.Get(action)
				label, err := keycodec.Format(ev)
				if err != nil {
					return fmt.Errorf("action %q: %w", action, err)
				}
				rows = append(rows, row{left: action, right: label})
			}
			return writeRows(cmd.OutOrStdout(), s, s.Action, s.Key, rows)
		},
	}
	cmd.Flags().BoolVar(&conflictsOnly, "conflicts", false, "only list keys bound to several actions")
	return cmd
}
