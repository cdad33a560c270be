package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keymap"
	"github.com/dshills/keycodec/internal/plugin"
	plua "github.com/dshills/keycodec/internal/plugin/lua"
)

func newScriptCommand(app *App) *cobra.Command {
	var (
		keymapPath string
		save       bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "script FILE.lua",
		Short: "Run a Lua script against a keymap",
		Long: `Run a Lua script with the keys and keymap modules loaded. The script edits
the keymap named with --keymap (created if missing), or a copy of the effective
keymap when --keymap is not given. --save writes the result back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if save && keymapPath == "" {
				return errors.New("--save needs --keymap")
			}

			var km *keymap.Keymap
			if keymapPath != "" {
				loaded, err := loadIfExists(keymapPath)
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

			host := plugin.NewHost(km,
				plugin.WithOutput(cmd.OutOrStdout()),
				plugin.WithExecutionTimeout(timeout),
				plugin.WithLogger(app.Logger),
			)
			if err := host.Run(cmd.Context(), args[0]); err != nil {
				return err
			}

			if save {
				if err := host.Keymap().Save(keymapPath); err != nil {
					return fmt.Errorf("saving %s: %w", keymapPath, err)
				}
				app.Logger.Info().Str("path", keymapPath).Int("bindings", host.Keymap().Len()).Msg("keymap saved")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file the script edits")
	cmd.Flags().BoolVar(&save, "save", false, "write the edited keymap back to --keymap")
	cmd.Flags().DurationVar(&timeout, "timeout", plua.DefaultExecutionTimeout, "abort the script after this long")
	return cmd
}
