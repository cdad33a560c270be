package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
	"github.com/dshills/keycodec/internal/input/keymap"
)

// JSON keymaps are edited in place, keeping their formatting and key order.
// YAML and TOML keymaps are decoded, changed and re-encoded.

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE ACTION",
		Short: "Print the key bound to an action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, action := args[0], args[1]
			ev, err := getBinding(path, action)
			if err != nil {
				return err
			}
			label, err := keycodec.Format(ev)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Styles.Render(app.Styles.Key, label))
			return nil
		},
	}
}

func newSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE ACTION CODE [MODIFIERS]",
		Short: "Bind an action to a key",
		Long: `Bind ACTION to CODE with optional MODIFIERS, creating FILE if needed.
The binding is validated before the file is touched.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, action := args[0], args[1]
			b := keycodec.Binding{Code: args[2]}
			if len(args) == 4 {
				b.Modifiers = &args[3]
			}
			ev, err := keycodec.DecodeEvent(b)
			if err != nil {
				return err
			}

			if err := setBinding(path, action, ev); err != nil {
				return err
			}
			label, _ := keycodec.Format(ev)
			app.Logger.Info().Str("path", path).Str("action", action).Str("key", label).Msg("binding set")
			return nil
		},
	}
}

func newUnsetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unset FILE ACTION",
		Short: "Remove an action's binding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, action := args[0], args[1]
			if err := unsetBinding(path, action); err != nil {
				return err
			}
			app.Logger.Info().Str("path", path).Str("action", action).Msg("binding removed")
			return nil
		},
	}
}

func isJSON(path string) (bool, error) {
	format, err := keymap.FormatFromPath(path)
	if err != nil {
		return false, err
	}
	return format == keymap.FormatJSON, nil
}

func getBinding(path, action string) (key.Event, error) {
	jsonFile, err := isJSON(path)
	if err != nil {
		return key.Event{}, err
	}
	if jsonFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return key.Event{}, err
		}
		return keymap.GetJSON(data, action)
	}

	km, err := keymap.Load(path)
	if err != nil {
		return key.Event{}, err
	}
	ev, ok := km.Get(action)
	if !ok {
		return key.Event{}, fmt.Errorf("%w: %q", keymap.ErrActionNotFound, action)
	}
	return ev, nil
}

func setBinding(path, action string, ev key.Event) error {
	if action == "" {
		return keymap.ErrEmptyAction
	}
	jsonFile, err := isJSON(path)
	if err != nil {
		return err
	}
	if jsonFile {
		data, err := readIfExists(path)
		if err != nil {
			return err
		}
		out, err := keymap.SetJSON(data, action, ev)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, 0644)
	}

	km, err := loadIfExists(path)
	if err != nil {
		return err
	}
	km.Set(action, ev)
	return km.Save(path)
}

func unsetBinding(path, action string) error {
	jsonFile, err := isJSON(path)
	if err != nil {
		return err
	}
	if jsonFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := keymap.DeleteJSON(data, action)
		if err != nil {
			return err
		}
		return os.WriteFile(path, out, 0644)
	}

	km, err := keymap.Load(path)
	if err != nil {
		return err
	}
	if !km.Remove(action) {
		return fmt.Errorf("%w: %q", keymap.ErrActionNotFound, action)
	}
	return km.Save(path)
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func loadIfExists(path string) (*keymap.Keymap, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return keymap.NewKeymap(path), nil
	}
	return keymap.Load(path)
}
