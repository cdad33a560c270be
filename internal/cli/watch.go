package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keymap"
	"github.com/dshills/keycodec/internal/logging"
)

// ErrNoKeymap is returned when a command needs a keymap file and neither an
// argument nor keymap.path names one.
var ErrNoKeymap = errors.New("no keymap file given and keymap.path is not set")

func newWatchCommand(app *App) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "watch [FILE]",
		Short: "Validate a keymap file every time it changes",
		Long: `Watch FILE (default keymap.path from the config) and re-check it after
every save until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.Config.Keymap.Path
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return ErrNoKeymap
			}

			ctx := logging.WithComponent(cmd.Context(), "watch")
			log := logging.FromContext(ctx)
			out := cmd.OutOrStdout()

			app.reportReload(out, path, "loaded")(keymap.Load(path))
			log.Info().Str("path", path).Msg("watching keymap")

			report := app.reportReload(out, path, "reloaded")
			return keymap.WatchWithDelay(ctx, path, delay, func(km *keymap.Keymap, err error) {
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("reload failed")
				} else {
					log.Debug().Str("path", path).Int("bindings", km.Len()).Msg("reloaded")
				}
				report(km, err)
			})
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", keymap.DefaultWatchDelay, "wait this long for writes to settle")
	return cmd
}

// reportReload returns a keymap.ReloadFunc that prints each outcome.
func (a *App) reportReload(w io.Writer, path, verb string) keymap.ReloadFunc {
	s := a.Styles
	return func(km *keymap.Keymap, err error) {
		if err != nil {
			fmt.Fprintf(w, "%s %s\n", s.Render(s.Error, "error"), path)
			if bindingErrs := keymap.BindingErrors(err); len(bindingErrs) > 0 {
				for _, be := range bindingErrs {
					fmt.Fprintf(w, "  %s: %v\n", s.Render(s.Action, be.Action), be.Err)
					if hint := Hint(be.Err); hint != "" {
						fmt.Fprintf(w, "    %s\n", s.Render(s.Muted, hint))
					}
				}
			} else {
				fmt.Fprintf(w, "  %v\n", err)
			}
			return
		}

		fmt.Fprintf(w, "%s %s %s\n", s.Render(s.Success, verb), path,
			s.Render(s.Muted, fmt.Sprintf("(%d bindings)", km.Len())))
		for _, c := range km.Conflicts() {
			fmt.Fprintf(w, "  %s %s\n", s.Render(s.Warning, "conflict"), c)
		}
	}
}
