package cli

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/key"
	"github.com/dshills/keycodec/internal/input/keycodec"
	"github.com/dshills/keycodec/internal/input/termkey"
)

var quitEvent = key.NewRuneEvent('c', key.ModCtrl)

func newCaptureCommand(app *App) *cobra.Command {
	var (
		keymapPath string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Show the binding record and action of each key pressed",
		Long: `Read keys from the terminal and show how each one is encoded and which
action the effective keymap binds it to. Press CONTROL+c to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := app.registry(keymapPath)
			if err != nil {
				return err
			}

			screen, err := app.openScreen()
			if err != nil {
				return err
			}

			var lines []string
			drawLine(screen, 0, "Press keys, CONTROL+c to stop")
			screen.Show()

			err = termkey.Capture(cmd.Context(), screen, func(ev key.Event) bool {
				if ev == quitEvent {
					return false
				}

				line := describeEvent(ev)
				if action, source, ok := reg.Lookup(ev); ok {
					line += fmt.Sprintf("  -> %s (%s)", action, source)
				}
				lines = append(lines, line)
				app.Logger.Debug().Str("event", fmt.Sprintf("%#v", ev)).Str("key", line).Msg("captured")

				screen.Clear()
				drawLine(screen, 0, "Press keys, CONTROL+c to stop")
				drawLine(screen, 2, line)
				screen.Show()

				return count <= 0 || len(lines) < count
			})
			screen.Fini()

			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&keymapPath, "keymap", "k", "", "keymap file (default keymap.path from the config)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many keys (0 means until CONTROL+c)")
	return cmd
}

// describeEvent renders the binding record of ev, e.g. {code: "Left", modifiers: "ALT"}.
func describeEvent(ev key.Event) string {
	b, err := keycodec.EncodeEvent(ev)
	if err != nil {
		return fmt.Sprintf("%s (not encodable: %v)", ev.Code, err)
	}
	return fmt.Sprintf("{code: %q, modifiers: %q}", b.Code, b.ModifiersText())
}

// drawLine writes text at row y, one grapheme cluster per cell run.
func drawLine(screen tcell.Screen, y int, text string) {
	x := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], tcell.StyleDefault)
		x += max(g.Width(), 1)
	}
}
