package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/keycodec/internal/input/keymap"
)

// ErrCheckFailed is returned by check when any file is invalid.
var ErrCheckFailed = errors.New("check failed")

func newCheckCommand(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate keymap files",
		Long: `Decode every binding in each keymap file and report all invalid records.
Actions bound to the same key are reported as warnings, or as errors with --strict.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if !app.checkFile(cmd.OutOrStdout(), path, strict) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files invalid", ErrCheckFailed, failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat conflicting bindings as errors")
	return cmd
}

// checkFile reports on one file and returns whether it passed.
func (a *App) checkFile(w io.Writer, path string, strict bool) bool {
	s := a.Styles
	km, err := keymap.Load(path)
	if err != nil {
		a.Logger.Debug().Err(err).Str("path", path).Msg("keymap invalid")
		fmt.Fprintf(w, "%s %s\n", s.Render(s.Error, "FAIL"), path)

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
		return false
	}

	conflicts := km.Conflicts()
	ok := !strict || len(conflicts) == 0
	status := s.Render(s.Success, "ok")
	if !ok {
		status = s.Render(s.Error, "FAIL")
	}
	fmt.Fprintf(w, "%s %s %s\n", status, path, s.Render(s.Muted, fmt.Sprintf("(%d bindings)", km.Len())))

	for _, c := range conflicts {
		fmt.Fprintf(w, "  %s %s\n", s.Render(s.Warning, "conflict"), c)
		a.Logger.Warn().Str("path", path).Strs("actions", c.Actions).Msg("conflicting bindings")
	}
	return ok
}
