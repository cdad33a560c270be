package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/keycodec/internal/logging"
)

// NewRootCommand builds the keycodec command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(newApp(info))
}

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "keycodec",
		Short: "Encode, decode and edit keyboard bindings",
		Long: `keycodec converts keyboard events to and from their text form
("ALT+CONTROL" + "Left") and manages keymap files built from those records.

Keymap files map action names to {code, modifiers} records and may be JSON,
YAML or TOML; the format is chosen from the file extension.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}
			return app.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/keycodec/keycodec.toml)")
	flags.StringVar(&app.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	flags.StringVar(&app.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(
		newCheckCommand(app),
		newListCommand(app),
		newConvertCommand(app),
		newNormalizeCommand(app),
		newGetCommand(app),
		newSetCommand(app),
		newUnsetCommand(app),
		newWatchCommand(app),
		newCaptureCommand(app),
		newScriptCommand(app),
		newVersionCommand(app),
	)
	return root
}

// setup loads the config and builds the logger and output styles.
func (a *App) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logCfg := a.Config.LoggerConfig()
	if f, ok := stderr.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		logCfg.NoColor = true
	}
	a.Logger = logging.New(logCfg, stderr)
	a.Styles = NewStyles(cmd.OutOrStdout())

	cmd.SetContext(logging.WithContext(cmd.Context(), a.Logger))
	return nil
}
