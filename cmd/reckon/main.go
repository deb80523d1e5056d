package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/JackWReid/reckon/internal/calc"
	"github.com/JackWReid/reckon/internal/logging"
	"github.com/JackWReid/reckon/internal/store"
	"github.com/JackWReid/reckon/internal/terminal"
	"github.com/JackWReid/reckon/internal/ui"
)

var Version = "dev"

var log = logging.GetLogger("reckon.cli")

// options are the flags shared by every command.
type options struct {
	dataPath string
	noSave   bool
	degrees  bool
	verbose  int
	logFile  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var theme string

	rootCmd := &cobra.Command{
		Use:     "reckon",
		Short:   "A terminal scientific calculator",
		Version: Version,
		Long: `Reckon is a keyboard-driven scientific calculator for the terminal.

Type an expression and press Enter. History and the colour theme are
kept between sessions.

Examples:
  reckon
  reckon --degrees --theme dark
  reckon eval "sin(30" --degrees`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The interactive screen owns stderr unless logs go to a file.
			if cmd.Parent() == nil && opts.logFile == "" {
				logging.Configure(logging.Quiet, "")
				return
			}
			logging.Configure(opts.verbose, opts.logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts, theme)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dataPath, "data", "", "storage file (default: user config dir)")
	pf.BoolVar(&opts.noSave, "no-save", false, "keep history and theme in memory only")
	pf.BoolVarP(&opts.degrees, "degrees", "d", false, "treat trigonometric angles as degrees")
	pf.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	pf.StringVar(&opts.logFile, "log", "", "write logs to this file")
	rootCmd.Flags().StringVar(&theme, "theme", "", "colour theme for this session (light or dark)")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newThemeCmd(opts))

	return rootCmd
}

// openKV opens the configured store, or an in-memory one with --no-save.
func (o *options) openKV() (store.KV, error) {
	if o.noSave {
		return store.NewMemoryKV(), nil
	}
	path := o.dataPath
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	kv, err := store.OpenFile(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("using storage %s", kv.Path())
	return kv, nil
}

func (o *options) openPrefs() (*store.Prefs, error) {
	kv, err := o.openKV()
	if err != nil {
		return nil, err
	}
	return store.NewPrefs(kv), nil
}

// storageLocation names where kv keeps its data.
func storageLocation(kv store.KV) string {
	if f, ok := kv.(*store.FileKV); ok {
		return f.Path()
	}
	return "memory (--no-save)"
}

// newEditor creates an editor over prefs with the angle mode from the flags.
func (o *options) newEditor(prefs *store.Prefs) *calc.Editor {
	e := calc.NewEditor(nil, prefs)
	if o.degrees {
		e.SetAngleMode(calc.Degrees)
	}
	return e
}

func runInteractive(opts *options, theme string) error {
	if !terminal.IsTerminal() {
		return errors.New("reckon needs an interactive terminal; use 'reckon eval' for one-shot evaluation")
	}
	prefs, err := opts.openPrefs()
	if err != nil {
		return err
	}

	app := ui.NewApp(opts.newEditor(prefs), prefs)
	if theme != "" {
		t, err := store.ParseTheme(theme)
		if err != nil {
			return err
		}
		app.SetTheme(t)
	}

	t, err := terminal.Open()
	if err != nil {
		return err
	}
	defer t.Close()

	return app.Run(t)
}
