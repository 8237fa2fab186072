package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tagdex/internal/config"
	"tagdex/internal/library"
	"tagdex/internal/storage"
	"tagdex/internal/tui"
)

var (
	flagDB      string
	flagConfig  string
	flagVerbose bool
)

// Shared clients for all commands, opened in PersistentPreRunE.
var (
	cfg     *config.Config
	backend storage.Storage
	lib     *library.Library
)

var rootCmd = &cobra.Command{
	Use:   "tagdex",
	Short: "Tag search and selection panel",
	Long: `tagdex manages a library of tags and the entries they attach to.

Run without arguments to open the interactive search panel: type to
filter, enter to select, or create a tag on the spot when nothing
matches. Subcommands cover scripting, import/export and maintenance.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagDB != "" {
			cfg.DatabasePath = flagDB
		}

		if err := setupLogging(cfg); err != nil {
			return err
		}

		backend, err = storage.OpenStorage(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}

		store, err := backend.Load()
		if err != nil {
			return fmt.Errorf("load library: %w", err)
		}

		lib = library.New(library.Params{
			Store:       store,
			Backend:     backend,
			SearchLimit: cfg.SearchLimit,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closer, ok := backend.(io.Closer); ok {
			_ = closer.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.NewApp(tui.AppParams{Lib: lib})

		p := tea.NewProgram(app, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("run panel: %w", err)
		}

		final := finalModel.(tui.App)
		if id := final.SelectedTagID(); id != nil {
			fmt.Println(lib.TagDisplayName(*id))
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (.db/.sqlite for SQLite, anything else for JSON)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/tagdex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// setupLogging sends logrus to a file. The TUI owns stdout, so logs
// never go to the terminal; when no file can be opened they are
// discarded.
func setupLogging(cfg *config.Config) error {
	logrus.SetOutput(io.Discard)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	path := cfg.LogFile
	if path == "" {
		path, err = config.DefaultLogPath()
		if err != nil {
			return nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	logrus.SetOutput(f)
	return nil
}
