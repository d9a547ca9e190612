package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/annotiz/internal/app"
	"github.com/abhisek/annotiz/internal/config"
	"github.com/abhisek/annotiz/internal/logging"
	"github.com/abhisek/annotiz/internal/questionfile"
	"github.com/abhisek/annotiz/internal/session"
	"github.com/abhisek/annotiz/internal/store"
)

var errNotTerminal = errors.New("annotiz needs an interactive terminal")

var rootCmd = &cobra.Command{
	Use:   "annotiz <classify|answer> <file>",
	Short: "Annotate multiple-choice questions in the terminal",
	Long: `annotiz walks through a JSON or YAML file of multiple-choice questions.

In classify mode each question is marked higher order (y) or not (n).
In answer mode the correct option is picked with 1-6 or a-f.
Progress is written back to the same file on s and on quit.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(cmd, args[0], args[1])
	},
}

// Execute runs the root command. Errors are printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to save history database (overrides ANNOTIZ_DB env var)")
	rootCmd.Flags().Bool("no-history", false, "Do not record saves in the history database")
	rootCmd.Flags().String("log-file", "", "Path to log file (overrides ANNOTIZ_LOG env var)")
	rootCmd.Flags().String("log-level", "", "Log level: debug, info, warn, error (overrides ANNOTIZ_LOG_LEVEL env var)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	var o config.Overrides
	o.HistoryDB, _ = cmd.Flags().GetString("db")
	o.DisableHistory, _ = cmd.Flags().GetBool("no-history")
	o.LogFile, _ = cmd.Flags().GetString("log-file")
	o.LogLevel, _ = cmd.Flags().GetString("log-level")
	return cfg.Apply(o), nil
}

// resolveDBPath returns the configured database path (--db flag, then
// ANNOTIZ_DB), falling back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.HistoryDB != "" {
		return cfg.HistoryDB, store.EnsureDir(cfg.HistoryDB)
	}
	return store.DefaultDBPath()
}

func runAnnotate(cmd *cobra.Command, modeArg, path string) error {
	// Reject a bad mode before touching the file system.
	mode, err := session.ParseMode(modeArg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger = logging.Discard()
	}
	defer logger.Close()

	set, err := questionfile.Load(path)
	if err != nil {
		logger.Error("load failed", "path", path, "error", err)
		return err
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return errNotTerminal
	}

	ctx := context.Background()
	var saver session.Saver = questionfile.Saver{}
	var journal store.JournalRepo

	if !cfg.DisableHistory {
		st, err := openJournal(cfg)
		if err != nil {
			// History is optional; annotation proceeds without it.
			logger.Warn("save history unavailable", "error", err)
		} else {
			defer st.Close()
			journal = st.JournalRepo()
			js := store.WithJournal(saver, journal, logger.Logger)
			js.Begin(ctx, path, mode, set.Len())
			defer js.End(ctx)
			saver = js
		}
	}

	state := session.NewState(set, mode, session.Options{
		Path:   path,
		Saver:  saver,
		Logger: logger.Logger,
	})
	logger.Info("session started",
		"mode", mode.String(),
		"path", path,
		"questions", set.Len(),
		"annotated", state.Progress().Annotated,
	)

	runErr := app.Run(app.Options{State: state, Journal: journal})
	fmt.Fprintln(cmd.OutOrStdout(), session.BuildSummary(state))
	return runErr
}

func openJournal(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
