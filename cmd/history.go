package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/annotiz/internal/config"
	"github.com/abhisek/annotiz/internal/screens/saves"
	"github.com/abhisek/annotiz/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history <file>",
	Short: "List recorded saves of a question file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			cfg.HistoryDB = p
		}
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		path := store.JournalPath(args[0])
		records, err := st.JournalRepo().RecentSaves(cmd.Context(), path, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query saves: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintf(out, "No saves recorded for %s\n", path)
			return nil
		}
		fmt.Fprintf(out, "Saves of %s (newest first)\n", path)
		for _, rec := range records {
			line := saves.FormatLine(rec)
			if !rec.Succeeded() {
				line += "  " + rec.Err
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of saves to list (0 for all)")
}
