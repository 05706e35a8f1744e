package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyJSON  bool
	historyLimit int
)

const defaultHistoryLimit = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history that feeds completions",
}

var historyAddCmd = &cobra.Command{
	Use:   "add <url> [title]",
	Short: "Record a visit",
	Long: `Record a visit to url. Visiting a known URL bumps its visit count and
keeps its title unless a new one is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		app := GetApp()
		title := ""
		if len(args) > 1 {
			title = args[1]
		}
		return app.SearchHistoryUC.Record(app.Ctx(), args[0], title)
	},
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent visits",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		entries, err := app.SearchHistoryUC.GetRecent(app.Ctx(), historyLimit, 0)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}

		if historyJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No history yet."))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.HistoryTable(entries, time.Now()))
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		app := GetApp()
		if err := app.SearchHistoryUC.Delete(app.Ctx(), id); err != nil {
			return fmt.Errorf("delete history entry: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Deleted entry %d", id)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyAddCmd, historyListCmd, historyDeleteCmd)

	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", defaultHistoryLimit, "maximum entries to show")
}
