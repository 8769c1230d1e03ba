package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/focusboost/focusboost/internal/config"
	"github.com/focusboost/focusboost/internal/database"
	"github.com/focusboost/focusboost/internal/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent scoring sessions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum sessions to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := db.ListSessions(context.Background(), historyLimit)
	if err != nil {
		return err
	}

	return output.Output(outputFmt, sessions)
}
