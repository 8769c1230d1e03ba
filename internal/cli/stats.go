package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/focusboost/focusboost/internal/config"
	"github.com/focusboost/focusboost/internal/database"
	"github.com/focusboost/focusboost/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the session log",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.GetStats(context.Background())
	if err != nil {
		return err
	}

	return output.Output(outputFmt, stats)
}
