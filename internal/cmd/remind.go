package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gocrm/internal/config"
	"github.com/matthieukhl/gocrm/internal/jobs"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Log reminders for orders placed in the last week",
	Long: `Queries orders with an order date inside the lookback window
(7 days by default) and appends one reminder line per order to the
reminder log file.`,
	RunE: runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	job := jobs.NewReminderJob(cfg.Jobs.Endpoint, cfg.Jobs.ReminderLog, cfg.Jobs.ReminderLookbackDays)
	if err := job.Run(cmd.Context()); err != nil {
		return fmt.Errorf("reminder job failed: %w", err)
	}

	fmt.Println("Order reminders processed!")
	return nil
}
