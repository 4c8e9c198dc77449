package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gocrm/internal/config"
	"github.com/matthieukhl/gocrm/internal/jobs"
)

var restockCmd = &cobra.Command{
	Use:   "restock",
	Short: "Restock low-stock products via the GraphQL API",
	Long: `Invokes the updateLowStockProducts mutation once and appends the
outcome to the restock log file. Intended to be run from cron; failures are
logged, never raised.`,
	RunE: runRestock,
}

func init() {
	rootCmd.AddCommand(restockCmd)
}

func runRestock(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	job := jobs.NewRestockJob(cfg.Jobs.Endpoint, cfg.Jobs.Token, cfg.Jobs.RestockLog)
	if err := job.Run(cmd.Context()); err != nil {
		return fmt.Errorf("restock job failed: %w", err)
	}

	fmt.Println("✅ Restock job finished, see", cfg.Jobs.RestockLog)
	return nil
}
