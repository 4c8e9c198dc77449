package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gocrm/internal/config"
	"github.com/matthieukhl/gocrm/internal/jobs"
)

var heartbeatCmd = &cobra.Command{
	Use:   "heartbeat",
	Short: "Append a liveness line and ping the GraphQL endpoint",
	RunE:  runHeartbeat,
}

func init() {
	rootCmd.AddCommand(heartbeatCmd)
}

func runHeartbeat(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	job := jobs.NewHeartbeatJob(cfg.Jobs.Endpoint, cfg.Jobs.HeartbeatLog)
	if err := job.Run(cmd.Context()); err != nil {
		return fmt.Errorf("heartbeat job failed: %w", err)
	}
	return nil
}
