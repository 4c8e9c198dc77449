package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gocrm/internal/config"
	"github.com/matthieukhl/gocrm/internal/database"
	"github.com/matthieukhl/gocrm/internal/gql"
	"github.com/matthieukhl/gocrm/internal/logging"
	"github.com/matthieukhl/gocrm/internal/server"
	"github.com/matthieukhl/gocrm/internal/shutdown"
	"github.com/matthieukhl/gocrm/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gocrm GraphQL server",
	Long: `Start the gocrm server which provides:
- GraphQL queries and mutations for customers, products and orders at /graphql
- GraphiQL for interactive exploration
- A health endpoint at /api/health`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 gocrm starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("✅ Database connected successfully")

	fmt.Println("⚙️  Building GraphQL schema...")
	schema, err := gql.NewSchema(store.New(db.DB), cfg.Auth.RestockToken)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	srv := server.NewServer(db, schema, logging.New())

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(ctx, cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
