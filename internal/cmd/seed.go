package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/gocrm/internal/config"
	"github.com/matthieukhl/gocrm/internal/database"
	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the database and load the sample dataset",
	Long: `Clears all CRM tables, then inserts the canonical sample dataset:
5 customers, 7 products and 5 orders with pre-computed totals.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Println("🗑️  Clearing existing data...")
	if err := seed.Clear(db.DB); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}

	fmt.Println("📊 Inserting sample data...")
	if err := seed.Run(db.DB); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	var customers, products, orders int64
	db.Model(&models.Customer{}).Count(&customers)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Order{}).Count(&orders)

	fmt.Println("✅ Database seeding complete!")
	fmt.Printf("   👥 Customers: %d\n", customers)
	fmt.Printf("   📦 Products:  %d\n", products)
	fmt.Printf("   🛒 Orders:    %d\n", orders)
	return nil
}
