package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crm",
	Short: "gocrm - GraphQL CRM backend",
	Long: `gocrm is a customer-relationship-management backend exposing customers,
products and orders over a GraphQL API.

The serve command runs the API server; the restock, remind and heartbeat
commands are the scheduled maintenance jobs that call the API and append
their results to log files.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
