package commands

import "github.com/spf13/cobra"

// RootCmd assembles the immo command tree
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "immo",
		Short:         "Brokerage data access tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Log every SQL statement")

	rootCmd.AddCommand(
		InitCmd(),
		MigrateCmd(),
		SeedCmd(),
		BrokersCmd(),
		BrokerCmd(),
		CustomersCmd(),
		PortfolioCmd(),
	)
	return rootCmd
}
