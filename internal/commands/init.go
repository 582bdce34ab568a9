package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"immo-service/internal/migration"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize migration tracking table in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer done()

			if err := migration.NewMigrator(db).Init(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migration system initialized (%s)\n", migration.MigrationRecord{}.TableName())
			return nil
		},
	}
}
