package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"immo-service/internal/config"
	"immo-service/internal/migration"
	"immo-service/internal/model"
	"immo-service/internal/store"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(UpCmd(), DownCmd(), StatusCmd(), HistoryCmd(), ValidateCmd())
	return cmd
}

func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			out := cmd.OutOrStdout()

			db, done, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer done()

			migrator := migration.NewMigrator(db)
			pending, err := migrator.Pending(cmd.Context())
			if err != nil {
				return err
			}

			if len(pending) == 0 {
				fmt.Fprintln(out, "No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Fprintln(out, "Pending migrations:")
				for _, mr := range pending {
					fmt.Fprintf(out, "- %s (%s)\n", mr.Name, mr.Version)
				}
				return nil
			}

			applied, err := migrator.Up(cmd.Context())
			for _, mr := range applied {
				fmt.Fprintf(out, "Successfully applied migration: %s\n", mr.Name)
			}
			return err
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")

	return cmd
}

func DownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer done()

			reverted, err := migration.NewMigrator(db).Down(cmd.Context())
			if errors.Is(err, migration.ErrNoMigrations) {
				fmt.Fprintln(cmd.OutOrStdout(), "No migrations to revert.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully reverted migration: %s\n", reverted.Name)
			return nil
		},
	}
}

func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer done()

			statuses, err := migration.NewMigrator(db).Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s  %-40s  %-8s\n", "Version", "Name", "Status")
			for _, st := range statuses {
				status := "Pending"
				if st.Applied {
					status = "Applied"
				}
				fmt.Fprintf(out, "%-16s  %-40s  %-8s\n", st.Migration.Version, st.Migration.Name, status)
			}
			return nil
		},
	}
}

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show migration history",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, done, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer done()

			records, err := migration.NewMigrator(db).History(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No migrations have been applied yet.")
				return nil
			}

			fmt.Fprintf(out, "%-16s  %-40s  %-24s\n", "Version", "Name", "Applied At")
			for _, record := range records {
				fmt.Fprintf(out, "%-16s  %-40s  %-24s\n", record.Version, record.Name, record.AppliedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the database schema against the persistent models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := getDB(cmd, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer closeDB(db)

			var models []any
			for _, kind := range model.Kinds() {
				if cfg.Policy.Backend(kind) == store.Persistent {
					models = append(models, model.ModelTypeRegistry[kind])
				}
			}

			drifts, err := migration.NewMigrator(db).Validate(cmd.Context(), models...)
			if err != nil {
				return err
			}
			if len(drifts) > 0 {
				for _, drift := range drifts {
					fmt.Fprintln(cmd.OutOrStdout(), drift)
				}
				return fmt.Errorf("validation failed: %d table(s) out of date, run 'immo migrate up'", len(drifts))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Database schema matches the persistent models")
			return nil
		},
	}
}
