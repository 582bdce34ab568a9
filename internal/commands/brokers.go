package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"immo-service/internal/store"
)

func BrokersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brokers",
		Short: "List all brokers",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			brokers, err := svc.Brokers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(brokers) == 0 {
				fmt.Fprintln(out, "No brokers found.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-16s  %-30s  %-30s\n", "ID", "Login", "Name", "Address")
			for _, b := range brokers {
				fmt.Fprintf(out, "%-6d  %-16s  %-30s  %-30s\n", b.ID, b.Login, b.Name, b.Address)
			}
			return nil
		},
	}
}

func BrokerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broker [login]",
		Short: "Show the broker with the given login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			broker, err := svc.BrokerByLogin(cmd.Context(), args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("broker %q not found", args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:      %d\n", broker.ID)
			fmt.Fprintf(out, "Login:   %s\n", broker.Login)
			fmt.Fprintf(out, "Name:    %s\n", broker.Name)
			fmt.Fprintf(out, "Address: %s\n", broker.Address)
			return nil
		},
	}
}
