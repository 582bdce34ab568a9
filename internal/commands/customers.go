package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func CustomersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			customers, err := svc.Customers(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(customers) == 0 {
				fmt.Fprintln(out, "No customers found.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-30s  %-30s\n", "ID", "Name", "Address")
			for _, c := range customers {
				fmt.Fprintf(out, "%-6d  %-30s  %-30s\n", c.ID, c.FullName(), c.Address)
			}
			return nil
		},
	}
}
