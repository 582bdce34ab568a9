package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"immo-service/internal/model"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the demonstration data set",
		Long: "Add two brokers, two customers and one apartment. Kinds kept in memory\n" +
			"by the storage policy are gone once the command exits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			data, err := svc.SeedTestData(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range data.Brokers {
				fmt.Fprintf(out, "Added broker %s (id %d, %s)\n", b.Login, b.ID, svc.Policy().Backend(model.KindBroker))
			}
			for _, c := range data.Customers {
				fmt.Fprintf(out, "Added customer %s (id %d, %s)\n", c.FullName(), c.ID, svc.Policy().Backend(model.KindCustomer))
			}
			fmt.Fprintf(out, "Added apartment in %s (id %d, %s)\n", data.Apartment.City, data.Apartment.ID, svc.Policy().Backend(model.KindApartment))
			return nil
		},
	}
}
