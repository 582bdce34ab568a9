package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

func PortfolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio [login]",
		Short: "Show the properties and contracts a broker manages",
		Long: "Show the properties and contracts a broker manages. With --seed the\n" +
			"demonstration data is added first, within the same process, so kinds kept\n" +
			"in memory have something to show.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")
			login := args[0]

			svc, done, err := newService(cmd)
			if err != nil {
				return err
			}
			defer done()

			var broker *model.Broker
			if seed {
				data, err := svc.SeedTestData(cmd.Context())
				if err != nil {
					return err
				}
				for _, b := range data.Brokers {
					if b.Login == login {
						broker = b
					}
				}
			}
			if broker == nil {
				broker, err = svc.BrokerByLogin(cmd.Context(), login)
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("broker %q not found", login)
				}
				if err != nil {
					return err
				}
			}

			portfolio, err := svc.PropertiesManagedBy(cmd.Context(), broker)
			if err != nil {
				return err
			}
			contracts, err := svc.ContractsForManagedProperties(cmd.Context(), broker)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Broker %s (%s)\n", broker.Login, broker.Name)
			if portfolio.Len() == 0 {
				fmt.Fprintln(out, "No properties managed.")
			}
			for _, h := range portfolio.Houses {
				fmt.Fprintf(out, "House %d: %s %s, %d %s (%d floors)\n",
					h.ID, h.Street, h.StreetNumber, h.PostalCode, h.City, h.Floors)
			}
			for _, a := range portfolio.Apartments {
				fmt.Fprintf(out, "Apartment %d: %s %s, %d %s (%d rooms, floor %d)\n",
					a.ID, a.Street, a.StreetNumber, a.PostalCode, a.City, a.Rooms, a.Floor)
			}
			for _, c := range contracts.Rental {
				fmt.Fprintf(out, "Rental contract %d for apartment %d\n", c.ContractNumber, c.ApartmentID)
			}
			for _, c := range contracts.Purchase {
				fmt.Fprintf(out, "Purchase contract %d for house %d\n", c.ContractNumber, c.HouseID)
			}
			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Add the demonstration data before the lookup")

	return cmd
}
