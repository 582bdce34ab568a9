package immo

import (
	"context"

	"immo-service/internal/model"
)

// TestData is what SeedTestData inserted
type TestData struct {
	Brokers   []*model.Broker
	Customers []*model.Customer
	Apartment *model.Apartment
}

// SeedTestData adds a small fixed data set for demonstrations: two brokers,
// two customers and one apartment managed by the first broker.
func (s *Service) SeedTestData(ctx context.Context) (*TestData, error) {
	data := &TestData{
		Brokers: []*model.Broker{
			{Name: "Tobi Mustermann", Address: "Am Informatikum 9", Login: "max", Password: "max"},
			{Name: "Jeremias Hartz", Address: "Emil-Andrese Str.2", Login: "jere", Password: "fin"},
		},
		Customers: []*model.Customer{
			{FirstName: "Erika", LastName: "Mustermann", Address: "Informatikum 12a"},
			{FirstName: "Hans", LastName: "Albers", Address: "Reeperbahn 9"},
		},
	}

	for _, b := range data.Brokers {
		if err := s.AddBroker(ctx, b); err != nil {
			return nil, err
		}
	}
	for _, c := range data.Customers {
		if err := s.AddCustomer(ctx, c); err != nil {
			return nil, err
		}
	}

	data.Apartment = &model.Apartment{
		City:           "Hamburg",
		PostalCode:     22527,
		Street:         "Vogt-Kölln-Straße",
		StreetNumber:   "3",
		Area:           120,
		Floor:          4,
		Rent:           790,
		Rooms:          3,
		BuiltInKitchen: true,
		Balcony:        false,
		BrokerID:       data.Brokers[0].ID,
	}
	if err := s.AddApartment(ctx, data.Apartment); err != nil {
		return nil, err
	}

	s.log.Info("test data added",
		"brokers", len(data.Brokers),
		"customers", len(data.Customers),
		"apartment", data.Apartment.ID,
	)
	return data, nil
}
