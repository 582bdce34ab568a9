package immo

import (
	"context"

	"immo-service/internal/model"
)

// CustomerByID returns the customer with the given id, store.ErrNotFound
// when there is none, or a store.ErrStore error when the store failed.
func (s *Service) CustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	s.logLookup(model.KindCustomer, "id", id, err)
	return customer, err
}

func (s *Service) Customers(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customers.All(ctx)
	s.logList(model.KindCustomer, err)
	return customers, err
}

func (s *Service) AddCustomer(ctx context.Context, customer *model.Customer) error {
	if customer == nil {
		return nilArgument(model.KindCustomer)
	}
	err := s.customers.Add(ctx, customer)
	s.logWrite(model.KindCustomer, "added", customer.ID, err)
	return err
}

func (s *Service) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	if customer == nil {
		return nilArgument(model.KindCustomer)
	}
	err := s.customers.Update(ctx, customer)
	s.logWrite(model.KindCustomer, "updated", customer.ID, err)
	return err
}

func (s *Service) DeleteCustomer(ctx context.Context, customer *model.Customer) error {
	if customer == nil {
		return nilArgument(model.KindCustomer)
	}
	err := s.customers.Delete(ctx, customer)
	s.logWrite(model.KindCustomer, "deleted", customer.ID, err)
	return err
}
