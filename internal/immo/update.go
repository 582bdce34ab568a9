package immo

import (
	"context"
	"fmt"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

// Update writes back a detached entity of any kind the service manages.
func (s *Service) Update(ctx context.Context, entity any) error {
	switch e := entity.(type) {
	case *model.Broker:
		return s.UpdateBroker(ctx, e)
	case *model.Customer:
		return s.UpdateCustomer(ctx, e)
	case *model.House:
		return s.UpdateHouse(ctx, e)
	case *model.Apartment:
		return s.UpdateApartment(ctx, e)
	case *model.RentalContract:
		return s.UpdateRentalContract(ctx, e)
	case *model.PurchaseContract:
		return s.UpdatePurchaseContract(ctx, e)
	}
	return fmt.Errorf("%w: cannot update %T", store.ErrInvalidArgument, entity)
}
