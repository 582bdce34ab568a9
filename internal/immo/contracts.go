package immo

import (
	"context"
	"fmt"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

// Contracts groups the rental and purchase contracts of one broker
type Contracts struct {
	Rental   []*model.RentalContract
	Purchase []*model.PurchaseContract
}

func (c Contracts) Len() int {
	return len(c.Rental) + len(c.Purchase)
}

func incomplete(kind model.Kind, missing string) error {
	return fmt.Errorf("%w: %s without %s", store.ErrInvalidArgument, kind, missing)
}

func (s *Service) AddRentalContract(ctx context.Context, contract *model.RentalContract) error {
	if contract == nil {
		return nilArgument(model.KindRentalContract)
	}
	contract.SyncReferences()
	switch {
	case contract.ApartmentID == 0:
		return incomplete(model.KindRentalContract, "apartment")
	case contract.CustomerID == 0:
		return incomplete(model.KindRentalContract, "customer")
	}
	err := s.rentalContracts.Add(ctx, contract)
	s.logWrite(model.KindRentalContract, "added", contract.ID, err)
	return err
}

func (s *Service) RentalContractByID(ctx context.Context, id uint) (*model.RentalContract, error) {
	contract, err := s.rentalContracts.FindByID(ctx, id)
	s.logLookup(model.KindRentalContract, "id", id, err)
	return contract, err
}

func (s *Service) RentalContracts(ctx context.Context) ([]*model.RentalContract, error) {
	contracts, err := s.rentalContracts.All(ctx)
	s.logList(model.KindRentalContract, err)
	return contracts, err
}

func (s *Service) UpdateRentalContract(ctx context.Context, contract *model.RentalContract) error {
	if contract == nil {
		return nilArgument(model.KindRentalContract)
	}
	err := s.rentalContracts.Update(ctx, contract)
	s.logWrite(model.KindRentalContract, "updated", contract.ID, err)
	return err
}

// DeleteRentalContract removes the contract from the rental contracts.
// The referenced apartment is left untouched.
func (s *Service) DeleteRentalContract(ctx context.Context, contract *model.RentalContract) error {
	if contract == nil {
		return nilArgument(model.KindRentalContract)
	}
	err := s.rentalContracts.Delete(ctx, contract)
	s.logWrite(model.KindRentalContract, "deleted", contract.ID, err)
	return err
}

func (s *Service) AddPurchaseContract(ctx context.Context, contract *model.PurchaseContract) error {
	if contract == nil {
		return nilArgument(model.KindPurchaseContract)
	}
	contract.SyncReferences()
	switch {
	case contract.HouseID == 0:
		return incomplete(model.KindPurchaseContract, "house")
	case contract.CustomerID == 0:
		return incomplete(model.KindPurchaseContract, "customer")
	}
	err := s.purchaseContracts.Add(ctx, contract)
	s.logWrite(model.KindPurchaseContract, "added", contract.ID, err)
	return err
}

func (s *Service) PurchaseContractByID(ctx context.Context, id uint) (*model.PurchaseContract, error) {
	contract, err := s.purchaseContracts.FindByID(ctx, id)
	s.logLookup(model.KindPurchaseContract, "id", id, err)
	return contract, err
}

func (s *Service) PurchaseContracts(ctx context.Context) ([]*model.PurchaseContract, error) {
	contracts, err := s.purchaseContracts.All(ctx)
	s.logList(model.KindPurchaseContract, err)
	return contracts, err
}

func (s *Service) UpdatePurchaseContract(ctx context.Context, contract *model.PurchaseContract) error {
	if contract == nil {
		return nilArgument(model.KindPurchaseContract)
	}
	err := s.purchaseContracts.Update(ctx, contract)
	s.logWrite(model.KindPurchaseContract, "updated", contract.ID, err)
	return err
}

func (s *Service) DeletePurchaseContract(ctx context.Context, contract *model.PurchaseContract) error {
	if contract == nil {
		return nilArgument(model.KindPurchaseContract)
	}
	err := s.purchaseContracts.Delete(ctx, contract)
	s.logWrite(model.KindPurchaseContract, "deleted", contract.ID, err)
	return err
}

// RentalContractsManagedBy returns the rental contracts of apartments the
// broker manages. Contracts whose apartment no longer exists are skipped.
func (s *Service) RentalContractsManagedBy(ctx context.Context, broker *model.Broker) ([]*model.RentalContract, error) {
	apartments, err := s.ApartmentsManagedBy(ctx, broker)
	if err != nil {
		return nil, err
	}
	managed := make(map[uint]struct{}, len(apartments))
	for _, a := range apartments {
		managed[a.ID] = struct{}{}
	}

	contracts, err := s.RentalContracts(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.RentalContract, 0)
	for _, c := range contracts {
		if _, ok := managed[c.ApartmentID]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

// PurchaseContractsManagedBy returns the purchase contracts of houses the
// broker manages. Contracts whose house no longer exists are skipped.
func (s *Service) PurchaseContractsManagedBy(ctx context.Context, broker *model.Broker) ([]*model.PurchaseContract, error) {
	houses, err := s.HousesManagedBy(ctx, broker)
	if err != nil {
		return nil, err
	}
	managed := make(map[uint]struct{}, len(houses))
	for _, h := range houses {
		managed[h.ID] = struct{}{}
	}

	contracts, err := s.PurchaseContracts(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*model.PurchaseContract, 0)
	for _, c := range contracts {
		if _, ok := managed[c.HouseID]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *Service) ContractsForManagedProperties(ctx context.Context, broker *model.Broker) (Contracts, error) {
	rental, err := s.RentalContractsManagedBy(ctx, broker)
	if err != nil {
		return Contracts{}, err
	}
	purchase, err := s.PurchaseContractsManagedBy(ctx, broker)
	if err != nil {
		return Contracts{}, err
	}
	return Contracts{Rental: rental, Purchase: purchase}, nil
}
