package immo

import (
	"context"
	"fmt"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

// Portfolio is the set of properties one broker manages
type Portfolio struct {
	Houses     []*model.House
	Apartments []*model.Apartment
}

func (p Portfolio) Len() int {
	return len(p.Houses) + len(p.Apartments)
}

func unmanaged(kind model.Kind) error {
	return fmt.Errorf("%w: %s without managing broker", store.ErrInvalidArgument, kind)
}

func (s *Service) AddHouse(ctx context.Context, house *model.House) error {
	if house == nil {
		return nilArgument(model.KindHouse)
	}
	house.BrokerID = house.ManagerID()
	if house.BrokerID == 0 {
		return unmanaged(model.KindHouse)
	}
	err := s.houses.Add(ctx, house)
	s.logWrite(model.KindHouse, "added", house.ID, err)
	return err
}

func (s *Service) HouseByID(ctx context.Context, id uint) (*model.House, error) {
	house, err := s.houses.FindByID(ctx, id)
	s.logLookup(model.KindHouse, "id", id, err)
	return house, err
}

func (s *Service) Houses(ctx context.Context) ([]*model.House, error) {
	houses, err := s.houses.All(ctx)
	s.logList(model.KindHouse, err)
	return houses, err
}

func (s *Service) UpdateHouse(ctx context.Context, house *model.House) error {
	if house == nil {
		return nilArgument(model.KindHouse)
	}
	err := s.houses.Update(ctx, house)
	s.logWrite(model.KindHouse, "updated", house.ID, err)
	return err
}

func (s *Service) DeleteHouse(ctx context.Context, house *model.House) error {
	if house == nil {
		return nilArgument(model.KindHouse)
	}
	err := s.houses.Delete(ctx, house)
	s.logWrite(model.KindHouse, "deleted", house.ID, err)
	return err
}

func (s *Service) AddApartment(ctx context.Context, apartment *model.Apartment) error {
	if apartment == nil {
		return nilArgument(model.KindApartment)
	}
	apartment.BrokerID = apartment.ManagerID()
	if apartment.BrokerID == 0 {
		return unmanaged(model.KindApartment)
	}
	err := s.apartments.Add(ctx, apartment)
	s.logWrite(model.KindApartment, "added", apartment.ID, err)
	return err
}

func (s *Service) ApartmentByID(ctx context.Context, id uint) (*model.Apartment, error) {
	apartment, err := s.apartments.FindByID(ctx, id)
	s.logLookup(model.KindApartment, "id", id, err)
	return apartment, err
}

func (s *Service) Apartments(ctx context.Context) ([]*model.Apartment, error) {
	apartments, err := s.apartments.All(ctx)
	s.logList(model.KindApartment, err)
	return apartments, err
}

func (s *Service) UpdateApartment(ctx context.Context, apartment *model.Apartment) error {
	if apartment == nil {
		return nilArgument(model.KindApartment)
	}
	err := s.apartments.Update(ctx, apartment)
	s.logWrite(model.KindApartment, "updated", apartment.ID, err)
	return err
}

func (s *Service) DeleteApartment(ctx context.Context, apartment *model.Apartment) error {
	if apartment == nil {
		return nilArgument(model.KindApartment)
	}
	err := s.apartments.Delete(ctx, apartment)
	s.logWrite(model.KindApartment, "deleted", apartment.ID, err)
	return err
}

// HousesManagedBy returns the houses whose managing broker is broker.
func (s *Service) HousesManagedBy(ctx context.Context, broker *model.Broker) ([]*model.House, error) {
	if broker == nil {
		return nil, nilArgument(model.KindBroker)
	}
	houses, err := s.Houses(ctx)
	if err != nil {
		return nil, err
	}

	managed := make([]*model.House, 0)
	for _, h := range houses {
		if h.ManagerID() == broker.ID {
			managed = append(managed, h)
		}
	}
	return managed, nil
}

// ApartmentsManagedBy returns the apartments whose managing broker is broker.
func (s *Service) ApartmentsManagedBy(ctx context.Context, broker *model.Broker) ([]*model.Apartment, error) {
	if broker == nil {
		return nil, nilArgument(model.KindBroker)
	}
	apartments, err := s.Apartments(ctx)
	if err != nil {
		return nil, err
	}

	managed := make([]*model.Apartment, 0)
	for _, a := range apartments {
		if a.ManagerID() == broker.ID {
			managed = append(managed, a)
		}
	}
	return managed, nil
}

func (s *Service) PropertiesManagedBy(ctx context.Context, broker *model.Broker) (Portfolio, error) {
	houses, err := s.HousesManagedBy(ctx, broker)
	if err != nil {
		return Portfolio{}, err
	}
	apartments, err := s.ApartmentsManagedBy(ctx, broker)
	if err != nil {
		return Portfolio{}, err
	}
	return Portfolio{Houses: houses, Apartments: apartments}, nil
}
