// Package immo is the data access façade of the brokerage domain. Every
// create, query, update and delete of brokers, customers, properties and
// contracts goes through Service, which routes each entity kind to the
// backend its Policy names.
package immo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"immo-service/internal/logger"
	"immo-service/internal/model"
	"immo-service/internal/store"
)

// Service routes every operation to the store of the entity's kind
type Service struct {
	brokers           store.Store[model.Broker]
	customers         store.Store[model.Customer]
	houses            store.Store[model.House]
	apartments        store.Store[model.Apartment]
	rentalContracts   store.Store[model.RentalContract]
	purchaseContracts store.Store[model.PurchaseContract]

	policy Policy
	log    *logger.Logger
}

// NewService wires one store per kind according to policy. db may be nil
// when the policy keeps every kind in memory.
func NewService(db *gorm.DB, policy Policy, baseLog *logger.Logger) (*Service, error) {
	if policy == nil {
		policy = DefaultPolicy()
	}
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	if db == nil && policy.NeedsDatabase() {
		return nil, fmt.Errorf("%w: storage policy %s needs a database", store.ErrInvalidArgument, policy)
	}

	s := &Service{
		policy: policy,
		log:    baseLog.With("service", "ImmoService"),
	}
	s.brokers = newStore[model.Broker](db, policy.Backend(model.KindBroker))
	s.customers = newStore[model.Customer](db, policy.Backend(model.KindCustomer))
	s.houses = newStore[model.House](db, policy.Backend(model.KindHouse))
	s.apartments = newStore[model.Apartment](db, policy.Backend(model.KindApartment))
	s.rentalContracts = newStore[model.RentalContract](db, policy.Backend(model.KindRentalContract))
	s.purchaseContracts = newStore[model.PurchaseContract](db, policy.Backend(model.KindPurchaseContract))
	return s, nil
}

func newStore[T any, P store.Record[T]](db *gorm.DB, backend store.Backend) store.Store[T] {
	if backend == store.Persistent {
		return store.NewGormStore[T, P](db)
	}
	return store.NewMemoryStore[T, P]()
}

func (s *Service) Policy() Policy {
	return s.policy
}

// logLookup reports the outcome of a point query.
func (s *Service) logLookup(kind model.Kind, key string, value any, err error) {
	switch {
	case err == nil:
		s.log.Debug("entity found", "kind", kind, key, value)
	case errors.Is(err, store.ErrNotFound):
		s.log.Info("entity not found", "kind", kind, key, value)
	default:
		s.log.Error("lookup failed", "kind", kind, key, value, "error", err)
	}
}

func (s *Service) logWrite(kind model.Kind, action string, id uint, err error) {
	if err != nil {
		s.log.Error(action+" failed", "kind", kind, "id", id, "error", err)
		return
	}
	s.log.Info("entity "+action, "kind", kind, "id", id)
}

func (s *Service) logList(kind model.Kind, err error) {
	if err != nil {
		s.log.Error("listing failed", "kind", kind, "error", err)
	}
}

func nilArgument(kind model.Kind) error {
	return fmt.Errorf("%w: nil %s", store.ErrInvalidArgument, kind)
}
