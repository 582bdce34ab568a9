package immo

import (
	"context"

	"immo-service/internal/model"
)

// BrokerByID returns the broker with the given id, store.ErrNotFound when
// there is none, or a store.ErrStore error when the store failed.
func (s *Service) BrokerByID(ctx context.Context, id uint) (*model.Broker, error) {
	broker, err := s.brokers.FindByID(ctx, id)
	s.logLookup(model.KindBroker, "id", id, err)
	return broker, err
}

// BrokerByLogin returns the broker with the given login. Logins are
// expected to be unique; if they are not, the broker with the lowest id wins.
func (s *Service) BrokerByLogin(ctx context.Context, login string) (*model.Broker, error) {
	broker, err := s.brokers.FindBy(ctx, "login", login)
	s.logLookup(model.KindBroker, "login", login, err)
	return broker, err
}

func (s *Service) Brokers(ctx context.Context) ([]*model.Broker, error) {
	brokers, err := s.brokers.All(ctx)
	s.logList(model.KindBroker, err)
	return brokers, err
}

func (s *Service) AddBroker(ctx context.Context, broker *model.Broker) error {
	if broker == nil {
		return nilArgument(model.KindBroker)
	}
	err := s.brokers.Add(ctx, broker)
	s.logWrite(model.KindBroker, "added", broker.ID, err)
	return err
}

func (s *Service) UpdateBroker(ctx context.Context, broker *model.Broker) error {
	if broker == nil {
		return nilArgument(model.KindBroker)
	}
	err := s.brokers.Update(ctx, broker)
	s.logWrite(model.KindBroker, "updated", broker.ID, err)
	return err
}

func (s *Service) DeleteBroker(ctx context.Context, broker *model.Broker) error {
	if broker == nil {
		return nilArgument(model.KindBroker)
	}
	err := s.brokers.Delete(ctx, broker)
	s.logWrite(model.KindBroker, "deleted", broker.ID, err)
	return err
}
