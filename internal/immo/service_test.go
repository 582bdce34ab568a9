package immo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"immo-service/internal/immo"
	"immo-service/internal/logger"
	"immo-service/internal/migration"
	"immo-service/internal/model"
	"immo-service/internal/store"
)

var ctx = context.Background()

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.Open(":memory:", nil)
	require.NoError(t, err)
	_, err = migration.NewMigrator(db).Up(ctx)
	require.NoError(t, err)
	return db
}

func newTestService(t *testing.T, policy immo.Policy) *immo.Service {
	t.Helper()
	svc, err := immo.NewService(setupTestDB(t), policy, logger.Nop())
	require.NoError(t, err)
	return svc
}

func fakeBroker() *model.Broker {
	return &model.Broker{
		Name:     gofakeit.Name(),
		Address:  gofakeit.Street(),
		Login:    gofakeit.Username(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
}

func fakeCustomer() *model.Customer {
	return &model.Customer{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Address:   gofakeit.Street(),
	}
}

func fakeHouse(broker *model.Broker) *model.House {
	return &model.House{
		City:          gofakeit.City(),
		PostalCode:    gofakeit.Number(10000, 99999),
		Street:        gofakeit.StreetName(),
		StreetNumber:  gofakeit.StreetNumber(),
		Area:          float64(gofakeit.Number(80, 400)),
		Floors:        gofakeit.Number(1, 4),
		PurchasePrice: float64(gofakeit.Number(200000, 2000000)),
		Garden:        gofakeit.Bool(),
		BrokerID:      broker.ID,
	}
}

func fakeApartment(broker *model.Broker) *model.Apartment {
	return &model.Apartment{
		City:         gofakeit.City(),
		PostalCode:   gofakeit.Number(10000, 99999),
		Street:       gofakeit.StreetName(),
		StreetNumber: gofakeit.StreetNumber(),
		Area:         float64(gofakeit.Number(30, 150)),
		Floor:        gofakeit.Number(0, 8),
		Rent:         float64(gofakeit.Number(400, 2500)),
		Rooms:        gofakeit.Number(1, 5),
		Balcony:      gofakeit.Bool(),
		BrokerID:     broker.ID,
	}
}

func rentalContract(apartment *model.Apartment, customer *model.Customer) *model.RentalContract {
	return &model.RentalContract{
		ContractNumber: gofakeit.Number(1000, 99999),
		Date:           datatypes.Date(time.Now().AddDate(0, -1, 0)),
		Place:          apartment.City,
		Apartment:      apartment,
		Customer:       customer,
		RentalStart:    datatypes.Date(time.Now()),
		AncillaryCosts: 65,
		DurationMonths: 36,
	}
}

func purchaseContract(house *model.House, customer *model.Customer) *model.PurchaseContract {
	return &model.PurchaseContract{
		ContractNumber:   gofakeit.Number(1000, 99999),
		Date:             datatypes.Date(time.Now()),
		Place:            house.City,
		House:            house,
		Customer:         customer,
		InstallmentCount: 5,
		InterestRate:     4,
	}
}

func TestNewService(t *testing.T) {
	t.Run("default policy needs a database", func(t *testing.T) {
		_, err := immo.NewService(nil, nil, nil)
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
	})

	t.Run("all transient runs without database", func(t *testing.T) {
		policy, err := immo.ParsePolicy("broker=transient,customer=transient")
		require.NoError(t, err)

		svc, err := immo.NewService(nil, policy, nil)
		require.NoError(t, err)

		broker := fakeBroker()
		require.NoError(t, svc.AddBroker(ctx, broker))
		assert.NotZero(t, broker.ID)

		found, err := svc.BrokerByLogin(ctx, broker.Login)
		require.NoError(t, err)
		assert.Same(t, broker, found)

		_, err = svc.BrokerByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestBroker_RoundTrip(t *testing.T) {
	svc := newTestService(t, nil)

	broker := fakeBroker()
	require.NoError(t, svc.AddBroker(ctx, broker))
	require.NotZero(t, broker.ID)

	found, err := svc.BrokerByID(ctx, broker.ID)
	require.NoError(t, err)
	assert.NotSame(t, broker, found)
	assert.Equal(t, broker.Name, found.Name)
	assert.Equal(t, broker.Address, found.Address)
	assert.Equal(t, broker.Login, found.Login)
	assert.Equal(t, broker.Password, found.Password)

	_, err = svc.BrokerByID(ctx, broker.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrStore)
}

func TestBroker_ByLogin(t *testing.T) {
	svc := newTestService(t, nil)

	broker := &model.Broker{Name: "Tobi Mustermann", Login: "max", Password: "max"}
	require.NoError(t, svc.AddBroker(ctx, broker))

	found, err := svc.BrokerByLogin(ctx, "max")
	require.NoError(t, err)
	assert.Equal(t, broker.ID, found.ID)

	_, err = svc.BrokerByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBroker_ListUpdateDelete(t *testing.T) {
	svc := newTestService(t, nil)

	brokers, err := svc.Brokers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, brokers)
	assert.Empty(t, brokers)

	first, second := fakeBroker(), fakeBroker()
	require.NoError(t, svc.AddBroker(ctx, first))
	require.NoError(t, svc.AddBroker(ctx, second))

	brokers, err = svc.Brokers(ctx)
	require.NoError(t, err)
	assert.Len(t, brokers, 2)

	first.Address = "Vogt-Kölln-Straße 30"
	require.NoError(t, svc.Update(ctx, first))

	found, err := svc.BrokerByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vogt-Kölln-Straße 30", found.Address)

	require.NoError(t, svc.DeleteBroker(ctx, first))
	_, err = svc.BrokerByID(ctx, first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	brokers, err = svc.Brokers(ctx)
	require.NoError(t, err)
	require.Len(t, brokers, 1)
	assert.Equal(t, second.ID, brokers[0].ID)

	err = svc.UpdateBroker(ctx, first)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCustomer_Lifecycle(t *testing.T) {
	svc := newTestService(t, nil)

	customer := fakeCustomer()
	require.NoError(t, svc.AddCustomer(ctx, customer))

	found, err := svc.CustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.FullName(), found.FullName())

	found.LastName = "Albers"
	require.NoError(t, svc.UpdateCustomer(ctx, found))

	customers, err := svc.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Albers", customers[0].LastName)

	require.NoError(t, svc.DeleteCustomer(ctx, customer))
	_, err = svc.CustomerByID(ctx, customer.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHouse_TransientLifecycle(t *testing.T) {
	svc := newTestService(t, nil)
	broker := fakeBroker()
	require.NoError(t, svc.AddBroker(ctx, broker))

	house := fakeHouse(broker)
	require.NoError(t, svc.AddHouse(ctx, house))
	require.NotZero(t, house.ID)

	found, err := svc.HouseByID(ctx, house.ID)
	require.NoError(t, err)
	assert.Same(t, house, found)

	// adding the same house again is a no-op
	require.NoError(t, svc.AddHouse(ctx, house))
	houses, err := svc.Houses(ctx)
	require.NoError(t, err)
	assert.Len(t, houses, 1)

	require.NoError(t, svc.DeleteHouse(ctx, house))
	_, err = svc.HouseByID(ctx, house.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApartment_TransientLifecycle(t *testing.T) {
	svc := newTestService(t, nil)
	broker := fakeBroker()
	require.NoError(t, svc.AddBroker(ctx, broker))

	apartment := fakeApartment(broker)
	require.NoError(t, svc.AddApartment(ctx, apartment))

	found, err := svc.ApartmentByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, apartment.Rent, found.Rent)

	changed := *apartment
	changed.Rent = 990
	require.NoError(t, svc.UpdateApartment(ctx, &changed))
	found, err = svc.ApartmentByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(990), found.Rent)

	require.NoError(t, svc.DeleteApartment(ctx, apartment))
	_, err = svc.ApartmentByID(ctx, apartment.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPropertiesManagedBy(t *testing.T) {
	svc := newTestService(t, nil)

	max, jere, idle := fakeBroker(), fakeBroker(), fakeBroker()
	for _, b := range []*model.Broker{max, jere, idle} {
		require.NoError(t, svc.AddBroker(ctx, b))
	}

	maxHouse := fakeHouse(max)
	maxApartment := fakeApartment(max)
	jereApartment := fakeApartment(jere)
	require.NoError(t, svc.AddHouse(ctx, maxHouse))
	require.NoError(t, svc.AddApartment(ctx, maxApartment))
	require.NoError(t, svc.AddApartment(ctx, jereApartment))

	portfolio, err := svc.PropertiesManagedBy(ctx, max)
	require.NoError(t, err)
	assert.Equal(t, []*model.House{maxHouse}, portfolio.Houses)
	assert.Equal(t, []*model.Apartment{maxApartment}, portfolio.Apartments)

	portfolio, err = svc.PropertiesManagedBy(ctx, jere)
	require.NoError(t, err)
	assert.Empty(t, portfolio.Houses)
	assert.Equal(t, []*model.Apartment{jereApartment}, portfolio.Apartments)

	portfolio, err = svc.PropertiesManagedBy(ctx, idle)
	require.NoError(t, err)
	assert.Zero(t, portfolio.Len())

	_, err = svc.PropertiesManagedBy(ctx, nil)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestContractsForManagedProperties(t *testing.T) {
	svc := newTestService(t, nil)

	max, jere := fakeBroker(), fakeBroker()
	require.NoError(t, svc.AddBroker(ctx, max))
	require.NoError(t, svc.AddBroker(ctx, jere))
	erika, hans := fakeCustomer(), fakeCustomer()
	require.NoError(t, svc.AddCustomer(ctx, erika))
	require.NoError(t, svc.AddCustomer(ctx, hans))

	maxHouse, maxApartment, jereApartment := fakeHouse(max), fakeApartment(max), fakeApartment(jere)
	require.NoError(t, svc.AddHouse(ctx, maxHouse))
	require.NoError(t, svc.AddApartment(ctx, maxApartment))
	require.NoError(t, svc.AddApartment(ctx, jereApartment))

	sale := purchaseContract(maxHouse, erika)
	maxRental := rentalContract(maxApartment, hans)
	jereRental := rentalContract(jereApartment, erika)
	require.NoError(t, svc.AddPurchaseContract(ctx, sale))
	require.NoError(t, svc.AddRentalContract(ctx, maxRental))
	require.NoError(t, svc.AddRentalContract(ctx, jereRental))
	assert.Equal(t, maxHouse.ID, sale.HouseID)
	assert.Equal(t, hans.ID, maxRental.CustomerID)

	contracts, err := svc.ContractsForManagedProperties(ctx, max)
	require.NoError(t, err)
	assert.Equal(t, []*model.RentalContract{maxRental}, contracts.Rental)
	assert.Equal(t, []*model.PurchaseContract{sale}, contracts.Purchase)

	contracts, err = svc.ContractsForManagedProperties(ctx, jere)
	require.NoError(t, err)
	assert.Equal(t, []*model.RentalContract{jereRental}, contracts.Rental)
	assert.Empty(t, contracts.Purchase)

	// a contract whose apartment is gone no longer belongs to anyone
	require.NoError(t, svc.DeleteApartment(ctx, jereApartment))
	contracts, err = svc.ContractsForManagedProperties(ctx, jere)
	require.NoError(t, err)
	assert.Zero(t, contracts.Len())
}

func TestDeleteRentalContract_KeepsApartment(t *testing.T) {
	svc := newTestService(t, nil)

	broker, customer := fakeBroker(), fakeCustomer()
	require.NoError(t, svc.AddBroker(ctx, broker))
	require.NoError(t, svc.AddCustomer(ctx, customer))

	apartment := fakeApartment(broker)
	require.NoError(t, svc.AddApartment(ctx, apartment))

	contract := rentalContract(apartment, customer)
	// share the id so a delete against the wrong collection would hit
	contract.ID = apartment.ID
	require.NoError(t, svc.AddRentalContract(ctx, contract))

	require.NoError(t, svc.DeleteRentalContract(ctx, contract))

	contracts, err := svc.RentalContracts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contracts)

	_, err = svc.RentalContractByID(ctx, contract.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	found, err := svc.ApartmentByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.Same(t, apartment, found)
}

func TestPurchaseContract_Lifecycle(t *testing.T) {
	svc := newTestService(t, nil)

	broker, customer := fakeBroker(), fakeCustomer()
	require.NoError(t, svc.AddBroker(ctx, broker))
	require.NoError(t, svc.AddCustomer(ctx, customer))
	house := fakeHouse(broker)
	require.NoError(t, svc.AddHouse(ctx, house))

	contract := purchaseContract(house, customer)
	require.NoError(t, svc.AddPurchaseContract(ctx, contract))

	found, err := svc.PurchaseContractByID(ctx, contract.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, found.InstallmentCount)

	contract.InstallmentCount = 10
	require.NoError(t, svc.Update(ctx, contract))

	require.NoError(t, svc.DeletePurchaseContract(ctx, contract))
	contracts, err := svc.PurchaseContracts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contracts)

	_, err = svc.HouseByID(ctx, house.ID)
	assert.NoError(t, err)
}

func TestNullChecks(t *testing.T) {
	svc := newTestService(t, nil)

	assert.ErrorIs(t, svc.AddBroker(ctx, nil), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.DeleteCustomer(ctx, nil), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddHouse(ctx, &model.House{City: "Hamburg"}), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddApartment(ctx, &model.Apartment{City: "Hamburg"}), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddRentalContract(ctx, &model.RentalContract{CustomerID: 1}), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddPurchaseContract(ctx, &model.PurchaseContract{HouseID: 1}), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.Update(ctx, "not an entity"), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.UpdateBroker(ctx, &model.Broker{}), store.ErrInvalidArgument)
	// unsaved entities are rejected the same way on both backends
	assert.ErrorIs(t, svc.UpdateHouse(ctx, &model.House{BrokerID: 1}), store.ErrInvalidArgument)
	assert.ErrorIs(t, svc.DeleteApartment(ctx, &model.Apartment{BrokerID: 1}), store.ErrInvalidArgument)

	_, err := svc.ContractsForManagedProperties(ctx, nil)
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestPersistentProperties(t *testing.T) {
	policy, err := immo.ParsePolicy("house=persistent,apartment=persistent,rental_contract=persistent")
	require.NoError(t, err)
	svc := newTestService(t, policy)

	broker, customer := fakeBroker(), fakeCustomer()
	require.NoError(t, svc.AddBroker(ctx, broker))
	require.NoError(t, svc.AddCustomer(ctx, customer))

	apartment := fakeApartment(broker)
	apartment.BrokerID = 0
	apartment.Broker = broker
	require.NoError(t, svc.AddApartment(ctx, apartment))
	assert.Equal(t, broker.ID, apartment.BrokerID)

	contract := rentalContract(apartment, customer)
	require.NoError(t, svc.AddRentalContract(ctx, contract))

	found, err := svc.ApartmentByID(ctx, apartment.ID)
	require.NoError(t, err)
	assert.NotSame(t, apartment, found)
	assert.Equal(t, apartment.Street, found.Street)

	rentals, err := svc.RentalContractsManagedBy(ctx, broker)
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, contract.ID, rentals[0].ID)

	require.NoError(t, svc.DeleteRentalContract(ctx, contract))
	_, err = svc.ApartmentByID(ctx, apartment.ID)
	assert.NoError(t, err)

	brokers, err := svc.Brokers(ctx)
	require.NoError(t, err)
	assert.Len(t, brokers, 1)
}

func TestSeedTestData(t *testing.T) {
	svc := newTestService(t, nil)

	data, err := svc.SeedTestData(ctx)
	require.NoError(t, err)
	require.Len(t, data.Brokers, 2)
	require.Len(t, data.Customers, 2)

	max, err := svc.BrokerByLogin(ctx, "max")
	require.NoError(t, err)
	assert.Equal(t, "Tobi Mustermann", max.Name)

	portfolio, err := svc.PropertiesManagedBy(ctx, max)
	require.NoError(t, err)
	require.Len(t, portfolio.Apartments, 1)
	assert.Equal(t, "Hamburg", portfolio.Apartments[0].City)

	jere, err := svc.BrokerByLogin(ctx, "jere")
	require.NoError(t, err)
	portfolio, err = svc.PropertiesManagedBy(ctx, jere)
	require.NoError(t, err)
	assert.Zero(t, portfolio.Len())

	customers, err := svc.Customers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func newMockService(t *testing.T) (*immo.Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	svc, err := immo.NewService(db, nil, logger.Nop())
	require.NoError(t, err)
	return svc, mock
}

func TestStoreFailure_IsNotNotFound(t *testing.T) {
	unreachable := errors.New("connection refused")

	t.Run("begin fails", func(t *testing.T) {
		svc, mock := newMockService(t)
		mock.ExpectBegin().WillReturnError(unreachable)

		brokers, err := svc.Brokers(ctx)
		assert.Nil(t, brokers)
		assert.ErrorIs(t, err, store.ErrStore)
		assert.ErrorIs(t, err, unreachable)
		assert.NotErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query fails", func(t *testing.T) {
		svc, mock := newMockService(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "makler"`).WillReturnError(unreachable)
		mock.ExpectRollback()

		_, err := svc.BrokerByID(ctx, 1)
		assert.ErrorIs(t, err, store.ErrStore)
		assert.NotErrorIs(t, err, store.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is not found", func(t *testing.T) {
		svc, mock := newMockService(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "makler"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login"}))
		mock.ExpectRollback()

		_, err := svc.BrokerByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NotErrorIs(t, err, store.ErrStore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transient kinds are unaffected", func(t *testing.T) {
		svc, _ := newMockService(t)
		houses, err := svc.Houses(ctx)
		require.NoError(t, err)
		assert.Empty(t, houses)
	})
}
