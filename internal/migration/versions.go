package migration

import (
	"gorm.io/gorm"

	"immo-service/internal/model"
)

func init() {
	RegisterMigration(&Migration{
		Version: "20130415120000",
		Name:    "create_makler_and_person",
		Up: func(db *gorm.DB) error {
			return db.Migrator().CreateTable(&model.Broker{}, &model.Customer{})
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&model.Customer{}, &model.Broker{})
		},
	})

	// property and contract tables exist so that any kind can be moved to
	// the persistent backend through the storage policy
	RegisterMigration(&Migration{
		Version: "20130422120000",
		Name:    "create_property_and_contract_tables",
		Up: func(db *gorm.DB) error {
			return db.Migrator().CreateTable(
				&model.House{},
				&model.Apartment{},
				&model.RentalContract{},
				&model.PurchaseContract{},
			)
		},
		Down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(
				&model.PurchaseContract{},
				&model.RentalContract{},
				&model.Apartment{},
				&model.House{},
			)
		},
	})
}
