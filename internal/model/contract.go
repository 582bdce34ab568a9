package model

import (
	"time"

	"gorm.io/datatypes"
)

// RentalContract represents a rental agreement for an apartment
type RentalContract struct {
	ID             uint           `gorm:"primaryKey"`
	ContractNumber int            `gorm:"index;not null"`
	Date           datatypes.Date `gorm:"not null"`
	Place          string         `gorm:"size:255"`
	ApartmentID    uint           `gorm:"index;not null"`
	Apartment      *Apartment     `gorm:"foreignKey:ApartmentID"`
	CustomerID     uint           `gorm:"index;not null"`
	Customer       *Customer      `gorm:"foreignKey:CustomerID"`
	RentalStart    datatypes.Date
	AncillaryCosts float64 `gorm:"type:decimal(10,2)"`
	DurationMonths int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (RentalContract) TableName() string {
	return "mietvertrag"
}

func (c *RentalContract) EntityID() uint { return c.ID }
func (c *RentalContract) SetEntityID(id uint) { c.ID = id }

// PurchaseContract represents a purchase agreement for a house
type PurchaseContract struct {
	ID               uint           `gorm:"primaryKey"`
	ContractNumber   int            `gorm:"index;not null"`
	Date             datatypes.Date `gorm:"not null"`
	Place            string         `gorm:"size:255"`
	HouseID          uint           `gorm:"index;not null"`
	House            *House         `gorm:"foreignKey:HouseID"`
	CustomerID       uint           `gorm:"index;not null"`
	Customer         *Customer      `gorm:"foreignKey:CustomerID"`
	InstallmentCount int
	InterestRate     float64 `gorm:"type:decimal(5,2)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PurchaseContract) TableName() string {
	return "kaufvertrag"
}

func (c *PurchaseContract) EntityID() uint { return c.ID }
func (c *PurchaseContract) SetEntityID(id uint) { c.ID = id }

// SyncReferences copies ids from loaded associations into unset foreign keys.
func (c *RentalContract) SyncReferences() {
	if c.ApartmentID == 0 && c.Apartment != nil {
		c.ApartmentID = c.Apartment.ID
	}
	if c.CustomerID == 0 && c.Customer != nil {
		c.CustomerID = c.Customer.ID
	}
}

func (c *PurchaseContract) SyncReferences() {
	if c.HouseID == 0 && c.House != nil {
		c.HouseID = c.House.ID
	}
	if c.CustomerID == 0 && c.Customer != nil {
		c.CustomerID = c.Customer.ID
	}
}
