package model

import "time"

// House represents a house for sale, managed by exactly one broker
type House struct {
	ID            uint    `gorm:"primaryKey"`
	City          string  `gorm:"size:255;not null"`
	PostalCode    int     `gorm:"not null"`
	Street        string  `gorm:"size:255;not null"`
	StreetNumber  string  `gorm:"size:20"`
	Area          float64 `gorm:"not null"`
	Floors        int
	PurchasePrice float64 `gorm:"type:decimal(12,2)"`
	Garden        bool
	BrokerID      uint    `gorm:"index;not null"`
	Broker        *Broker `gorm:"foreignKey:BrokerID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (House) TableName() string {
	return "haus"
}

func (h *House) EntityID() uint { return h.ID }
func (h *House) SetEntityID(id uint) { h.ID = id }

// ManagerID returns the id of the managing broker, falling back to the
// loaded association when the foreign key has not been set.
func (h *House) ManagerID() uint {
	if h.BrokerID == 0 && h.Broker != nil {
		return h.Broker.ID
	}
	return h.BrokerID
}

// Apartment represents a rental apartment, managed by exactly one broker
type Apartment struct {
	ID             uint    `gorm:"primaryKey"`
	City           string  `gorm:"size:255;not null"`
	PostalCode     int     `gorm:"not null"`
	Street         string  `gorm:"size:255;not null"`
	StreetNumber   string  `gorm:"size:20"`
	Area           float64 `gorm:"not null"`
	Floor          int
	Rent           float64 `gorm:"type:decimal(10,2)"`
	Rooms          int
	Balcony        bool
	BuiltInKitchen bool
	BrokerID       uint    `gorm:"index;not null"`
	Broker         *Broker `gorm:"foreignKey:BrokerID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Apartment) TableName() string {
	return "wohnung"
}

func (a *Apartment) EntityID() uint { return a.ID }
func (a *Apartment) SetEntityID(id uint) { a.ID = id }

func (a *Apartment) ManagerID() uint {
	if a.BrokerID == 0 && a.Broker != nil {
		return a.Broker.ID
	}
	return a.BrokerID
}
