package model

import "time"

// Customer represents the counterparty of a rental or purchase contract
type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
	Address   string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string {
	return "person"
}

func (c *Customer) EntityID() uint { return c.ID }
func (c *Customer) SetEntityID(id uint) { c.ID = id }

// FullName joins first and last name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
