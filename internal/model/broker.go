package model

import "time"

// Broker represents an agent managing a portfolio of properties
type Broker struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Address   string `gorm:"size:255"`
	Login     string `gorm:"size:40;index;not null"`
	Password  string `gorm:"size:40;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Broker) TableName() string {
	return "makler"
}

func (b *Broker) EntityID() uint { return b.ID }
func (b *Broker) SetEntityID(id uint) { b.ID = id }
