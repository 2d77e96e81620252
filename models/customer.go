package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shop_phone,priority:1" json:"barbershopId"`

	Name      string     `gorm:"not null" json:"name"`
	Phone     string     `gorm:"not null;uniqueIndex:idx_shop_phone,priority:2" json:"phone"`
	Email     string     `json:"email"`
	Notes     string     `json:"notes"`
	LastVisit *time.Time `json:"lastVisit"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Appointments []Appointment `gorm:"foreignKey:CustomerID" json:"-"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
