package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barber struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershopId"`

	Name      string `gorm:"not null" json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Specialty string `gorm:"default:'General'" json:"specialty"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`

	Appointments    []Appointment    `gorm:"foreignKey:BarberID" json:"-"`
	TimeOffRequests []TimeOffRequest `gorm:"foreignKey:BarberID" json:"-"`

	gorm.Model
}

func (b *Barber) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
