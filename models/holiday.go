package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Holiday struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershopId"`

	Date   time.Time `gorm:"type:date;not null" json:"date"`
	Reason string    `gorm:"not null" json:"reason"`

	// CustomHours means the shop still opens that day with special hours,
	// so the holiday does not by itself invalidate appointments.
	CustomHours bool `gorm:"default:false" json:"customHours"`

	gorm.Model
}

func (h *Holiday) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return
}
