package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TimeOffPending   = "pending"
	TimeOffApproved  = "approved"
	TimeOffRejected  = "rejected"
	TimeOffCancelled = "cancelled"
)

type TimeOffRequest struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershopId"`
	BarberID     uuid.UUID `gorm:"type:uuid;index;not null" json:"barberId"`

	// Inclusive calendar-day range.
	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`

	Status string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Reason string `json:"reason"`

	Barber Barber `gorm:"foreignKey:BarberID" json:"barber,omitempty"`

	gorm.Model
}

func (r *TimeOffRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// ValidTimeOffStatus reports whether s is a known request status.
func ValidTimeOffStatus(s string) bool {
	switch s {
	case TimeOffPending, TimeOffApproved, TimeOffRejected, TimeOffCancelled:
		return true
	}
	return false
}
