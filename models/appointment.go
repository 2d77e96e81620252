package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentPending    = "pending"
	AppointmentConfirmed  = "confirmed"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
	AppointmentNoShow     = "no_show"
)

// AppointmentStatuses lists every valid status, used by input validation.
var AppointmentStatuses = []string{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentInProgress,
	AppointmentCompleted,
	AppointmentCancelled,
	AppointmentNoShow,
}

type Appointment struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershopId"`
	BarberID     uuid.UUID `gorm:"type:uuid;index;not null" json:"barberId"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ServiceID    uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// Display snapshots taken at booking time so schedule views survive
	// later edits to the customer or service records.
	CustomerName string `gorm:"not null" json:"customerName"`
	ServiceName  string `gorm:"not null" json:"serviceName"`

	StartTime time.Time `gorm:"index;not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`
	Status    string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes     string    `json:"notes"`

	Barber Barber `gorm:"foreignKey:BarberID" json:"barber,omitempty"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// IsCancelled reports whether the appointment is excluded from every
// schedule computation.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentCancelled
}

// OverlapsWith reports whether two appointments share any time.
// Back-to-back appointments (one ends exactly when the other starts) do
// not overlap.
func (a *Appointment) OverlapsWith(other *Appointment) bool {
	return a.StartTime.Before(other.EndTime) && other.StartTime.Before(a.EndTime)
}

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s string) bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}
