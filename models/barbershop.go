package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBaseCapacity is the concurrent-appointment capacity assumed when a
// barbershop has no explicit value configured.
const DefaultBaseCapacity = 4

type Barbershop struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Address  string    `json:"address"`
	Timezone string    `gorm:"default:'UTC'" json:"timezone"`

	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	// Maximum appointments allowed to start in the same minute across the
	// whole shop. Zero means "use DefaultBaseCapacity".
	BaseCapacity int  `gorm:"default:4" json:"baseCapacity"`
	IsActive     bool `gorm:"default:true" json:"isActive"`

	Barbers         []Barber         `gorm:"foreignKey:BarbershopID" json:"-"`
	Customers       []Customer       `gorm:"foreignKey:BarbershopID" json:"-"`
	Services        []Service        `gorm:"foreignKey:BarbershopID" json:"-"`
	Appointments    []Appointment    `gorm:"foreignKey:BarbershopID" json:"-"`
	Holidays        []Holiday        `gorm:"foreignKey:BarbershopID" json:"-"`
	TimeOffRequests []TimeOffRequest `gorm:"foreignKey:BarbershopID" json:"-"`

	gorm.Model
}

func (b *Barbershop) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// CapacityConfig is the slice of barbershop configuration the conflict
// detector consults. Kept separate from Barbershop so detection code never
// touches gorm types.
type CapacityConfig struct {
	BaseCapacity int `json:"baseCapacity"`
}

// Base returns the effective capacity, falling back to DefaultBaseCapacity
// when the stored value is missing or nonsense.
func (c CapacityConfig) Base() int {
	if c.BaseCapacity <= 0 {
		return DefaultBaseCapacity
	}
	return c.BaseCapacity
}

// Custom JSONB type for working hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
