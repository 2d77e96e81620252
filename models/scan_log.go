// models/scan_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictScanLog records the outcome of one scheduled conflict scan for a
// barbershop, so dashboards can show trend numbers without re-running
// detection.
type ConflictScanLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index;not null" json:"barbershopId"`

	RangeStart time.Time `gorm:"type:date;not null" json:"rangeStart"`
	RangeEnd   time.Time `gorm:"type:date;not null" json:"rangeEnd"`

	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`

	ScannedAt time.Time `json:"scannedAt"`

	gorm.Model
}

func (l *ConflictScanLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
