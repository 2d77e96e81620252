// services/snapshot.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ScheduleSnapshot bundles the four inputs of conflict detection, all
// fetched for the same barbershop and inclusive date range.
type ScheduleSnapshot struct {
	Appointments []models.Appointment
	Holidays     []models.Holiday
	TimeOff      []models.TimeOffRequest
	Capacity     models.CapacityConfig
}

// Detect runs conflict detection over the snapshot.
func (s *ScheduleSnapshot) Detect() []models.ScheduleConflict {
	return DetectScheduleConflicts(s.Appointments, s.Holidays, s.TimeOff, s.Capacity)
}

// ScheduleProvider is the gorm-backed query layer feeding the detector.
// It performs no caching; every call reflects the database at query time.
type ScheduleProvider struct {
	db *gorm.DB
}

func NewScheduleProvider(db *gorm.DB) *ScheduleProvider {
	return &ScheduleProvider{db: db}
}

// Appointments lists a shop's appointments whose start falls inside the
// inclusive [start, end] day range, optionally narrowed to one barber,
// ordered by start time. Cancelled appointments are included; the detector
// filters them itself.
func (p *ScheduleProvider) Appointments(shopID uuid.UUID, start, end time.Time, barberID *uuid.UUID) ([]models.Appointment, error) {
	from := utils.BeginningOfDay(start)
	to := utils.BeginningOfDay(end).AddDate(0, 0, 1)

	query := p.db.Preload("Barber").
		Where("barbershop_id = ? AND start_time >= ? AND start_time < ?", shopID, from, to).
		Order("start_time asc")
	if barberID != nil {
		query = query.Where("barber_id = ?", *barberID)
	}

	var appointments []models.Appointment
	err := query.Find(&appointments).Error
	return appointments, err
}

// Holidays lists a shop's holidays within the inclusive day range.
func (p *ScheduleProvider) Holidays(shopID uuid.UUID, start, end time.Time) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := p.db.
		Where("barbershop_id = ? AND date >= ? AND date <= ?",
			shopID, utils.BeginningOfDay(start), utils.BeginningOfDay(end)).
		Order("date asc").
		Find(&holidays).Error
	return holidays, err
}

// TimeOffRequests lists every request overlapping the inclusive day range,
// regardless of status; the detector decides which statuses matter.
func (p *ScheduleProvider) TimeOffRequests(shopID uuid.UUID, start, end time.Time) ([]models.TimeOffRequest, error) {
	var requests []models.TimeOffRequest
	err := p.db.Preload("Barber").
		Where("barbershop_id = ? AND start_date <= ? AND end_date >= ?",
			shopID, utils.BeginningOfDay(end), utils.BeginningOfDay(start)).
		Order("start_date asc").
		Find(&requests).Error
	return requests, err
}

// CapacityConfig fetches the shop's base concurrent-appointment capacity.
func (p *ScheduleProvider) CapacityConfig(shopID uuid.UUID) (models.CapacityConfig, error) {
	var shop models.Barbershop
	if err := p.db.Select("base_capacity").First(&shop, "id = ?", shopID).Error; err != nil {
		return models.CapacityConfig{}, err
	}
	return models.CapacityConfig{BaseCapacity: shop.BaseCapacity}, nil
}

// LoadSnapshot runs the four queries concurrently and waits for all of
// them (fan-out fetch, fan-in compute). The first error wins; a partial
// snapshot is never returned.
func (p *ScheduleProvider) LoadSnapshot(shopID uuid.UUID, start, end time.Time, barberID *uuid.UUID) (*ScheduleSnapshot, error) {
	var (
		snapshot ScheduleSnapshot
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		appointments, err := p.Appointments(shopID, start, end, barberID)
		if err != nil {
			fail(err)
			return
		}
		snapshot.Appointments = appointments
	}()
	go func() {
		defer wg.Done()
		holidays, err := p.Holidays(shopID, start, end)
		if err != nil {
			fail(err)
			return
		}
		snapshot.Holidays = holidays
	}()
	go func() {
		defer wg.Done()
		requests, err := p.TimeOffRequests(shopID, start, end)
		if err != nil {
			fail(err)
			return
		}
		snapshot.TimeOff = requests
	}()
	go func() {
		defer wg.Done()
		capacity, err := p.CapacityConfig(shopID)
		if err != nil {
			fail(err)
			return
		}
		snapshot.Capacity = capacity
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &snapshot, nil
}
