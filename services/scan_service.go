// services/scan_service.go
package services

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ScanWindowDays is how far ahead the nightly scan looks.
const ScanWindowDays = 14

// defaultScanSpec runs the scan every day at 6 AM.
const defaultScanSpec = "0 6 * * *"

// ConflictScanService periodically re-runs conflict detection for every
// active barbershop and records the per-severity counts, so dashboards can
// show schedule health without an on-demand scan.
type ConflictScanService struct {
	db       *gorm.DB
	provider *ScheduleProvider
	logger   zerolog.Logger
	cron     *cron.Cron
}

func NewConflictScanService(db *gorm.DB, logger zerolog.Logger) *ConflictScanService {
	return &ConflictScanService{
		db:       db,
		provider: NewScheduleProvider(db),
		logger:   logger.With().Str("component", "conflict_scan").Logger(),
	}
}

// StartScheduler registers the cron job and starts ticking. The schedule
// can be overridden with CONFLICT_SCAN_SPEC.
func (s *ConflictScanService) StartScheduler() error {
	spec := os.Getenv("CONFLICT_SCAN_SPEC")
	if spec == "" {
		spec = defaultScanSpec
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, s.ScanAll); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info().Str("spec", spec).Msg("conflict scan scheduler started")
	return nil
}

// Stop halts the scheduler, waiting for a running scan to finish.
func (s *ConflictScanService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// ScanAll scans every active barbershop. One shop failing does not stop
// the others.
func (s *ConflictScanService) ScanAll() {
	var shops []models.Barbershop
	if err := s.db.Where("is_active = ?", true).Find(&shops).Error; err != nil {
		s.logger.Error().Err(err).Msg("failed to list barbershops")
		return
	}

	for _, shop := range shops {
		if err := s.ScanShop(shop.ID); err != nil {
			s.logger.Error().Err(err).Str("barbershop", shop.ID.String()).Msg("scan failed")
		}
	}
}

// ScanShop loads the upcoming schedule window for one shop, runs
// detection, and persists a ConflictScanLog row.
func (s *ConflictScanService) ScanShop(shopID uuid.UUID) error {
	now := time.Now()
	start := now
	end := now.AddDate(0, 0, ScanWindowDays)

	snapshot, err := s.provider.LoadSnapshot(shopID, start, end, nil)
	if err != nil {
		return err
	}

	summary := models.Summarize(snapshot.Detect())
	entry := models.ConflictScanLog{
		BarbershopID: shopID,
		RangeStart:   utils.BeginningOfDay(start),
		RangeEnd:     utils.BeginningOfDay(end),
		Total:        summary.Total,
		High:         summary.High,
		Medium:       summary.Medium,
		Low:          summary.Low,
		ScannedAt:    now,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return err
	}

	s.logger.Info().
		Str("barbershop", shopID.String()).
		Int("total", summary.Total).
		Int("high", summary.High).
		Int("medium", summary.Medium).
		Int("low", summary.Low).
		Msg("conflict scan complete")
	return nil
}
