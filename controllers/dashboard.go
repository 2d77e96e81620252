package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// DashboardOverview is the landing-page summary for a barbershop
type DashboardOverview struct {
	TodayAppointments int64 `json:"todayAppointments"`
	UpcomingWeek      int64 `json:"upcomingWeek"`
	ActiveBarbers     int64 `json:"activeBarbers"`
	ActiveCustomers   int64 `json:"activeCustomers"`
	PendingTimeOff    int64 `json:"pendingTimeOff"`

	LastScan *models.ConflictScanLog `json:"lastScan,omitempty"`
}

// GetDashboardOverview aggregates schedule health numbers for the shop
func GetDashboardOverview(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var overview DashboardOverview

	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)

	// Today's appointments
	if err := config.DB.Model(&models.Appointment{}).
		Where("barbershop_id = ? AND start_time >= ? AND start_time < ? AND status <> ?",
			shopID, today, tomorrow, models.AppointmentCancelled).
		Count(&overview.TodayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Upcoming week
	if err := config.DB.Model(&models.Appointment{}).
		Where("barbershop_id = ? AND start_time >= ? AND start_time < ? AND status <> ?",
			shopID, today, weekEnd, models.AppointmentCancelled).
		Count(&overview.UpcomingWeek).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Staff and customers
	if err := config.DB.Model(&models.Barber{}).
		Where("barbershop_id = ? AND is_active = true", shopID).
		Count(&overview.ActiveBarbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if err := config.DB.Model(&models.Customer{}).
		Where("barbershop_id = ? AND is_active = true", shopID).
		Count(&overview.ActiveCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Time-off awaiting a decision
	if err := config.DB.Model(&models.TimeOffRequest{}).
		Where("barbershop_id = ? AND status = ?", shopID, models.TimeOffPending).
		Count(&overview.PendingTimeOff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// Latest nightly scan, if any
	var lastScan models.ConflictScanLog
	err := config.DB.Where("barbershop_id = ?", shopID).
		Order("scanned_at desc").
		First(&lastScan).Error
	if err == nil {
		overview.LastScan = &lastScan
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
