// controllers/conflict.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/services"
	"barberbook-backend/utils"
)

// conflictWindow parses the start/end query parameters (yyyy-MM-dd,
// inclusive) and the optional barber filter. Defaults to the next
// two weeks when no range is given.
func conflictWindow(c *gin.Context) (start, end time.Time, barberID *uuid.UUID, ok bool) {
	start = utils.BeginningOfDay(time.Now())
	end = start.AddDate(0, 0, services.ScanWindowDays)

	if raw := c.Query("start"); raw != "" {
		parsed, err := utils.ParseDateKey(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected yyyy-MM-dd")
			return start, end, nil, false
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := utils.ParseDateKey(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected yyyy-MM-dd")
			return start, end, nil, false
		}
		end = parsed
	}
	if end.Before(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "End date must not precede start date")
		return start, end, nil, false
	}

	if raw := c.Query("barber_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return start, end, nil, false
		}
		barberID = &parsed
	}

	return start, end, barberID, true
}

// GetConflicts loads the schedule snapshot for the requested window and
// runs conflict detection over it.
func GetConflicts(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	start, end, barberID, ok := conflictWindow(c)
	if !ok {
		return
	}

	snapshot, err := services.NewScheduleProvider(config.DB).
		LoadSnapshot(shopID, start, end, barberID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load schedule")
		return
	}

	conflicts := snapshot.Detect()
	c.JSON(http.StatusOK, gin.H{
		"conflicts": conflicts,
		"range":     gin.H{"start": utils.DateKey(start), "end": utils.DateKey(end)},
	})
}

// GetConflictSummary returns only the per-severity counts for the window.
func GetConflictSummary(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	start, end, barberID, ok := conflictWindow(c)
	if !ok {
		return
	}

	snapshot, err := services.NewScheduleProvider(config.DB).
		LoadSnapshot(shopID, start, end, barberID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load schedule")
		return
	}

	summary := models.Summarize(snapshot.Detect())
	c.JSON(http.StatusOK, summary)
}
