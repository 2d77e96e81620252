// controllers/holiday.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// CreateHolidayInput defines the expected JSON structure for a holiday
type CreateHolidayInput struct {
	Date        string `json:"date" binding:"required"` // yyyy-MM-dd
	Reason      string `json:"reason" binding:"required"`
	CustomHours bool   `json:"customHours"`
}

// CreateHoliday registers a shop-wide holiday
func CreateHoliday(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input CreateHolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDateKey(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-MM-dd")
		return
	}

	holiday := models.Holiday{
		BarbershopID: shopID,
		Date:         date,
		Reason:       input.Reason,
		CustomHours:  input.CustomHours,
	}

	if err := config.DB.Create(&holiday).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create holiday")
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// GetHolidays lists holidays, optionally within a start/end day range
func GetHolidays(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	query := config.DB.Where("barbershop_id = ?", shopID).Order("date asc")
	if start := c.Query("start"); start != "" {
		from, err := utils.ParseDateKey(start)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected yyyy-MM-dd")
			return
		}
		query = query.Where("date >= ?", from)
	}
	if end := c.Query("end"); end != "" {
		to, err := utils.ParseDateKey(end)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected yyyy-MM-dd")
			return
		}
		query = query.Where("date <= ?", to)
	}

	var holidays []models.Holiday
	if err := query.Find(&holidays).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve holidays")
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// DeleteHoliday removes a holiday
func DeleteHoliday(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	holidayUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid holiday ID format")
		return
	}

	result := config.DB.Where("barbershop_id = ? AND id = ?", shopID, holidayUUID).
		Delete(&models.Holiday{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete holiday")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Holiday not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted successfully"})
}
