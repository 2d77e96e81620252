// controllers/timeoff.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// CreateTimeOffInput defines the expected JSON structure for a time-off request
type CreateTimeOffInput struct {
	BarberID  string `json:"barberId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"` // yyyy-MM-dd, inclusive
	EndDate   string `json:"endDate" binding:"required"`   // yyyy-MM-dd, inclusive
	Reason    string `json:"reason"`
}

// UpdateTimeOffStatusInput carries an approve/reject/cancel transition
type UpdateTimeOffStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateTimeOff files a time-off request for a barber, starting as pending
func CreateTimeOff(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input CreateTimeOffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barberUUID, err := uuid.Parse(input.BarberID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	startDate, err := utils.ParseDateKey(input.StartDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected yyyy-MM-dd")
		return
	}
	endDate, err := utils.ParseDateKey(input.EndDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected yyyy-MM-dd")
		return
	}
	if endDate.Before(startDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "End date must not precede start date")
		return
	}

	var barber models.Barber
	if err := config.DB.Where("barbershop_id = ? AND id = ?", shopID, barberUUID).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	request := models.TimeOffRequest{
		BarbershopID: shopID,
		BarberID:     barberUUID,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       models.TimeOffPending,
		Reason:       input.Reason,
	}

	if err := config.DB.Create(&request).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create time-off request")
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetTimeOffRequests lists time-off requests, optionally by barber or status
func GetTimeOffRequests(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	query := config.DB.Preload("Barber").
		Where("barbershop_id = ?", shopID).
		Order("start_date asc")

	if barberID := c.Query("barber_id"); barberID != "" {
		barberUUID, err := uuid.Parse(barberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return
		}
		query = query.Where("barber_id = ?", barberUUID)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidTimeOffStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown time-off status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var requests []models.TimeOffRequest
	if err := query.Find(&requests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve time-off requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateTimeOffStatus approves, rejects, or cancels a request
func UpdateTimeOffStatus(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	requestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request ID format")
		return
	}

	var input UpdateTimeOffStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.ValidTimeOffStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown time-off status")
		return
	}

	result := config.DB.Model(&models.TimeOffRequest{}).
		Where("barbershop_id = ? AND id = ?", shopID, requestUUID).
		Update("status", input.Status)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update time-off request")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Time-off request not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": input.Status})
}
