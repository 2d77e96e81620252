// controllers/barber.go
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

// CreateBarberInput defines the expected JSON structure for adding a barber
type CreateBarberInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
}

// UpdateBarberInput defines the expected JSON structure for updating a barber
type UpdateBarberInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Specialty *string `json:"specialty"`
	IsActive  *bool   `json:"isActive"`
}

// AddBarber adds a barber to the barbershop
func AddBarber(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input CreateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	barber := models.Barber{
		BarbershopID: shopID,
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Specialty:    input.Specialty,
		IsActive:     true,
	}

	if err := config.DB.Create(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barber")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// GetBarbers retrieves all barbers for the barbershop
func GetBarbers(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var barbers []models.Barber
	if err := config.DB.Where("barbershop_id = ?", shopID).Find(&barbers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve barbers")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// GetBarber retrieves a specific barber by ID
func GetBarber(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
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

	c.JSON(http.StatusOK, barber)
}

// UpdateBarber updates an existing barber
func UpdateBarber(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	var input UpdateBarberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
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

	if input.Name != nil {
		barber.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		barber.Phone = *input.Phone
	}
	if input.Email != nil {
		barber.Email = *input.Email
	}
	if input.Specialty != nil {
		barber.Specialty = *input.Specialty
	}
	if input.IsActive != nil {
		barber.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&barber).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update barber")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// DeleteBarber soft deletes a barber
func DeleteBarber(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	barberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}

	result := config.DB.Where("barbershop_id = ? AND id = ?", shopID, barberUUID).
		Delete(&models.Barber{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete barber")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Barber deleted successfully"})
}
