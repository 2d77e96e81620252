// controllers/barbershop.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// CreateBarbershopInput defines the expected JSON structure for tenant bootstrap
type CreateBarbershopInput struct {
	Name         string       `json:"name" binding:"required"`
	Address      string       `json:"address"`
	Timezone     string       `json:"timezone"`
	WorkingHours models.JSONB `json:"workingHours"`
	BaseCapacity int          `json:"baseCapacity"`
}

// UpdateCapacityInput updates the shop-wide concurrent-appointment capacity
type UpdateCapacityInput struct {
	BaseCapacity int `json:"baseCapacity" binding:"required,min=1"`
}

// UpdateWorkingHoursInput replaces the working-hours document
type UpdateWorkingHoursInput struct {
	WorkingHours models.JSONB `json:"workingHours" binding:"required"`
}

// CreateBarbershop bootstraps a tenant. This is the only endpoint outside
// the tenant-scoped group.
func CreateBarbershop(c *gin.Context) {
	var input CreateBarbershopInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	shop := models.Barbershop{
		Name:         input.Name,
		Address:      input.Address,
		WorkingHours: input.WorkingHours,
		BaseCapacity: input.BaseCapacity,
		IsActive:     true,
	}
	if shop.Timezone == "" {
		shop.Timezone = "UTC"
	}
	if input.Timezone != "" {
		shop.Timezone = input.Timezone
	}
	if shop.BaseCapacity <= 0 {
		shop.BaseCapacity = models.DefaultBaseCapacity
	}

	// Set default working hours if not provided
	if shop.WorkingHours == nil {
		shop.WorkingHours = models.JSONB{
			"monday":    map[string]interface{}{"open": "09:00", "close": "19:00", "closed": false},
			"tuesday":   map[string]interface{}{"open": "09:00", "close": "19:00", "closed": false},
			"wednesday": map[string]interface{}{"open": "09:00", "close": "19:00", "closed": false},
			"thursday":  map[string]interface{}{"open": "09:00", "close": "19:00", "closed": false},
			"friday":    map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
			"saturday":  map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
			"sunday":    map[string]interface{}{"open": "10:00", "close": "16:00", "closed": true},
		}
	}

	if err := config.DB.Create(&shop).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create barbershop")
		return
	}

	c.JSON(http.StatusCreated, shop)
}

// GetBarbershop returns the current tenant's profile and settings
func GetBarbershop(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var shop models.Barbershop
	if err := config.DB.First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barbershop not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateCapacity changes the base concurrent-appointment capacity
func UpdateCapacity(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input UpdateCapacityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Model(&models.Barbershop{}).
		Where("id = ?", shopID).
		Update("base_capacity", input.BaseCapacity)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update capacity")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barbershop not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Capacity updated", "baseCapacity": input.BaseCapacity})
}

// UpdateWorkingHours replaces the shop's weekly hours document
func UpdateWorkingHours(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input UpdateWorkingHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result := config.DB.Model(&models.Barbershop{}).
		Where("id = ?", shopID).
		Update("working_hours", input.WorkingHours)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Barbershop not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}
