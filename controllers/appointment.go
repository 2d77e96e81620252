// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barberbook-backend/config"
	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	BarberID   string     `json:"barberId" binding:"required"`
	CustomerID string     `json:"customerId" binding:"required"`
	ServiceID  string     `json:"serviceId" binding:"required"`
	StartTime  time.Time  `json:"startTime" binding:"required"`
	EndTime    *time.Time `json:"endTime"` // defaults to start + service duration
	Notes      string     `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for rescheduling
type UpdateAppointmentInput struct {
	BarberID  *string    `json:"barberId"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Notes     *string    `json:"notes"`
}

// UpdateAppointmentStatusInput carries a status transition
type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateAppointment books an appointment. Customer and service display
// names are snapshotted onto the record at booking time.
func CreateAppointment(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	barberUUID, err := uuid.Parse(input.BarberID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
		return
	}
	customerUUID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var barber models.Barber
	if err := config.DB.Where("barbershop_id = ? AND id = ? AND is_active = true", shopID, barberUUID).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var customer models.Customer
	if err := config.DB.Where("barbershop_id = ? AND id = ?", shopID, customerUUID).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := config.DB.Where("barbershop_id = ? AND id = ?", shopID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	endTime := input.StartTime.Add(time.Duration(service.Duration) * time.Minute)
	if input.EndTime != nil {
		endTime = *input.EndTime
	}
	if !input.StartTime.Before(endTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment must end after it starts")
		return
	}

	appointment := models.Appointment{
		BarbershopID: shopID,
		BarberID:     barberUUID,
		CustomerID:   customerUUID,
		ServiceID:    serviceUUID,
		CustomerName: customer.Name,
		ServiceName:  service.Name,
		StartTime:    input.StartTime,
		EndTime:      endTime,
		Status:       models.AppointmentPending,
		Notes:        input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments, optionally filtered by date
// range (start/end as yyyy-MM-dd), barber, and status.
func GetAppointments(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	query := config.DB.Preload("Barber").
		Where("barbershop_id = ?", shopID).
		Order("start_time asc")

	if start := c.Query("start"); start != "" {
		from, err := utils.ParseDateKey(start)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date, expected yyyy-MM-dd")
			return
		}
		query = query.Where("start_time >= ?", from)
	}
	if end := c.Query("end"); end != "" {
		to, err := utils.ParseDateKey(end)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date, expected yyyy-MM-dd")
			return
		}
		query = query.Where("start_time < ?", to.AddDate(0, 0, 1))
	}
	if barberID := c.Query("barber_id"); barberID != "" {
		barberUUID, err := uuid.Parse(barberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return
		}
		query = query.Where("barber_id = ?", barberUUID)
	}
	if status := c.Query("status"); status != "" {
		if !models.ValidAppointmentStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
			return
		}
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Barber").
		Where("barbershop_id = ? AND id = ?", shopID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment reschedules or annotates an appointment
func UpdateAppointment(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("barbershop_id = ? AND id = ?", shopID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.BarberID != nil {
		barberUUID, err := uuid.Parse(*input.BarberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid barber ID format")
			return
		}
		var barber models.Barber
		if err := config.DB.Where("barbershop_id = ? AND id = ? AND is_active = true", shopID, barberUUID).
			First(&barber).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Barber not found")
			return
		}
		appointment.BarberID = barberUUID
	}
	if input.StartTime != nil {
		appointment.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		appointment.EndTime = *input.EndTime
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if !appointment.StartTime.Before(appointment.EndTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointment must end after it starts")
		return
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus transitions an appointment's status
func UpdateAppointmentStatus(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !models.ValidAppointmentStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment status")
		return
	}

	result := config.DB.Model(&models.Appointment{}).
		Where("barbershop_id = ? AND id = ?", shopID, appointmentUUID).
		Update("status", input.Status)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": input.Status})
}

// DeleteAppointment soft deletes an appointment
func DeleteAppointment(c *gin.Context) {
	shopID, ok := utils.BarbershopID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Barbershop ID not found in context")
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("barbershop_id = ? AND id = ?", shopID, appointmentUUID).
		Delete(&models.Appointment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
