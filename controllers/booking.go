package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberbook-backend/models"
	"barberbook-backend/services"
	"barberbook-backend/utils"
)

// BookingController serves the public booking surface: availability
// lookups and appointment creation
type BookingController struct {
	Store Store
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	ClientName   string `json:"clientName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Service      string `json:"service" binding:"required"`
	Notes        string `json:"notes"`
	AcceptsTerms bool   `json:"acceptsTerms"`
}

// GetAvailability returns the bookable slots for a date. If the store
// or configuration cannot be read it degrades to the hardcoded fallback
// slot list so the booking flow never hard-fails, and reports that in
// the payload.
func (bc *BookingController) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse(utils.DateLayout, dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	slots, err := bc.Store.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		utils.GetLogger().Error("availability lookup failed, serving fallback slots",
			zap.String("date", dateStr), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"date":     dateStr,
			"slots":    services.FallbackSlots(),
			"degraded": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// CreateAppointment books a new appointment
func (bc *BookingController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.AcceptsTerms {
		utils.RespondWithError(c, http.StatusBadRequest, "Terms and conditions must be accepted")
		return
	}
	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if date, err := time.Parse(utils.DateLayout, input.Date); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	} else if utils.DaysBetween(time.Now(), date) < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Appointments cannot be booked in the past")
		return
	}

	appointment, err := bc.Store.CreateAppointment(c.Request.Context(), models.Appointment{
		ClientName: input.ClientName,
		Phone:      input.Phone,
		Email:      input.Email,
		Date:       input.Date,
		Time:       input.Time,
		Service:    input.Service,
		Notes:      input.Notes,
	})
	if err != nil {
		if errors.Is(err, services.ErrSlotTaken) {
			utils.RespondWithError(c, http.StatusConflict, "The selected slot is no longer available")
			return
		}
		utils.RespondWithError(c, storeErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetServices lists the services offered by the shop
func (bc *BookingController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": []string{
			"Corte de cabello",
			"Afeitado",
			"Corte y barba",
			"Tinte",
			"Peinado",
			"Otro",
		},
	})
}
