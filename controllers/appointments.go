package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// AppointmentController serves the admin listing and lifecycle
// operations
type AppointmentController struct {
	Store Store
}

// UpdateStatusInput defines the expected JSON structure for a status
// change. Actions mirror the admin panel's buttons.
type UpdateStatusInput struct {
	Action string `json:"action" binding:"required"` // start, complete, cancel
}

var actionStatus = map[string]models.Status{
	"start":    models.StatusInProgress,
	"complete": models.StatusCompleted,
	"cancel":   models.StatusCancelled,
}

// GetAppointments lists all appointments, optionally filtered by date,
// status and client-name substring. Listing degrades to an empty set
// when the store is unreachable; admins still get a working panel.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	all, err := ac.Store.ListAppointments(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("listing appointments failed, serving empty set", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"appointments": []models.Appointment{}, "degraded": true})
		return
	}

	dateFilter := c.Query("date")
	statusFilter := c.Query("status")
	clientFilter := strings.ToLower(c.Query("client"))

	filtered := make([]models.Appointment, 0, len(all))
	for _, a := range all {
		if dateFilter != "" && a.Date != dateFilter {
			continue
		}
		if statusFilter != "" && string(a.Status) != statusFilter {
			continue
		}
		if clientFilter != "" && !strings.Contains(strings.ToLower(a.ClientName), clientFilter) {
			continue
		}
		filtered = append(filtered, a)
	}

	c.JSON(http.StatusOK, gin.H{"appointments": filtered, "total": len(filtered)})
}

// GetTodayAppointments lists the current day's appointments in time
// order
func (ac *AppointmentController) GetTodayAppointments(c *gin.Context) {
	today, err := ac.Store.TodayAppointments(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("listing today's appointments failed, serving empty set", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"appointments": []models.Appointment{}, "degraded": true})
		return
	}

	counts := map[models.Status]int{}
	for _, a := range today {
		counts[a.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": today,
		"total":        len(today),
		"scheduled":    counts[models.StatusScheduled],
		"inProgress":   counts[models.StatusInProgress],
		"completed":    counts[models.StatusCompleted],
		"cancelled":    counts[models.StatusCancelled],
	})
}

// UpdateStatus applies a lifecycle action to an appointment
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	target, ok := actionStatus[strings.ToLower(input.Action)]
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Action must be start, complete or cancel")
		return
	}

	appointment, err := ac.Store.UpdateAppointmentStatus(c.Request.Context(), id, target)
	if err != nil {
		utils.RespondWithError(c, storeErrorStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// Refresh drops the read cache so the next listing refetches from the
// spreadsheet
func (ac *AppointmentController) Refresh(c *gin.Context) {
	ac.Store.InvalidateCache()
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}
