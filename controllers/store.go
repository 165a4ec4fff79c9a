package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"barberbook-backend/models"
	"barberbook-backend/services"
)

// Store is the slice of the scheduling and persistence service the
// controllers consume. services.SheetsStore satisfies it; tests inject
// a double.
type Store interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	AppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error)
	TodayAppointments(ctx context.Context) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int, target models.Status) (models.Appointment, error)
	GetSchedule(ctx context.Context) (models.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) error
	AvailableSlots(ctx context.Context, date time.Time) ([]string, error)
	InvalidateCache()
}

// storeErrorStatus maps a store error to the HTTP status it should
// surface as
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrSlotTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
