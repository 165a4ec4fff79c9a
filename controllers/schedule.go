package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ScheduleController serves the weekly-hours configuration
type ScheduleController struct {
	Store Store
}

// SchedulePayload is the wire shape of the weekly schedule. Intervals
// are HH:MM-HH:MM strings, non-working dates are ISO dates.
type SchedulePayload struct {
	Monday          string   `json:"monday"`
	Tuesday         string   `json:"tuesday"`
	Wednesday       string   `json:"wednesday"`
	Thursday        string   `json:"thursday"`
	Friday          string   `json:"friday"`
	Saturday        string   `json:"saturday"`
	Sunday          string   `json:"sunday"`
	DurationMinutes int      `json:"durationMinutes"`
	NonWorkingDates []string `json:"nonWorkingDates"`
}

func schedulePayload(s models.WeeklySchedule) SchedulePayload {
	return SchedulePayload{
		Monday:          s.IntervalFor(time.Monday),
		Tuesday:         s.IntervalFor(time.Tuesday),
		Wednesday:       s.IntervalFor(time.Wednesday),
		Thursday:        s.IntervalFor(time.Thursday),
		Friday:          s.IntervalFor(time.Friday),
		Saturday:        s.IntervalFor(time.Saturday),
		Sunday:          s.IntervalFor(time.Sunday),
		DurationMinutes: s.Duration,
		NonWorkingDates: s.NonWorkingDates,
	}
}

func (p SchedulePayload) toSchedule() models.WeeklySchedule {
	s := models.DefaultWeeklySchedule()
	for day, interval := range map[time.Weekday]string{
		time.Monday:    p.Monday,
		time.Tuesday:   p.Tuesday,
		time.Wednesday: p.Wednesday,
		time.Thursday:  p.Thursday,
		time.Friday:    p.Friday,
		time.Saturday:  p.Saturday,
		time.Sunday:    p.Sunday,
	} {
		if strings.TrimSpace(interval) != "" {
			s.Intervals[day] = strings.TrimSpace(interval)
		}
	}
	if p.DurationMinutes > 0 {
		s.Duration = p.DurationMinutes
	}
	s.NonWorkingDates = nil
	for _, d := range p.NonWorkingDates {
		if d = strings.TrimSpace(d); d != "" {
			s.NonWorkingDates = append(s.NonWorkingDates, d)
		}
	}
	return s
}

// GetSchedule returns the current configuration
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	schedule, err := sc.Store.GetSchedule(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load schedule configuration")
		return
	}
	c.JSON(http.StatusOK, schedulePayload(schedule))
}

// UpdateSchedule replaces the whole configuration at once; there is no
// partial-field update
func (sc *ScheduleController) UpdateSchedule(c *gin.Context) {
	var input SchedulePayload
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	schedule := input.toSchedule()
	for day := range schedule.Intervals {
		if _, _, err := models.ParseInterval(schedule.Intervals[day]); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Intervals must be HH:MM-HH:MM")
			return
		}
	}
	for _, d := range schedule.NonWorkingDates {
		if !utils.ValidateDate(d) {
			utils.RespondWithError(c, http.StatusBadRequest, "Non-working dates must be YYYY-MM-DD")
			return
		}
	}

	if err := sc.Store.UpdateSchedule(c.Request.Context(), schedule); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save schedule configuration")
		return
	}

	c.JSON(http.StatusOK, schedulePayload(schedule))
}
