package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config keys of the Horarios_Config worksheet. The key names are the
// compatibility surface with the existing sheet.
const (
	KeyDuration        = "DURACION_CITA"
	KeyNonWorkingDates = "DIAS_NO_LABORABLES"
)

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "HORARIO_LUNES",
	time.Tuesday:   "HORARIO_MARTES",
	time.Wednesday: "HORARIO_MIERCOLES",
	time.Thursday:  "HORARIO_JUEVES",
	time.Friday:    "HORARIO_VIERNES",
	time.Saturday:  "HORARIO_SABADO",
	time.Sunday:    "HORARIO_DOMINGO",
}

// WeekdayKey returns the Horarios_Config key for a weekday
func WeekdayKey(day time.Weekday) string {
	return weekdayKeys[day]
}

const (
	DefaultInterval       = "09:00-18:00"
	DefaultSundayInterval = "09:00-14:00"
	DefaultDuration       = 30
)

// DefaultIntervalFor returns the fallback working-hours interval for a weekday
func DefaultIntervalFor(day time.Weekday) string {
	if day == time.Sunday {
		return DefaultSundayInterval
	}
	return DefaultInterval
}

// WeeklySchedule is the shop's working-hours configuration: one interval
// per weekday, a uniform appointment duration, and exceptional dates on
// which no slots are offered at all.
type WeeklySchedule struct {
	Intervals       map[time.Weekday]string
	Duration        int
	NonWorkingDates []string // YYYY-MM-DD
}

// DefaultWeeklySchedule returns the configuration used when the sheet
// has no stored value for a key
func DefaultWeeklySchedule() WeeklySchedule {
	intervals := make(map[time.Weekday]string, len(weekdayKeys))
	for day := range weekdayKeys {
		intervals[day] = DefaultIntervalFor(day)
	}
	return WeeklySchedule{
		Intervals: intervals,
		Duration:  DefaultDuration,
	}
}

// ScheduleFromConfig builds a WeeklySchedule from the key/value pairs of
// the Horarios_Config worksheet, filling defaults for absent or
// malformed entries
func ScheduleFromConfig(values map[string]string) WeeklySchedule {
	s := DefaultWeeklySchedule()

	for day, key := range weekdayKeys {
		if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
			s.Intervals[day] = strings.TrimSpace(v)
		}
	}

	if v, ok := values[KeyDuration]; ok {
		if d, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && d > 0 {
			s.Duration = d
		}
	}

	if v, ok := values[KeyNonWorkingDates]; ok {
		for _, raw := range strings.Split(v, ",") {
			if date := strings.TrimSpace(raw); date != "" {
				s.NonWorkingDates = append(s.NonWorkingDates, date)
			}
		}
	}

	return s
}

// ConfigRows renders the schedule as Horarios_Config rows (Tipo, Valor,
// Descripcion), in the worksheet's fixed key order
func (s WeeklySchedule) ConfigRows() [][]interface{} {
	dayRows := []struct {
		day  time.Weekday
		name string
	}{
		{time.Monday, "Lunes"},
		{time.Tuesday, "Martes"},
		{time.Wednesday, "Miércoles"},
		{time.Thursday, "Jueves"},
		{time.Friday, "Viernes"},
		{time.Saturday, "Sábado"},
		{time.Sunday, "Domingo"},
	}

	rows := [][]interface{}{{"Tipo", "Valor", "Descripcion"}}
	for _, d := range dayRows {
		interval := s.Intervals[d.day]
		if interval == "" {
			interval = DefaultIntervalFor(d.day)
		}
		rows = append(rows, []interface{}{weekdayKeys[d.day], interval, "Horario para " + d.name})
	}
	rows = append(rows, []interface{}{KeyDuration, strconv.Itoa(s.Duration), "Duración de cada cita en minutos"})
	rows = append(rows, []interface{}{KeyNonWorkingDates, strings.Join(s.NonWorkingDates, ", "), "Días festivos separados por comas (YYYY-MM-DD)"})
	return rows
}

// IntervalFor returns the configured working-hours interval for a weekday
func (s WeeklySchedule) IntervalFor(day time.Weekday) string {
	if interval, ok := s.Intervals[day]; ok && interval != "" {
		return interval
	}
	return DefaultIntervalFor(day)
}

// IsNonWorkingDate reports whether the date is configured as closed
func (s WeeklySchedule) IsNonWorkingDate(date string) bool {
	for _, d := range s.NonWorkingDates {
		if d == date {
			return true
		}
	}
	return false
}

// ParseInterval splits an HH:MM-HH:MM working-hours interval into its
// boundary times
func ParseInterval(interval string) (start, end time.Time, err error) {
	parts := strings.SplitN(interval, "-", 2)
	if len(parts) != 2 {
		return start, end, fmt.Errorf("malformed interval %q", interval)
	}
	start, err = time.Parse("15:04", strings.TrimSpace(parts[0]))
	if err != nil {
		return start, end, fmt.Errorf("malformed interval %q: %w", interval, err)
	}
	end, err = time.Parse("15:04", strings.TrimSpace(parts[1]))
	if err != nil {
		return start, end, fmt.Errorf("malformed interval %q: %w", interval, err)
	}
	return start, end, nil
}
