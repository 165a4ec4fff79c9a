package models

import (
	"testing"
	"time"
)

func TestScheduleFromConfig_Defaults(t *testing.T) {
	s := ScheduleFromConfig(map[string]string{})

	if s.Duration != DefaultDuration {
		t.Errorf("expected default duration %d, got %d", DefaultDuration, s.Duration)
	}
	if got := s.IntervalFor(time.Wednesday); got != DefaultInterval {
		t.Errorf("expected %s for Wednesday, got %s", DefaultInterval, got)
	}
	if got := s.IntervalFor(time.Sunday); got != DefaultSundayInterval {
		t.Errorf("expected %s for Sunday, got %s", DefaultSundayInterval, got)
	}
	if len(s.NonWorkingDates) != 0 {
		t.Errorf("expected no non-working dates, got %v", s.NonWorkingDates)
	}
}

func TestScheduleFromConfig_StoredValues(t *testing.T) {
	s := ScheduleFromConfig(map[string]string{
		"HORARIO_LUNES":      "10:00-16:00",
		"DURACION_CITA":      "45",
		"DIAS_NO_LABORABLES": "2026-12-25, 2027-01-01",
	})

	if got := s.IntervalFor(time.Monday); got != "10:00-16:00" {
		t.Errorf("expected stored Monday interval, got %s", got)
	}
	if got := s.IntervalFor(time.Tuesday); got != DefaultInterval {
		t.Errorf("expected default Tuesday interval, got %s", got)
	}
	if s.Duration != 45 {
		t.Errorf("expected duration 45, got %d", s.Duration)
	}
	if !s.IsNonWorkingDate("2026-12-25") || !s.IsNonWorkingDate("2027-01-01") {
		t.Errorf("non-working dates not parsed: %v", s.NonWorkingDates)
	}
	if s.IsNonWorkingDate("2026-12-24") {
		t.Error("2026-12-24 should not be a non-working date")
	}
}

func TestScheduleFromConfig_MalformedDuration(t *testing.T) {
	for _, v := range []string{"abc", "-10", "0", ""} {
		s := ScheduleFromConfig(map[string]string{"DURACION_CITA": v})
		if s.Duration != DefaultDuration {
			t.Errorf("duration %q: expected fallback %d, got %d", v, DefaultDuration, s.Duration)
		}
	}
}

func TestConfigRows_FixedKeyOrder(t *testing.T) {
	rows := DefaultWeeklySchedule().ConfigRows()

	wantKeys := []string{
		"Tipo",
		"HORARIO_LUNES", "HORARIO_MARTES", "HORARIO_MIERCOLES",
		"HORARIO_JUEVES", "HORARIO_VIERNES", "HORARIO_SABADO",
		"HORARIO_DOMINGO", "DURACION_CITA", "DIAS_NO_LABORABLES",
	}
	if len(rows) != len(wantKeys) {
		t.Fatalf("expected %d rows, got %d", len(wantKeys), len(rows))
	}
	for i, key := range wantKeys {
		if rows[i][0] != key {
			t.Errorf("row %d: expected key %s, got %v", i, key, rows[i][0])
		}
	}
}

func TestParseInterval(t *testing.T) {
	start, end, err := ParseInterval("09:00-18:00")
	if err != nil {
		t.Fatalf("ParseInterval: %v", err)
	}
	if start.Format("15:04") != "09:00" || end.Format("15:04") != "18:00" {
		t.Errorf("unexpected boundaries %s-%s", start.Format("15:04"), end.Format("15:04"))
	}

	if _, _, err := ParseInterval("nine to six"); err == nil {
		t.Error("expected error for malformed interval")
	}
	if _, _, err := ParseInterval("09:00"); err == nil {
		t.Error("expected error for interval without separator")
	}
	if _, _, err := ParseInterval("09:00-veinticinco"); err == nil {
		t.Error("expected error for malformed end time")
	}
}

func TestWeekdayKey(t *testing.T) {
	if WeekdayKey(time.Monday) != "HORARIO_LUNES" {
		t.Errorf("unexpected Monday key %s", WeekdayKey(time.Monday))
	}
	if WeekdayKey(time.Sunday) != "HORARIO_DOMINGO" {
		t.Errorf("unexpected Sunday key %s", WeekdayKey(time.Sunday))
	}
}
