package models

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusCancelled},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
	}
	for _, tc := range legal {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be legal", tc.from, tc.to)
		}
	}

	illegal := []struct{ from, to Status }{
		{StatusScheduled, StatusCompleted},
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusScheduled},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusScheduled},
		{StatusCancelled, StatusInProgress},
		{StatusCancelled, StatusCompleted},
		{StatusInProgress, StatusScheduled},
	}
	for _, tc := range illegal {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if s, ok := ParseStatus(" En Progreso "); !ok || s != StatusInProgress {
		t.Errorf("expected En Progreso to parse, got %q ok=%v", s, ok)
	}
	if _, ok := ParseStatus("Pendiente"); ok {
		t.Error("unknown status value should not parse")
	}
}

func TestAppointmentRowRoundTrip(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	a := Appointment{
		ID:         42,
		ClientName: "Juan Pérez",
		Email:      "juan@example.com",
		Phone:      "8095551234",
		Date:       "2026-09-07",
		Time:       "09:30",
		Status:     StatusInProgress,
		StartTime:  "09:32",
		Service:    "Corte y barba",
		Notes:      "referencia en fotos",
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Hour),
	}

	row := a.ToRow()
	if len(row) != ColumnCount {
		t.Fatalf("expected %d columns, got %d", ColumnCount, len(row))
	}
	if row[ColStatus] != "En Progreso" {
		t.Errorf("status cell must hold the stored Spanish value, got %v", row[ColStatus])
	}

	back, ok := AppointmentFromRow(row)
	if !ok {
		t.Fatal("round-tripped row did not parse")
	}
	if !back.CreatedAt.Equal(a.CreatedAt) || !back.UpdatedAt.Equal(a.UpdatedAt) {
		t.Errorf("timestamps did not round trip: %v / %v", back.CreatedAt, back.UpdatedAt)
	}
	back.CreatedAt, back.UpdatedAt = a.CreatedAt, a.UpdatedAt
	if back != a {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, a)
	}
}

func TestAppointmentFromRow_SkipsBlankRows(t *testing.T) {
	if _, ok := AppointmentFromRow([]interface{}{"", "Cliente sin ID"}); ok {
		t.Error("row with blank ID must be skipped")
	}
	if _, ok := AppointmentFromRow([]interface{}{}); ok {
		t.Error("empty row must be skipped")
	}
	if _, ok := AppointmentFromRow([]interface{}{"abc", "Cliente"}); ok {
		t.Error("non-numeric ID must be skipped")
	}
}

func TestAppointmentFromRow_ShortRow(t *testing.T) {
	// Sheets omits trailing empty cells; missing columns read as empty
	a, ok := AppointmentFromRow([]interface{}{"7", "Ana", "", "8095551234", "2026-09-07", "09:00", "Agendada"})
	if !ok {
		t.Fatal("short row should still parse")
	}
	if a.ID != 7 || a.Service != "" || a.Notes != "" {
		t.Errorf("unexpected parse of short row: %+v", a)
	}
}

func TestAppointmentFromRow_UnknownStatusDefaultsToScheduled(t *testing.T) {
	row := []interface{}{"7", "Ana", "", "8095551234", "2026-09-07", "09:00", "???"}
	a, ok := AppointmentFromRow(row)
	if !ok {
		t.Fatal("row should parse")
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected unknown status to default to %s, got %s", StatusScheduled, a.Status)
	}
}
