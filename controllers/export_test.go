package controllers

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"barberbook-backend/models"
)

func TestExport_CSV(t *testing.T) {
	store := &fakeStore{appointments: []models.Appointment{
		{ID: 1, ClientName: "Juan Pérez", Date: "2026-09-07", Time: "09:00", Status: models.StatusScheduled, Service: "Corte de cabello"},
		{ID: 2, ClientName: "Ana Gómez", Date: "2026-09-08", Time: "10:00", Status: models.StatusCompleted, Service: "Tinte"},
	}}
	ec := &ExportController{Store: store}

	w := performRequest(ec.Export, http.MethodGet, "/test?format=csv&date=2026-09-07", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected CSV content type, got %q", ct)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 filtered row, got %d records", len(records))
	}
	if records[0][0] != "ID" || records[0][6] != "Estado" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[1][1] != "Juan Pérez" || records[1][6] != "Agendada" {
		t.Errorf("unexpected data row: %v", records[1])
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	ec := &ExportController{Store: &fakeStore{}}
	w := performRequest(ec.Export, http.MethodGet, "/test?format=pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestExport_Excel(t *testing.T) {
	store := &fakeStore{appointments: []models.Appointment{
		{ID: 1, ClientName: "Juan Pérez", Date: "2026-09-07", Time: "09:00", Status: models.StatusScheduled},
	}}
	ec := &ExportController{Store: store}

	w := performRequest(ec.Export, http.MethodGet, "/test?format=xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.Len() == 0 {
		t.Error("expected a non-empty workbook")
	}
	// XLSX files are zip archives
	if !strings.HasPrefix(w.Body.String(), "PK") {
		t.Error("response does not look like an xlsx file")
	}
}
