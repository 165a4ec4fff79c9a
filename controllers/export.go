package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

// ExportController produces downloadable listings of the appointment
// sheet
type ExportController struct {
	Store Store
}

var exportHeaders = []string{
	"ID", "Cliente", "Correo", "Teléfono", "Fecha_Cita", "Hora_Cita",
	"Estado", "Hora_Inicio", "Hora_Fin", "Servicio", "Notas",
	"Fecha_Creacion", "Ultima_Actualizacion",
}

// Export streams the appointment list as CSV or Excel, honoring the
// same filters as the listing endpoint
func (ec *ExportController) Export(c *gin.Context) {
	all, err := ec.Store.ListAppointments(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	dateFilter := c.Query("date")
	statusFilter := c.Query("status")
	filtered := make([]models.Appointment, 0, len(all))
	for _, a := range all {
		if dateFilter != "" && a.Date != dateFilter {
			continue
		}
		if statusFilter != "" && string(a.Status) != statusFilter {
			continue
		}
		filtered = append(filtered, a)
	}

	filename := fmt.Sprintf("citas_%s", time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		ec.writeExcel(c, filtered, filename)
	case "csv":
		ec.writeCSV(c, filtered, filename)
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Format must be csv or xlsx")
	}
}

func exportRow(a models.Appointment) []string {
	return []string{
		strconv.Itoa(a.ID),
		a.ClientName,
		a.Email,
		a.Phone,
		a.Date,
		a.Time,
		string(a.Status),
		a.StartTime,
		a.EndTime,
		a.Service,
		a.Notes,
		a.CreatedAt.Format(utils.TimestampLayout),
		a.UpdatedAt.Format(utils.TimestampLayout),
	}
}

func (ec *ExportController) writeCSV(c *gin.Context, appointments []models.Appointment, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeaders)
	for _, a := range appointments {
		_ = w.Write(exportRow(a))
	}
	w.Flush()
}

func (ec *ExportController) writeExcel(c *gin.Context, appointments []models.Appointment, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Citas"
	f.SetSheetName("Sheet1", sheet)

	headerRow := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headerRow[i] = h
	}
	_ = f.SetSheetRow(sheet, "A1", &headerRow)

	for i, a := range appointments {
		row := exportRow(a)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &values)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write Excel file")
	}
}
