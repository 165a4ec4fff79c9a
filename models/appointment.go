package models

import (
	"strconv"
	"strings"
	"time"

	"barberbook-backend/utils"
)

// Status is an appointment lifecycle state. The stored values are the
// Spanish strings the Citas worksheet has always used; renaming them
// would orphan every existing row.
type Status string

const (
	StatusScheduled  Status = "Agendada"
	StatusInProgress Status = "En Progreso"
	StatusCompleted  Status = "Completada"
	StatusCancelled  Status = "Cancelada"
)

// ParseStatus maps a stored cell value to a Status
func ParseStatus(value string) (Status, bool) {
	switch Status(strings.TrimSpace(value)) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusInProgress:
		return StatusInProgress, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	}
	return "", false
}

// transitions is the set of legal lifecycle edges. Completed and
// Cancelled are terminal.
var transitions = map[Status][]Status{
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether moving from one status to another is legal
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Columns of the Citas worksheet, in sheet order. Row reads and cell
// writes depend on these positions; do not reorder without migrating
// the sheet itself.
const (
	ColID = iota
	ColClient
	ColEmail
	ColPhone
	ColDate
	ColTime
	ColStatus
	ColStartTime
	ColEndTime
	ColService
	ColNotes
	ColCreatedAt
	ColUpdatedAt
	ColumnCount
)

// AppointmentHeaders are the header row of the Citas worksheet
var AppointmentHeaders = []interface{}{
	"ID", "Cliente", "Correo", "Teléfono", "Fecha_Cita",
	"Hora_Cita", "Estado", "Hora_Inicio", "Hora_Fin",
	"Servicio", "Notas", "Fecha_Creacion", "Ultima_Actualizacion",
}

type Appointment struct {
	ID         int       `json:"id"`
	ClientName string    `json:"clientName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	Status     Status    `json:"status"`
	StartTime  string    `json:"startTime,omitempty"` // HH:MM, set on start
	EndTime    string    `json:"endTime,omitempty"`   // HH:MM, set on completion
	Service    string    `json:"service"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToRow converts the appointment to a Citas worksheet row
func (a *Appointment) ToRow() []interface{} {
	return []interface{}{
		a.ID,
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

// AppointmentFromRow converts a Citas worksheet row to an Appointment.
// Rows with a blank or non-numeric ID cell are reported as not ok and
// skipped by callers, matching how empty sheet rows are filtered out.
func AppointmentFromRow(row []interface{}) (Appointment, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(cell(row, ColID)))
	if err != nil {
		return Appointment{}, false
	}

	status, ok := ParseStatus(cell(row, ColStatus))
	if !ok {
		status = StatusScheduled
	}

	a := Appointment{
		ID:         id,
		ClientName: cell(row, ColClient),
		Email:      cell(row, ColEmail),
		Phone:      cell(row, ColPhone),
		Date:       cell(row, ColDate),
		Time:       cell(row, ColTime),
		Status:     status,
		StartTime:  cell(row, ColStartTime),
		EndTime:    cell(row, ColEndTime),
		Service:    cell(row, ColService),
		Notes:      cell(row, ColNotes),
	}

	if ts, err := time.Parse(utils.TimestampLayout, cell(row, ColCreatedAt)); err == nil {
		a.CreatedAt = ts
	}
	if ts, err := time.Parse(utils.TimestampLayout, cell(row, ColUpdatedAt)); err == nil {
		a.UpdatedAt = ts
	}

	return a, true
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
