package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"barberbook-backend/models"
	"barberbook-backend/utils"
)

const (
	appointmentsSheet = "Citas"
	configSheet       = "Horarios_Config"

	appointmentsRange = appointmentsSheet + "!A2:M"
	configRange       = configSheet + "!A2:B"

	cacheTTL = 5 * time.Minute
)

// SheetsStore is the scheduling and persistence service. It owns the
// appointment rows of the Citas worksheet and the weekly-hours
// configuration in Horarios_Config, and keeps a single cached snapshot
// of the full appointment set.
//
// The spreadsheet itself offers no transactions: two concurrent writers
// can still double-book a slot or overwrite each other's status cell.
// CreateAppointment narrows the window with an optimistic re-check of
// the requested slot, but does not close it.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
	now           func() time.Time

	mu        sync.Mutex
	cached    []models.Appointment
	cacheTime time.Time
}

// NewSheetsStore builds a store handle around an authenticated Sheets
// client. It is constructed once in main and injected into the
// controllers.
func NewSheetsStore(svc *sheets.Service, spreadsheetID string, logger *zap.Logger) *SheetsStore {
	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger,
		now:           time.Now,
	}
}

// EnsureSheets creates the Citas and Horarios_Config worksheets with
// their headers and default configuration if they do not exist yet
func (s *SheetsStore) EnsureSheets(ctx context.Context) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	existing := make(map[string]bool, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		existing[sh.Properties.Title] = true
	}

	if !existing[appointmentsSheet] {
		if err := s.addSheet(ctx, appointmentsSheet); err != nil {
			return err
		}
		headers := &sheets.ValueRange{Values: [][]interface{}{models.AppointmentHeaders}}
		_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, appointmentsSheet+"!A1", headers).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		s.logger.Info("created appointments worksheet", zap.String("sheet", appointmentsSheet))
	}

	if !existing[configSheet] {
		if err := s.addSheet(ctx, configSheet); err != nil {
			return err
		}
		if err := s.UpdateSchedule(ctx, models.DefaultWeeklySchedule()); err != nil {
			return err
		}
		s.logger.Info("created schedule config worksheet", zap.String("sheet", configSheet))
	}

	return nil
}

func (s *SheetsStore) addSheet(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// InvalidateCache drops the cached appointment snapshot so the next
// read refetches from the spreadsheet
func (s *SheetsStore) InvalidateCache() {
	s.mu.Lock()
	s.cached = nil
	s.cacheTime = time.Time{}
	s.mu.Unlock()
}

// ListAppointments returns every appointment row. Reads within the
// freshness window are served from the cached snapshot; any write
// invalidates it unconditionally.
func (s *SheetsStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.cacheTime) < cacheTTL {
		out := make([]models.Appointment, len(s.cached))
		copy(out, s.cached)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, appointmentsRange).Context(ctx).Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	appointments := make([]models.Appointment, 0, len(resp.Values))
	for _, row := range resp.Values {
		if a, ok := models.AppointmentFromRow(row); ok {
			appointments = append(appointments, a)
		}
	}

	s.mu.Lock()
	s.cached = appointments
	s.cacheTime = s.now()
	s.mu.Unlock()

	out := make([]models.Appointment, len(appointments))
	copy(out, appointments)
	return out, nil
}

// AppointmentsForDate returns the appointments booked on an ISO date,
// ordered by time
func (s *SheetsStore) AppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	all, err := s.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.Appointment
	for _, a := range all {
		if a.Date == date {
			matched = append(matched, a)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Time < matched[j].Time })
	return matched, nil
}

// TodayAppointments returns the appointments for the current date
func (s *SheetsStore) TodayAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.AppointmentsForDate(ctx, s.now().Format(utils.DateLayout))
}

// nextID assigns the next appointment ID: one past the current maximum,
// 1 for an empty sheet, the current Unix timestamp if the sheet cannot
// be read at all.
func (s *SheetsStore) nextID(ctx context.Context) int {
	all, err := s.ListAppointments(ctx)
	if err != nil {
		s.logger.Warn("falling back to timestamp appointment ID", zap.Error(err))
		return int(s.now().Unix())
	}

	maxID := 0
	for _, a := range all {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}

// CreateAppointment validates and appends a new booking. The requested
// slot is re-checked against current availability right before the
// append; a concurrent booker can still win the race between that check
// and the write.
func (s *SheetsStore) CreateAppointment(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	switch {
	case strings.TrimSpace(a.ClientName) == "":
		return models.Appointment{}, fmt.Errorf("%w: client name is required", ErrValidation)
	case strings.TrimSpace(a.Phone) == "":
		return models.Appointment{}, fmt.Errorf("%w: phone is required", ErrValidation)
	case !utils.ValidateDate(a.Date):
		return models.Appointment{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	case !utils.ValidateTimeOfDay(a.Time):
		return models.Appointment{}, fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	case strings.TrimSpace(a.Service) == "":
		return models.Appointment{}, fmt.Errorf("%w: service is required", ErrValidation)
	}

	date, _ := time.Parse(utils.DateLayout, a.Date)
	available, err := s.AvailableSlots(ctx, date)
	if err != nil {
		return models.Appointment{}, err
	}
	free := false
	for _, slot := range available {
		if slot == a.Time {
			free = true
			break
		}
	}
	if !free {
		return models.Appointment{}, fmt.Errorf("%w: %s %s", ErrSlotTaken, a.Date, a.Time)
	}

	now := s.now()
	a.ID = s.nextID(ctx)
	a.Status = models.StatusScheduled
	a.StartTime = ""
	a.EndTime = ""
	a.CreatedAt = now
	a.UpdatedAt = now

	vr := &sheets.ValueRange{Values: [][]interface{}{a.ToRow()}}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, appointmentsSheet+"!A:A", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.InvalidateCache()
	utils.Metrics.BookingsCreated.Inc()
	s.logger.Info("appointment created",
		zap.Int("id", a.ID),
		zap.String("date", a.Date),
		zap.String("time", a.Time))
	return a, nil
}

// findRow locates the worksheet row of an appointment by scanning the
// ID column. Returns the 1-based sheet row, accounting for the header.
func (s *SheetsStore) findRow(ctx context.Context, id int) (int, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, appointmentsSheet+"!A2:A").Context(ctx).Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return 0, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	want := strconv.Itoa(id)
	for i, row := range resp.Values {
		if len(row) > 0 {
			if v, ok := row[0].(string); ok && strings.TrimSpace(v) == want {
				return i + 2, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// UpdateAppointmentStatus transitions an appointment to a new status.
// Illegal lifecycle edges are rejected; a move to InProgress stamps the
// start time and a move to Completed stamps the end time. All cell
// writes go through the fixed column positions of the Citas sheet.
func (s *SheetsStore) UpdateAppointmentStatus(ctx context.Context, id int, target models.Status) (models.Appointment, error) {
	all, err := s.ListAppointments(ctx)
	if err != nil {
		return models.Appointment{}, err
	}

	var current *models.Appointment
	for i := range all {
		if all[i].ID == id {
			current = &all[i]
			break
		}
	}
	if current == nil {
		return models.Appointment{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	if !models.CanTransition(current.Status, target) {
		return models.Appointment{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}

	rowNum, err := s.findRow(ctx, id)
	if err != nil {
		return models.Appointment{}, err
	}

	now := s.now()
	current.Status = target
	current.UpdatedAt = now

	data := []*sheets.ValueRange{
		s.cellValue(rowNum, models.ColStatus, string(target)),
		s.cellValue(rowNum, models.ColUpdatedAt, now.Format(utils.TimestampLayout)),
	}
	switch target {
	case models.StatusInProgress:
		current.StartTime = now.Format(utils.TimeLayout)
		data = append(data, s.cellValue(rowNum, models.ColStartTime, current.StartTime))
	case models.StatusCompleted:
		current.EndTime = now.Format(utils.TimeLayout)
		data = append(data, s.cellValue(rowNum, models.ColEndTime, current.EndTime))
	}

	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	if _, err := s.svc.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		utils.Metrics.StoreErrors.Inc()
		return models.Appointment{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.InvalidateCache()
	s.logger.Info("appointment status updated",
		zap.Int("id", id),
		zap.String("status", string(target)))
	return *current, nil
}

func (s *SheetsStore) cellValue(row, col int, value string) *sheets.ValueRange {
	return &sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%c%d", appointmentsSheet, 'A'+col, row),
		Values: [][]interface{}{{value}},
	}
}

// GetSchedule reads the weekly-hours configuration. Missing or
// malformed entries are filled with defaults; only an unreachable
// sheet is an error.
func (s *SheetsStore) GetSchedule(ctx context.Context) (models.WeeklySchedule, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, configRange).Context(ctx).Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return models.DefaultWeeklySchedule(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	values := make(map[string]string, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) < 2 {
			continue
		}
		key, _ := row[0].(string)
		value, _ := row[1].(string)
		if key != "" {
			values[strings.TrimSpace(key)] = value
		}
	}

	return models.ScheduleFromConfig(values), nil
}

// UpdateSchedule rewrites the whole Horarios_Config worksheet at once;
// there is no partial-field update.
func (s *SheetsStore) UpdateSchedule(ctx context.Context, schedule models.WeeklySchedule) error {
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, configSheet+"!A:C", &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	vr := &sheets.ValueRange{Values: schedule.ConfigRows()}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, configSheet+"!A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		utils.Metrics.StoreErrors.Inc()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.InvalidateCache()
	s.logger.Info("schedule configuration updated")
	return nil
}

// AvailableSlots computes the bookable slots for a date: the weekday's
// generated slot sequence minus every time already taken that day. A
// taken time blocks its slot regardless of the appointment's status,
// cancelled included, matching how the sheet has always been operated.
// Configured non-working dates yield no slots at all.
func (s *SheetsStore) AvailableSlots(ctx context.Context, date time.Time) ([]string, error) {
	utils.Metrics.AvailabilityLookups.Inc()

	schedule, err := s.GetSchedule(ctx)
	if err != nil {
		return nil, err
	}

	dateStr := date.Format(utils.DateLayout)
	if schedule.IsNonWorkingDate(dateStr) {
		return []string{}, nil
	}

	slots := GenerateSlots(schedule.IntervalFor(date.Weekday()), schedule.Duration)

	booked, err := s.AppointmentsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, a := range booked {
		taken[a.Time] = true
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available, nil
}
