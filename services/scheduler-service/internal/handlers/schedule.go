package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/roster"
	"github.com/flightops/flightline/services/scheduler-service/internal/schedule"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

// ResourceSource and BookingSource are the narrow slices of storage the
// schedule handler needs.
type ResourceSource interface {
	ListTimelineResources(ctx context.Context) ([]model.Resource, error)
}

type BookingSource interface {
	ListForRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
}

type ScheduleHandler struct {
	resources ResourceSource
	bookings  BookingSource
	roster    roster.Provider
	cache     *cache.ScheduleCache
	logger    *slog.Logger
	cfg       timeline.Config
	loc       *time.Location
}

func NewScheduleHandler(resources ResourceSource, bookings BookingSource, rosterProvider roster.Provider, viewCache *cache.ScheduleCache, logger *slog.Logger, cfg timeline.Config, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{
		resources: resources,
		bookings:  bookings,
		roster:    rosterProvider,
		cache:     viewCache,
		logger:    logger,
		cfg:       cfg,
		loc:       loc,
	}
}

type resourceItem struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

type bookingItem struct {
	ID           string                 `json:"id"`
	AircraftID   string                 `json:"aircraft_id"`
	InstructorID string                 `json:"instructor_id,omitempty"`
	StudentID    string                 `json:"student_id,omitempty"`
	StartTime    string                 `json:"start_time"`
	EndTime      string                 `json:"end_time"`
	Status       string                 `json:"status"`
	Title        string                 `json:"title,omitempty"`
	Layout       timeline.BookingLayout `json:"layout"`
}

type rowItem struct {
	Resource resourceItem  `json:"resource"`
	Open     []bool        `json:"open"`
	Bookings []bookingItem `json:"bookings"`
}

type dayViewResponse struct {
	Date        string    `json:"date"`
	Timezone    string    `json:"timezone"`
	WindowStart string    `json:"window_start"`
	WindowEnd   string    `json:"window_end"`
	Slots       []string  `json:"slots"`
	Rows        []rowItem `json:"rows"`
}

// Day serves the composed schedule for one calendar day.
func (h *ScheduleHandler) Day(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	day, dutyDate, err := h.dayParam(r)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if payload, err := h.cache.GetDayView(ctx, dutyDate); err != nil {
		h.logger.Warn("schedule cache read failed", "err", err)
	} else if payload != nil {
		writeCachedJSON(w, payload)
		return
	}

	view, err := h.loadDayView(ctx, day, dutyDate)
	if err != nil {
		h.logger.Error("day view build failed", "err", err, "date", dutyDate)
		http.Error(w, "failed to build schedule", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(h.viewResponse(view, dutyDate))
	if err != nil {
		http.Error(w, "failed to encode schedule", http.StatusInternalServerError)
		return
	}
	if err := h.cache.SetDayView(ctx, dutyDate, payload); err != nil {
		h.logger.Warn("schedule cache write failed", "err", err)
	}
	writeCachedJSON(w, payload)
}

type resolveResponse struct {
	SlotIndex int    `json:"slot_index"`
	SlotStart string `json:"slot_start"`
	Allowed   bool   `json:"allowed"`
}

// Resolve maps a pointer position within a row to a slot and reports whether
// a booking may start there. Serves the UI's click gating.
func (h *ScheduleHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	day, dutyDate, err := h.dayParam(r)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	resourceID := strings.TrimSpace(r.URL.Query().Get("resource_id"))
	if resourceID == "" {
		http.Error(w, "resource_id required", http.StatusBadRequest)
		return
	}
	pointerX, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		http.Error(w, "invalid x", http.StatusBadRequest)
		return
	}
	width, err := strconv.ParseFloat(r.URL.Query().Get("width"), 64)
	if err != nil || width <= 0 {
		http.Error(w, "width must be a positive number", http.StatusBadRequest)
		return
	}

	view, err := h.loadDayView(r.Context(), day, dutyDate)
	if err != nil {
		h.logger.Error("day view build failed", "err", err, "date", dutyDate)
		http.Error(w, "failed to build schedule", http.StatusInternalServerError)
		return
	}

	target, err := view.ResolveClick(resourceID, pointerX, width)
	if err != nil {
		if errors.Is(err, timeline.ErrNoSlots) || errors.Is(err, timeline.ErrZeroWidthContainer) {
			http.Error(w, "degenerate timeline geometry", http.StatusBadRequest)
			return
		}
		http.Error(w, "unknown resource", http.StatusNotFound)
		return
	}

	writeJSON(w, resolveResponse{
		SlotIndex: target.SlotIndex,
		SlotStart: target.SlotStart.Format(time.RFC3339),
		Allowed:   target.Allowed,
	})
}

func (h *ScheduleHandler) loadDayView(ctx context.Context, day time.Time, dutyDate string) (schedule.DayView, error) {
	resources, err := h.resources.ListTimelineResources(ctx)
	if err != nil {
		return schedule.DayView{}, err
	}
	rules, err := h.roster.RulesForDate(ctx, dutyDate)
	if err != nil {
		return schedule.DayView{}, err
	}
	rangeStart, rangeEnd := timeline.DayRangeUTC(day)
	bookings, err := h.bookings.ListForRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return schedule.DayView{}, err
	}
	return schedule.BuildDayView(day, h.cfg, resources, rules, bookings)
}

func (h *ScheduleHandler) viewResponse(view schedule.DayView, dutyDate string) dayViewResponse {
	resp := dayViewResponse{
		Date:        dutyDate,
		Timezone:    h.loc.String(),
		WindowStart: view.Grid.Start.Format(time.RFC3339),
		WindowEnd:   view.Grid.End.Format(time.RFC3339),
		Slots:       make([]string, 0, len(view.Grid.Slots)),
		Rows:        make([]rowItem, 0, len(view.Rows)),
	}
	for _, slot := range view.Grid.Slots {
		resp.Slots = append(resp.Slots, slot.Format(time.RFC3339))
	}
	for _, row := range view.Rows {
		item := rowItem{
			Resource: resourceItem{Kind: string(row.Resource.Kind), ID: row.Resource.ID, Label: row.Resource.Label},
			Open:     row.Open,
			Bookings: make([]bookingItem, 0, len(row.Bookings)),
		}
		for _, pb := range row.Bookings {
			item.Bookings = append(item.Bookings, bookingItem{
				ID:           pb.Booking.ID,
				AircraftID:   pb.Booking.AircraftID,
				InstructorID: pb.Booking.InstructorID,
				StudentID:    pb.Booking.StudentID,
				StartTime:    pb.Booking.StartTime.In(h.loc).Format(time.RFC3339),
				EndTime:      pb.Booking.EndTime.In(h.loc).Format(time.RFC3339),
				Status:       pb.Booking.Status,
				Title:        pb.Booking.Title,
				Layout:       pb.Layout,
			})
		}
		resp.Rows = append(resp.Rows, item)
	}
	return resp
}

// dayParam reads the date query parameter in the school's timezone,
// defaulting to today.
func (h *ScheduleHandler) dayParam(r *http.Request) (time.Time, string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		now := time.Now().In(h.loc)
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
		return day, day.Format("2006-01-02"), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, h.loc)
	if err != nil {
		return time.Time{}, "", err
	}
	return day, raw, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeCachedJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}
