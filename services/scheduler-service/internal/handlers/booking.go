package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/outbox"
	"github.com/flightops/flightline/services/scheduler-service/internal/storage"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

// BookingStore is the transactional surface the booking handler drives.
type BookingStore interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Create(ctx context.Context, tx pgx.Tx, b *model.Booking) (string, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, bookingID string) (model.Booking, error)
	Cancel(ctx context.Context, tx pgx.Tx, bookingID, reason string) (time.Time, error)
	ListForRange(ctx context.Context, start, end time.Time) ([]model.Booking, error)
}

type OutboxWriter interface {
	Insert(ctx context.Context, tx pgx.Tx, evt outbox.Event) error
}

type BookingHandler struct {
	store  BookingStore
	outbox OutboxWriter
	cache  *cache.ScheduleCache
	logger *slog.Logger
	loc    *time.Location
}

func NewBookingHandler(store BookingStore, outboxWriter OutboxWriter, viewCache *cache.ScheduleCache, logger *slog.Logger, loc *time.Location) *BookingHandler {
	return &BookingHandler{store: store, outbox: outboxWriter, cache: viewCache, logger: logger, loc: loc}
}

type createBookingRequest struct {
	AircraftID   string `json:"aircraft_id"`
	InstructorID string `json:"instructor_id"`
	StudentID    string `json:"student_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Title        string `json:"title"`
}

type bookingEventPayload struct {
	BookingID    string `json:"booking_id"`
	AircraftID   string `json:"aircraft_id"`
	InstructorID string `json:"instructor_id,omitempty"`
	StudentID    string `json:"student_id,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.AircraftID) == "" {
		http.Error(w, "aircraft_id required", http.StatusBadRequest)
		return
	}
	start, err := timeline.ParseStoredTimestamp(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}
	end, err := timeline.ParseStoredTimestamp(req.EndTime)
	if err != nil {
		http.Error(w, "invalid end_time", http.StatusBadRequest)
		return
	}
	if !end.After(start) {
		http.Error(w, "end_time must be after start_time", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	booking := model.Booking{
		AircraftID:   strings.TrimSpace(req.AircraftID),
		InstructorID: strings.TrimSpace(req.InstructorID),
		StudentID:    strings.TrimSpace(req.StudentID),
		StartTime:    start,
		EndTime:      end,
		Status:       model.BookingStatusBooked,
		Title:        strings.TrimSpace(req.Title),
	}

	tx, err := h.store.Begin(ctx)
	if err != nil {
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback(ctx)

	id, err := h.store.Create(ctx, tx, &booking)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "aircraft already booked for this time", http.StatusConflict)
			return
		}
		h.logger.Error("booking insert failed", "err", err)
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}
	booking.ID = id

	if err := h.insertEvent(ctx, tx, outbox.EventBookingCreated, booking, ""); err != nil {
		h.logger.Error("outbox insert failed", "err", err)
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to create booking", http.StatusInternalServerError)
		return
	}

	h.invalidateDays(ctx, start, end)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"booking_id": id, "status": booking.Status})
}

type cancelBookingRequest struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.BookingID) == "" {
		http.Error(w, "booking_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.store.Begin(ctx)
	if err != nil {
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}
	defer tx.Rollback(ctx)

	booking, err := h.store.GetForUpdate(ctx, tx, req.BookingID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "booking not found", http.StatusNotFound)
			return
		}
		h.logger.Error("booking lookup failed", "err", err)
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}
	if booking.Status == model.BookingStatusCancelled {
		// Idempotent: cancelling twice is fine.
		writeJSON(w, map[string]string{"booking_id": booking.ID, "status": booking.Status})
		return
	}
	if booking.Status != model.BookingStatusBooked {
		http.Error(w, "only booked flights can be cancelled", http.StatusConflict)
		return
	}

	cancelledAt, err := h.store.Cancel(ctx, tx, booking.ID, strings.TrimSpace(req.Reason))
	if err != nil {
		h.logger.Error("booking cancel failed", "err", err)
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}
	booking.Status = model.BookingStatusCancelled
	booking.CancelledAt = &cancelledAt

	if err := h.insertEvent(ctx, tx, outbox.EventBookingCancelled, booking, strings.TrimSpace(req.Reason)); err != nil {
		h.logger.Error("outbox insert failed", "err", err)
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		return
	}

	h.invalidateDays(ctx, booking.StartTime, booking.EndTime)
	writeJSON(w, map[string]string{"booking_id": booking.ID, "status": booking.Status})
}

// List returns the non-cancelled bookings intersecting one calendar day.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		http.Error(w, "date required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	day, err := time.ParseInLocation("2006-01-02", raw, h.loc)
	if err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	start, end := timeline.DayRangeUTC(day)
	bookings, err := h.store.ListForRange(r.Context(), start, end)
	if err != nil {
		h.logger.Error("booking list failed", "err", err, "date", raw)
		http.Error(w, "failed to list bookings", http.StatusInternalServerError)
		return
	}

	items := make([]bookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, bookingItem{
			ID:           b.ID,
			AircraftID:   b.AircraftID,
			InstructorID: b.InstructorID,
			StudentID:    b.StudentID,
			StartTime:    b.StartTime.In(h.loc).Format(time.RFC3339),
			EndTime:      b.EndTime.In(h.loc).Format(time.RFC3339),
			Status:       b.Status,
			Title:        b.Title,
		})
	}
	writeJSON(w, map[string]any{"date": raw, "bookings": items})
}

func (h *BookingHandler) insertEvent(ctx context.Context, tx pgx.Tx, eventType string, b model.Booking, reason string) error {
	payload, err := json.Marshal(bookingEventPayload{
		BookingID:    b.ID,
		AircraftID:   b.AircraftID,
		InstructorID: b.InstructorID,
		StudentID:    b.StudentID,
		StartTime:    b.StartTime.UTC().Format(time.RFC3339),
		EndTime:      b.EndTime.UTC().Format(time.RFC3339),
		Status:       b.Status,
		Reason:       reason,
	})
	if err != nil {
		return err
	}
	return h.outbox.Insert(ctx, tx, outbox.Event{
		AggregateType: "booking",
		AggregateID:   b.ID,
		EventType:     eventType,
		Payload:       payload,
	})
}

// invalidateDays drops the cached views for every school-local day the
// booking touches. A booking can straddle midnight.
func (h *BookingHandler) invalidateDays(ctx context.Context, start, end time.Time) {
	first := start.In(h.loc)
	last := end.In(h.loc).Add(-time.Nanosecond)
	for d := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, h.loc); !d.After(last); d = d.AddDate(0, 0, 1) {
		if err := h.cache.InvalidateDay(ctx, d.Format("2006-01-02")); err != nil {
			h.logger.Warn("cache invalidation failed", "err", err, "date", d.Format("2006-01-02"))
		}
	}
}
