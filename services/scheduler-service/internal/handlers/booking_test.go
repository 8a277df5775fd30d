package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/outbox"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// unusedStore satisfies BookingStore for requests that must be rejected
// before any storage call happens.
type unusedStore struct{}

func (unusedStore) Begin(ctx context.Context) (pgx.Tx, error) {
	panic("storage reached on an invalid request")
}

func (unusedStore) Create(ctx context.Context, tx pgx.Tx, b *model.Booking) (string, error) {
	panic("storage reached on an invalid request")
}

func (unusedStore) GetForUpdate(ctx context.Context, tx pgx.Tx, bookingID string) (model.Booking, error) {
	panic("storage reached on an invalid request")
}

func (unusedStore) Cancel(ctx context.Context, tx pgx.Tx, bookingID, reason string) (time.Time, error) {
	panic("storage reached on an invalid request")
}

func (unusedStore) ListForRange(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	panic("storage reached on an invalid request")
}

type unusedOutbox struct{}

func (unusedOutbox) Insert(ctx context.Context, tx pgx.Tx, evt outbox.Event) error {
	panic("outbox reached on an invalid request")
}

func newValidationBookingHandler() *BookingHandler {
	return NewBookingHandler(unusedStore{}, unusedOutbox{}, cache.New(nil, 0), testLogger(), time.UTC)
}

func TestBookingCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing aircraft", `{"start_time":"2026-08-24T09:00:00Z","end_time":"2026-08-24T10:00:00Z"}`},
		{"bad start", `{"aircraft_id":"ac-1","start_time":"soon","end_time":"2026-08-24T10:00:00Z"}`},
		{"bad end", `{"aircraft_id":"ac-1","start_time":"2026-08-24T09:00:00Z","end_time":"later"}`},
		{"inverted range", `{"aircraft_id":"ac-1","start_time":"2026-08-24T10:00:00Z","end_time":"2026-08-24T09:00:00Z"}`},
		{"zero length", `{"aircraft_id":"ac-1","start_time":"2026-08-24T09:00:00Z","end_time":"2026-08-24T09:00:00Z"}`},
	}

	h := newValidationBookingHandler()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestBookingCreateMethodNotAllowed(t *testing.T) {
	h := newValidationBookingHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestBookingCancelValidation(t *testing.T) {
	h := newValidationBookingHandler()
	for name, body := range map[string]string{
		"bad json":   `{`,
		"missing id": `{"reason":"weather"}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/cancel", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.Cancel(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestBookingListRequiresDate(t *testing.T) {
	h := newValidationBookingHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
