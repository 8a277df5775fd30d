package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/flightops/flightline/libs/db"
	"github.com/flightops/flightline/services/scheduler-service/internal/outbox"
	"github.com/flightops/flightline/services/scheduler-service/internal/storage"
)

// Sweeper periodically flips bookings whose end time has passed from booked
// to completed, emitting a completion event for each through the outbox.
type Sweeper struct {
	pool      *db.Pool
	bookings  *storage.BookingRepository
	outbox    *outbox.Repository
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

type SweeperConfig struct {
	Interval  time.Duration
	BatchSize int
}

func NewSweeper(pool *db.Pool, bookings *storage.BookingRepository, outboxRepo *outbox.Repository, logger *slog.Logger, cfg SweeperConfig) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Sweeper{
		pool:      pool,
		bookings:  bookings,
		outbox:    outboxRepo,
		logger:    logger,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sweep(ctx); err != nil {
				s.logger.Error("completion sweep failed", "err", err)
			}
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	completed, err := s.bookings.CompleteDue(ctx, tx, time.Now().UTC(), s.batchSize)
	if err != nil {
		return err
	}
	if len(completed) == 0 {
		return tx.Commit(ctx)
	}

	for _, b := range completed {
		payload, err := json.Marshal(map[string]any{
			"booking_id":    b.ID,
			"aircraft_id":   b.AircraftID,
			"instructor_id": b.InstructorID,
			"start_time":    b.StartTime.UTC().Format(time.RFC3339),
			"end_time":      b.EndTime.UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}
		if err := s.outbox.Insert(ctx, tx, outbox.Event{
			AggregateType: "booking",
			AggregateID:   b.ID,
			EventType:     outbox.EventBookingCompleted,
			Payload:       payload,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	s.logger.Info("bookings completed", "count", len(completed))
	return nil
}
