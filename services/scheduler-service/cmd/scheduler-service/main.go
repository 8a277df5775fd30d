package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/flightops/flightline/libs/config"
	"github.com/flightops/flightline/libs/db"
	"github.com/flightops/flightline/libs/httpx"
	"github.com/flightops/flightline/libs/kafkax"
	otelx "github.com/flightops/flightline/libs/otel"
	"github.com/flightops/flightline/libs/runtime"
	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/consumer"
	"github.com/flightops/flightline/services/scheduler-service/internal/handlers"
	"github.com/flightops/flightline/services/scheduler-service/internal/inbox"
	"github.com/flightops/flightline/services/scheduler-service/internal/jobs"
	"github.com/flightops/flightline/services/scheduler-service/internal/outbox"
	"github.com/flightops/flightline/services/scheduler-service/internal/roster"
	"github.com/flightops/flightline/services/scheduler-service/internal/storage"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

func parseList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func gridConfig(logger *slog.Logger) timeline.Config {
	cfg := timeline.Config{
		StartHour:       config.Int("TIMELINE_START_HOUR", 7),
		EndHour:         config.Int("TIMELINE_END_HOUR", 19),
		IntervalMinutes: config.Int("TIMELINE_INTERVAL_MINUTES", 30),
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid timeline config; using defaults", "err", err)
		cfg = timeline.Config{StartHour: 7, EndHour: 19, IntervalMinutes: 30}
	}
	return cfg
}

func main() {
	service := config.String("SERVICE_NAME", "scheduler-service")
	port, err := config.Port("PORT", "8085")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}
	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	loc, err := config.Location("SCHOOL_TIMEZONE", "UTC")
	if err != nil {
		logger.Error("invalid school timezone; using UTC", "err", err)
		loc = time.UTC
	}
	gridCfg := gridConfig(logger)

	bookingRepo := storage.NewBookingRepository(pool)
	rosterRepo := storage.NewRosterRepository(pool)
	resourceRepo := storage.NewResourceRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	rosterProvider, err := roster.NewRemoteProvider(config.String("ROSTER_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("roster provider init failed; using local store", "err", err)
		rosterProvider = nil
	}
	if rosterProvider == nil {
		rosterProvider = roster.NewDBProvider(rosterRepo)
	}

	var rdb *redis.Client
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
		})
		defer func() { _ = rdb.Close() }()
	}
	viewCache := cache.New(rdb, time.Duration(config.Int("SCHEDULE_CACHE_TTL_SECONDS", 30))*time.Second)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	inboxRepo := inbox.NewRepository(pool)
	rosterTopic := config.String("KAFKA_ROSTER_TOPIC", outbox.EventRosterUpdated)
	if strings.TrimSpace(config.String("KAFKA_BROKERS", "")) != "" {
		eventConsumer := consumer.New(logger, inboxRepo, consumer.Config{
			Brokers: config.String("KAFKA_BROKERS", ""),
			GroupID: config.String("KAFKA_GROUP_ID", "scheduler-service"),
			Topic:   rosterTopic,
		}, func(ctx context.Context, msg kafka.Message) error {
			// Roster edits land from the back-office app; the cached view
			// for that day is stale the moment they do.
			var payload struct {
				DutyDate string `json:"duty_date"`
			}
			if err := json.Unmarshal(msg.Value, &payload); err != nil {
				logger.Error("invalid event payload", "err", err, "topic", msg.Topic)
				return nil
			}
			if payload.DutyDate == "" {
				logger.Error("missing duty_date in event", "topic", msg.Topic)
				return nil
			}
			return viewCache.InvalidateDay(ctx, payload.DutyDate)
		})
		go eventConsumer.Run(ctx)
	}

	sweeper := jobs.NewSweeper(pool, bookingRepo, outboxRepo, logger, jobs.SweeperConfig{
		Interval:  time.Duration(config.Int("SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		BatchSize: config.Int("SWEEP_BATCH_SIZE", 100),
	})
	go sweeper.Run(ctx)

	scheduleHandler := handlers.NewScheduleHandler(resourceRepo, bookingRepo, rosterProvider, viewCache, logger, gridCfg, loc)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, outboxRepo, viewCache, logger, loc)
	rosterHandler := handlers.NewRosterHandler(rosterRepo, viewCache, logger)

	readyChecks := []runtime.ReadyCheck{
		{Name: "db", Check: db.ReadyCheck(pool)},
		{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	}
	if rdb != nil {
		readyChecks = append(readyChecks, runtime.ReadyCheck{Name: "redis", Check: cache.ReadyCheck(rdb)})
	}
	mux := runtime.NewBaseMuxWithReady(readyChecks...)
	mux.HandleFunc("/api/v1/schedule", scheduleHandler.Day)
	mux.HandleFunc("/api/v1/schedule/resolve", scheduleHandler.Resolve)
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			bookingHandler.Create(w, r)
			return
		}
		bookingHandler.List(w, r)
	})
	mux.HandleFunc("/api/v1/bookings/cancel", bookingHandler.Cancel)
	mux.HandleFunc("/api/v1/roster", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			rosterHandler.Create(w, r)
			return
		}
		rosterHandler.List(w, r)
	})
	mux.HandleFunc("/api/v1/roster/void", rosterHandler.Void)

	limitPerMinute := config.Int("RATE_LIMIT", 120)
	var rateLimitMW httpx.Middleware
	if rdb != nil {
		rl := httpx.NewRedisRateLimiter(rdb, limitPerMinute, time.Minute, config.String("RATE_LIMIT_PREFIX", "rl"))
		rateLimitMW = rl.Middleware(logger, true)
	} else {
		rl := httpx.NewRateLimiter(limitPerMinute, time.Minute)
		rateLimitMW = rl.Middleware()
	}

	httpHandler := httpx.Chain(mux,
		httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: parseList(config.String("CORS_ALLOWED_ORIGINS", "")),
			AllowedMethods: parseList(config.String("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders: parseList(config.String("CORS_ALLOWED_HEADERS", "Content-Type,X-Request-Id")),
			MaxAge:         time.Duration(config.Int("CORS_MAX_AGE_SECONDS", 300)) * time.Second,
		}),
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(1<<20),
		httpx.WithTimeout(time.Duration(config.Int("REQUEST_TIMEOUT_SECONDS", 15))*time.Second),
		rateLimitMW,
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "scheduler")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
