package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
	"github.com/flightops/flightline/services/scheduler-service/internal/timeline"
)

type RosterStore interface {
	ListForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error)
	CreateRule(ctx context.Context, rule *model.RosterRule) (string, error)
	VoidRule(ctx context.Context, ruleID string) error
}

type RosterHandler struct {
	store  RosterStore
	cache  *cache.ScheduleCache
	logger *slog.Logger
}

func NewRosterHandler(store RosterStore, viewCache *cache.ScheduleCache, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{store: store, cache: viewCache, logger: logger}
}

func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dutyDate := strings.TrimSpace(r.URL.Query().Get("date"))
	if _, err := time.Parse("2006-01-02", dutyDate); err != nil {
		http.Error(w, "invalid date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	rules, err := h.store.ListForDate(r.Context(), dutyDate)
	if err != nil {
		h.logger.Error("roster list failed", "err", err, "date", dutyDate)
		http.Error(w, "failed to list roster", http.StatusInternalServerError)
		return
	}
	if rules == nil {
		rules = []model.RosterRule{}
	}
	writeJSON(w, map[string]any{"date": dutyDate, "rules": rules})
}

type createRuleRequest struct {
	InstructorID string `json:"instructor_id"`
	DutyDate     string `json:"duty_date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

func (h *RosterHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.InstructorID) == "" {
		http.Error(w, "instructor_id required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.DutyDate); err != nil {
		http.Error(w, "invalid duty_date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	startMin, err := timeline.ClockMinutes(req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time (want HH:MM)", http.StatusBadRequest)
		return
	}
	endMin, err := timeline.ClockMinutes(req.EndTime)
	if err != nil {
		http.Error(w, "invalid end_time (want HH:MM)", http.StatusBadRequest)
		return
	}
	if endMin <= startMin {
		http.Error(w, "end_time must be after start_time", http.StatusBadRequest)
		return
	}

	rule := model.RosterRule{
		InstructorID: strings.TrimSpace(req.InstructorID),
		DutyDate:     req.DutyDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsActive:     true,
	}
	id, err := h.store.CreateRule(r.Context(), &rule)
	if err != nil {
		h.logger.Error("roster rule insert failed", "err", err)
		http.Error(w, "failed to create roster rule", http.StatusInternalServerError)
		return
	}

	if err := h.cache.InvalidateDay(r.Context(), req.DutyDate); err != nil {
		h.logger.Warn("cache invalidation failed", "err", err, "date", req.DutyDate)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"rule_id": id})
}

type voidRuleRequest struct {
	RuleID   string `json:"rule_id"`
	DutyDate string `json:"duty_date"`
}

func (h *RosterHandler) Void(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req voidRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.RuleID) == "" {
		http.Error(w, "rule_id required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", req.DutyDate); err != nil {
		http.Error(w, "invalid duty_date (want YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	if err := h.store.VoidRule(r.Context(), req.RuleID); err != nil {
		h.logger.Error("roster rule void failed", "err", err, "rule_id", req.RuleID)
		http.Error(w, "failed to void roster rule", http.StatusInternalServerError)
		return
	}
	if err := h.cache.InvalidateDay(r.Context(), req.DutyDate); err != nil {
		h.logger.Warn("cache invalidation failed", "err", err, "date", req.DutyDate)
	}
	writeJSON(w, map[string]string{"rule_id": req.RuleID, "status": "voided"})
}
