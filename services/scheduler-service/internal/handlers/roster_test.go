package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flightops/flightline/services/scheduler-service/internal/cache"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

type fakeRosterStore struct {
	rules   []model.RosterRule
	created []model.RosterRule
	voided  []string
}

func (f *fakeRosterStore) ListForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error) {
	return f.rules, nil
}

func (f *fakeRosterStore) CreateRule(ctx context.Context, rule *model.RosterRule) (string, error) {
	f.created = append(f.created, *rule)
	return "rule-1", nil
}

func (f *fakeRosterStore) VoidRule(ctx context.Context, ruleID string) error {
	f.voided = append(f.voided, ruleID)
	return nil
}

func newTestRosterHandler(store *fakeRosterStore) *RosterHandler {
	return NewRosterHandler(store, cache.New(nil, 0), testLogger())
}

func TestRosterCreate(t *testing.T) {
	store := &fakeRosterStore{}
	h := newTestRosterHandler(store)

	body := `{"instructor_id":"inst-1","duty_date":"2026-08-24","start_time":"09:00","end_time":"12:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["rule_id"] != "rule-1" {
		t.Fatalf("rule_id = %q, want rule-1", resp["rule_id"])
	}
	if len(store.created) != 1 {
		t.Fatalf("created rules = %d, want 1", len(store.created))
	}
	if !store.created[0].IsActive {
		t.Fatalf("new rules should be active")
	}
}

func TestRosterCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing instructor", `{"duty_date":"2026-08-24","start_time":"09:00","end_time":"12:00"}`},
		{"bad date", `{"instructor_id":"inst-1","duty_date":"24/08/2026","start_time":"09:00","end_time":"12:00"}`},
		{"bad start", `{"instructor_id":"inst-1","duty_date":"2026-08-24","start_time":"25:00","end_time":"12:00"}`},
		{"bad end", `{"instructor_id":"inst-1","duty_date":"2026-08-24","start_time":"09:00","end_time":"09:60"}`},
		{"inverted window", `{"instructor_id":"inst-1","duty_date":"2026-08-24","start_time":"12:00","end_time":"09:00"}`},
		{"empty window", `{"instructor_id":"inst-1","duty_date":"2026-08-24","start_time":"09:00","end_time":"09:00"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeRosterStore{}
			h := newTestRosterHandler(store)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/roster", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if len(store.created) != 0 {
				t.Fatalf("invalid request reached storage")
			}
		})
	}
}

func TestRosterVoid(t *testing.T) {
	store := &fakeRosterStore{}
	h := newTestRosterHandler(store)

	body := `{"rule_id":"rule-9","duty_date":"2026-08-24"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster/void", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Void(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(store.voided) != 1 || store.voided[0] != "rule-9" {
		t.Fatalf("voided = %v, want [rule-9]", store.voided)
	}
}

func TestRosterListBadDate(t *testing.T) {
	h := newTestRosterHandler(&fakeRosterStore{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster?date=yesterday", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
