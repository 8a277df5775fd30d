package main

import (
	"io"
	"log/slog"
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	got := parseList(" https://ops.example.com , ,https://dispatch.example.com")
	want := []string{"https://ops.example.com", "https://dispatch.example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseList = %v, want %v", got, want)
	}
	if parseList("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestGridConfigFallsBackOnInvalid(t *testing.T) {
	t.Setenv("TIMELINE_START_HOUR", "22")
	t.Setenv("TIMELINE_END_HOUR", "6")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := gridConfig(logger)
	if cfg.StartHour != 7 || cfg.EndHour != 19 || cfg.IntervalMinutes != 30 {
		t.Fatalf("expected default grid config, got %+v", cfg)
	}
}
