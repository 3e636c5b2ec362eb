package repo

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestNewJanitor_InvalidSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := NewJanitor(nil, "not a cron expr", 30, logger); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestNewJanitor_Schedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	j, err := NewJanitor(nil, "0 3 * * *", 30, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if j.retention != 30*24*time.Hour {
		t.Errorf("expected 30 day retention, got %v", j.retention)
	}

	// Следующий запуск — всегда в 03:00
	next := j.schedule.Next(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	if next.Hour() != 3 || next.Minute() != 0 {
		t.Errorf("expected next run at 03:00, got %v", next)
	}
}
