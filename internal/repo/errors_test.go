package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestMapScanError_NoRows(t *testing.T) {
	if err := mapScanError(pgx.ErrNoRows); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Обёрнутый ErrNoRows тоже распознаётся
	wrapped := fmt.Errorf("scan dispatch: %w", pgx.ErrNoRows)
	if err := mapScanError(wrapped); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for wrapped ErrNoRows, got %v", err)
	}
}

func TestMapScanError_PassThrough(t *testing.T) {
	other := errors.New("connection refused")
	if err := mapScanError(other); !errors.Is(err, other) {
		t.Errorf("expected passthrough, got %v", err)
	}
	if errors.Is(mapScanError(other), ErrNotFound) {
		t.Error("unrelated error must not become ErrNotFound")
	}

	if err := mapScanError(nil); err != nil {
		t.Errorf("nil must stay nil, got %v", err)
	}
}
