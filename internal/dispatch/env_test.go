package dispatch

import (
	"maps"
	"testing"
)

func TestBuildOverlay_MapsAllHeaders(t *testing.T) {
	headers := map[string]string{
		"type": "deploy",
		"app":  "myapp",
	}

	overlay := BuildOverlay(headers)

	expected := map[string]string{
		"HARE_VAR_TYPE": "deploy",
		"HARE_VAR_APP":  "myapp",
	}

	if !maps.Equal(overlay, expected) {
		t.Errorf("expected %v, got %v", expected, overlay)
	}
}

func TestBuildOverlay_ValuesVerbatim(t *testing.T) {
	// Значения не фильтруются и не экранируются
	headers := map[string]string{
		"note": "a b; $PATH \"quoted\" ../x",
	}

	overlay := BuildOverlay(headers)

	if overlay["HARE_VAR_NOTE"] != headers["note"] {
		t.Errorf("value altered: %q", overlay["HARE_VAR_NOTE"])
	}
}

func TestBuildOverlay_Empty(t *testing.T) {
	overlay := BuildOverlay(nil)

	if overlay == nil {
		t.Fatal("should return empty map, not nil")
	}
	if len(overlay) != 0 {
		t.Errorf("expected empty overlay, got %d items", len(overlay))
	}
}

func TestBuildOverlay_CaseCollision(t *testing.T) {
	// "APP" < "app" в порядке сортировки — побеждает "app"
	headers := map[string]string{
		"APP": "first",
		"app": "second",
	}

	overlay := BuildOverlay(headers)

	if len(overlay) != 1 {
		t.Fatalf("expected 1 entry after collision, got %d", len(overlay))
	}
	if overlay["HARE_VAR_APP"] != "second" {
		t.Errorf("expected lexicographically later key to win, got %q", overlay["HARE_VAR_APP"])
	}
}

func TestBuildOverlay_Deterministic(t *testing.T) {
	headers := map[string]string{
		"Key": "a",
		"kEy": "b",
		"KEY": "c",
		"key": "d",
	}

	first := BuildOverlay(headers)
	for i := 0; i < 10; i++ {
		if again := BuildOverlay(headers); !maps.Equal(first, again) {
			t.Fatalf("overlay not deterministic: %v vs %v", first, again)
		}
	}
}
