package cli

import "testing"

func TestParseHeaders(t *testing.T) {
	headers, err := parseHeaders([]string{"type=deploy", "app=myapp", "note=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if headers["type"] != "deploy" {
		t.Errorf("expected type=deploy, got %q", headers["type"])
	}
	if headers["app"] != "myapp" {
		t.Errorf("expected app=myapp, got %q", headers["app"])
	}
	// Режем по первому '='
	if headers["note"] != "a=b" {
		t.Errorf("expected note=a=b, got %q", headers["note"])
	}
}

func TestParseHeaders_Invalid(t *testing.T) {
	for _, pair := range []string{"novalue", "=empty", ""} {
		if _, err := parseHeaders([]string{pair}); err == nil {
			t.Errorf("%q: expected error", pair)
		}
	}
}

func TestParseHeaders_Empty(t *testing.T) {
	headers, err := parseHeaders(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 0 {
		t.Errorf("expected empty map, got %v", headers)
	}
}
