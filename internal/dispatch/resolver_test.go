package dispatch

import (
	"path/filepath"
	"testing"
)

func TestResolve_ValidNames(t *testing.T) {
	root := "/etc/hare/scripts"

	tests := []string{"deploy", "Deploy", "backup01", "X", "0", "aB9"}

	for _, name := range tests {
		headers := map[string]string{"type": name}

		res, ok := Resolve(headers, "type", root)
		if !ok {
			t.Errorf("%q: expected resolution", name)
			continue
		}
		if res.Handler != name {
			t.Errorf("%q: expected handler %q, got %q", name, name, res.Handler)
		}
		if res.ScriptPath != filepath.Join(root, name) {
			t.Errorf("%q: expected path %s, got %s", name, filepath.Join(root, name), res.ScriptPath)
		}
	}
}

func TestResolve_InvalidNames(t *testing.T) {
	tests := []string{
		"",
		"../etc/passwd",
		"a/b",
		"a.b",
		"a b",
		"a-b",
		"a_b",
		"..",
		".",
		"-flag",
		"café",    // не ASCII
		"число42", // не ASCII
	}

	for _, name := range tests {
		headers := map[string]string{"type": name}

		if _, ok := Resolve(headers, "type", "/etc/hare/scripts"); ok {
			t.Errorf("%q: expected rejection", name)
		}
	}
}

func TestResolve_MissingKey(t *testing.T) {
	headers := map[string]string{"app": "myapp"}

	if _, ok := Resolve(headers, "type", "/etc/hare/scripts"); ok {
		t.Error("expected no resolution for missing handler key")
	}
}

func TestResolve_CustomHandlerKey(t *testing.T) {
	headers := map[string]string{"action": "restart", "type": "ignored/../x"}

	res, ok := Resolve(headers, "action", "/opt/handlers")
	if !ok {
		t.Fatal("expected resolution by custom key")
	}
	if res.ScriptPath != "/opt/handlers/restart" {
		t.Errorf("expected /opt/handlers/restart, got %s", res.ScriptPath)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	headers := map[string]string{"type": "deploy", "app": "myapp"}

	first, ok1 := Resolve(headers, "type", "/etc/hare/scripts")
	second, ok2 := Resolve(headers, "type", "/etc/hare/scripts")

	if !ok1 || !ok2 {
		t.Fatal("expected both resolutions to succeed")
	}
	if first != second {
		t.Errorf("resolutions differ: %+v vs %+v", first, second)
	}
}

func TestValidHandlerName_Boundaries(t *testing.T) {
	// Символы сразу за границами диапазонов ASCII
	for _, name := range []string{"a{", "A[", "0:", "`a", "@A", "/0"} {
		if ValidHandlerName(name) {
			t.Errorf("%q: expected invalid", name)
		}
	}
}
