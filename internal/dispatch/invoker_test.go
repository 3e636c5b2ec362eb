package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeScript создаёт исполняемый shell-скрипт во временном каталоге.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecInvoker_ZeroExit(t *testing.T) {
	path := writeScript(t, t.TempDir(), "ok", "exit 0")

	code, err := ExecInvoker{}.Invoke(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestExecInvoker_NonZeroExitIsNotError(t *testing.T) {
	path := writeScript(t, t.TempDir(), "fail", "exit 7")

	code, err := ExecInvoker{}.Invoke(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if code != 7 {
		t.Errorf("expected exit code 7, got %d", code)
	}
}

func TestExecInvoker_PassesOverlay(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out")
	path := writeScript(t, dir, "dump", `printf '%s' "$HARE_VAR_TYPE:$HARE_VAR_APP" > "`+outFile+`"`)

	overlay := map[string]string{
		"HARE_VAR_TYPE": "deploy",
		"HARE_VAR_APP":  "myapp",
	}

	if _, err := (ExecInvoker{}).Invoke(context.Background(), path, overlay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "deploy:myapp" {
		t.Errorf("expected deploy:myapp, got %q", got)
	}
}

func TestExecInvoker_OverlayOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "out")
	path := writeScript(t, dir, "dump", `printf '%s' "$HARE_VAR_TYPE" > "`+outFile+`"`)

	// Переменная уже есть в окружении диспетчера
	t.Setenv("HARE_VAR_TYPE", "outer")

	overlay := map[string]string{"HARE_VAR_TYPE": "inner"}

	if _, err := (ExecInvoker{}).Invoke(context.Background(), path, overlay); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "inner" {
		t.Errorf("overlay should override inherited env, got %q", got)
	}
}

func TestExecInvoker_MissingScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nosuchhandler")

	_, err := ExecInvoker{}.Invoke(context.Background(), path, nil)
	if err == nil {
		t.Fatal("expected spawn error for missing script")
	}
	if !errors.Is(err, ErrSpawn) {
		t.Errorf("expected ErrSpawn, got %v", err)
	}
}

func TestExecInvoker_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ExecInvoker{}.Invoke(context.Background(), path, nil)
	if err == nil {
		t.Fatal("expected spawn error for non-executable file")
	}
	if !errors.Is(err, ErrSpawn) {
		t.Errorf("expected ErrSpawn, got %v", err)
	}
}
