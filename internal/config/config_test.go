package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	// Перекрываем возможные значения из окружения запуска тестов
	for _, name := range []string{
		"HARE_AMQP_URL", "HARE_AMQP_QUEUE", "HARE_SCRIPT_ROOT",
		"HARE_HANDLER_KEY", "HARE_LOG_DESTINATION", "HARE_MAX_CONCURRENT",
		"HARE_DB_URL", "HARE_JOURNAL_RETENTION_DAYS", "HARE_JOURNAL_PRUNE_SCHEDULE",
		"HARE_HTTP_PORT",
	} {
		t.Setenv(name, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AMQPURL != DefaultAMQPURL {
		t.Errorf("expected default AMQP URL, got %s", cfg.AMQPURL)
	}
	if cfg.Queue != "deploy" {
		t.Errorf("expected queue deploy, got %s", cfg.Queue)
	}
	if cfg.ScriptRoot != "/etc/hare/scripts" {
		t.Errorf("expected script root /etc/hare/scripts, got %s", cfg.ScriptRoot)
	}
	if cfg.HandlerKey != "type" {
		t.Errorf("expected handler key type, got %s", cfg.HandlerKey)
	}
	if cfg.MaxConcurrent != 1 {
		t.Errorf("expected sequential processing by default, got %d", cfg.MaxConcurrent)
	}
	if cfg.DBURL != "" {
		t.Error("journal should be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HARE_AMQP_QUEUE", "jobs")
	t.Setenv("HARE_HANDLER_KEY", "action")
	t.Setenv("HARE_MAX_CONCURRENT", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Queue != "jobs" {
		t.Errorf("expected queue jobs, got %s", cfg.Queue)
	}
	if cfg.HandlerKey != "action" {
		t.Errorf("expected handler key action, got %s", cfg.HandlerKey)
	}
	if cfg.MaxConcurrent != 4 {
		t.Errorf("expected max concurrent 4, got %d", cfg.MaxConcurrent)
	}
}

func TestLoad_InvalidMaxConcurrent(t *testing.T) {
	t.Setenv("HARE_MAX_CONCURRENT", "zero")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric HARE_MAX_CONCURRENT")
	}

	t.Setenv("HARE_MAX_CONCURRENT", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for HARE_MAX_CONCURRENT=0")
	}
}
