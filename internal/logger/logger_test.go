package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hospital-portal/internal/config"
)

func TestNew_JSONOutsideLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = config.EnvProduction
	cfg.App.Version = "1.2.3"

	var buf bytes.Buffer
	l := WithModule(newWithWriter(cfg, &buf), "Test")
	l.Info("app.starting")
	l.Debug("app.hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug suppressed), got %d: %s", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rec["module"] != "Test" || rec["version"] != "1.2.3" || rec["msg"] != "app.starting" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNew_TextLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = config.EnvLocal

	var buf bytes.Buffer
	newWithWriter(cfg, &buf).Debug("app.debug")

	if !strings.Contains(buf.String(), "msg=app.debug") {
		t.Errorf("expected text debug output, got %q", buf.String())
	}
}
