package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew_JSONWithServiceAndStack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chargifyctl", false)
	log.Debug().Msg("hidden")
	log.Error().Stack().Err(errors.New("boom")).Int("subscription_id", 42).Msg("cancel failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line at info level, got %d:\n%s", len(lines), buf.String())
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, lines[0])
	}
	if payload["service"] != "chargifyctl" || payload["level"] != "error" || payload["error"] != "boom" {
		t.Fatalf("unexpected fields: %v", payload)
	}
	if payload["subscription_id"] != float64(42) {
		t.Fatalf("subscription_id = %v", payload["subscription_id"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", lines[0])
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chargifyctl", true)
	logger.Debug().Msg("request complete")
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}

func TestNewConsole_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("info line missing: %q", buf.String())
	}

	buf.Reset()
	log = NewConsole(&buf, true)
	log.Debug().Str("subscription_id", "42").Msg("visible")
	if !strings.Contains(buf.String(), "visible") || !strings.Contains(buf.String(), "subscription_id=42") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}
