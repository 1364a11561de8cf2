package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"youth_housing/internal/adapters/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", &buf)
	l.Info().Str("source", "rental-notice").Msg("fetched")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["source"] != "rental-notice" || line["message"] != "fetched" || line["service"] != "youth-housing" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("dev", &buf)
	l.Info().Msg("hello")
	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}
