package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	return event
}

func TestCloudRunHandlerWritesSeverityAndData(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelInfo))

	log.Warn("tool failed", "tool", "weather_tool", "error", errors.New("dial tcp: refused"))

	event := decodeLine(t, &buf)
	if event["severity"] != "WARNING" {
		t.Fatalf("severity mismatch: %v", event["severity"])
	}
	if event["message"] != "tool failed" {
		t.Fatalf("message mismatch: %v", event["message"])
	}
	data, ok := event["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %T", event["data"])
	}
	if data["tool"] != "weather_tool" {
		t.Fatalf("tool attr mismatch: %v", data["tool"])
	}
	if data["error"] != "dial tcp: refused" {
		t.Fatalf("error attr should be its message, got %v", data["error"])
	}
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelWarn))

	log.Info("ignored")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below level, got %q", buf.String())
	}
}

func TestCloudRunHandlerWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(&buf, slog.LevelDebug)).
		With("request_id", "abc").
		WithGroup("tool").
		With("name", "news_tool")

	log.Debug("fetch", "status", 200)

	event := decodeLine(t, &buf)
	if event["severity"] != "DEBUG" {
		t.Fatalf("severity mismatch: %v", event["severity"])
	}
	data := event["data"].(map[string]any)
	if data["request_id"] != "abc" {
		t.Fatalf("request_id mismatch: %v", data["request_id"])
	}
	if data["tool.name"] != "news_tool" {
		t.Fatalf("grouped attr mismatch: %v", data)
	}
	if data["tool.status"] != float64(200) {
		t.Fatalf("grouped record attr mismatch: %v", data)
	}
}

func TestGetSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := getSlogLevel(in); got != want {
			t.Fatalf("getSlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
