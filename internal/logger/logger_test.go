package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	slog.Info("catalog ready", slog.String("driver", "file"), slog.Int("products", 72))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if entry["msg"] != "catalog ready" {
		t.Errorf("Expected msg to be 'catalog ready', got '%v'", entry["msg"])
	}
	if entry["driver"] != "file" {
		t.Errorf("Expected driver to be 'file', got '%v'", entry["driver"])
	}
	if entry["products"] != float64(72) {
		t.Errorf("Expected products to be 72, got '%v'", entry["products"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected 'time' field in JSON log output")
	}
}
