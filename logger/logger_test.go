package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
	if l.DebugEnabled() {
		t.Error("invalid level should fall back to info")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	l := NewFromEnv("env-svc")
	if !l.DebugEnabled() {
		t.Error("expected debug to be enabled from LOG_LEVEL")
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "debug", Format: "json"}, "svc", &buf)

	l.WithComponent("httpclient").Debug("request prepared", Fields("url", "http://x", "status", 200))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "request prepared" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[FieldComponent] != "httpclient" {
		t.Errorf("component = %v", entry[FieldComponent])
	}
	if entry["url"] != "http://x" {
		t.Errorf("url = %v", entry["url"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "svc", &buf)

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered at info level, got %q", buf.String())
	}
	l.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info message, got %q", buf.String())
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "svc", &buf)
	l.WithError(errors.New("boom")).Error("failed")
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("expected error field, got %q", buf.String())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "restcall", &buf)
	l.Info("hello")
	out := buf.String()
	if !strings.Contains(out, "[RES][INF]") {
		t.Errorf("expected service and level tag, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	if l.DebugEnabled() {
		t.Error("nop logger should not enable debug")
	}
	l.Error("discarded")
}

func TestSetGlobalLogger(t *testing.T) {
	prev := globalLogger.Load()
	defer SetGlobalLogger(prev)

	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected custom global logger")
	}
}

func TestGetGlobalLogger_Concurrent(t *testing.T) {
	prev := globalLogger.Load()
	defer SetGlobalLogger(prev)
	SetGlobalLogger(nil)

	const n = 16
	got := make([]*Logger, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Get("httpclient")
			_ = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	for i, l := range got {
		if l == nil {
			t.Fatalf("goroutine %d got nil logger", i)
		}
	}
	if GetGlobalLogger() != GetGlobalLogger() {
		t.Error("expected a single lazily created global logger")
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewDefault("registered")
	Register("test-component", l)
	defer Unregister("test-component")

	if Get("test-component") != l {
		t.Error("expected registered logger")
	}
	if Get("unknown-component") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(f) != 2 {
		t.Fatalf("expected 2 fields, got %d: %v", len(f), f)
	}
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields: %v", f)
	}
}

func TestErrorFields(t *testing.T) {
	f := ErrorFields("upload", errors.New("disk"))
	if f[FieldOperation] != "upload" || f[FieldError] != "disk" {
		t.Errorf("unexpected fields: %v", f)
	}
}

func TestMergeWithDuration(t *testing.T) {
	f := MergeWithDuration(nil, 1500*time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v", f[FieldDuration])
	}
}

func TestOutputWriter(t *testing.T) {
	if outputWriter("stdout") != os.Stdout {
		t.Error("expected stdout")
	}
	if outputWriter("anything") != os.Stderr {
		t.Error("expected stderr default")
	}
}
