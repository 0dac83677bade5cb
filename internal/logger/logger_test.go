package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHelpersAreNoOpsBeforeInit(t *testing.T) {
	Close()
	Debug("dropped")
	Info("dropped")
	Warn("dropped")
	Error("dropped")
}

func TestInitWritesAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tedit.log")
	t.Setenv("TEDIT_LOG_FILE", path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("stale line\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Init(false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Info("key read failed", "err", "boom")
	Debug("hidden at info level")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "stale line") {
		t.Fatalf("log not truncated: %q", out)
	}
	if !strings.Contains(out, "key read failed") || !strings.Contains(out, "boom") {
		t.Fatalf("log missing entry: %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug entry written at info level: %q", out)
	}
}

func TestPathUsesConfigDir(t *testing.T) {
	t.Setenv("TEDIT_LOG_FILE", "")
	t.Setenv("TEDIT_CONFIG_HOME", "/tmp/tedit-home")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if got != "/tmp/tedit-home/tedit.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/tedit-home/tedit.log")
	}
}

func TestDebugFromEnv(t *testing.T) {
	tests := map[string]bool{"": false, "0": false, "false": false, "1": true, "yes": true}
	for v, want := range tests {
		t.Setenv("TEDIT_DEBUG", v)
		if got := DebugFromEnv(); got != want {
			t.Fatalf("DebugFromEnv with %q = %v, want %v", v, got, want)
		}
	}
}
