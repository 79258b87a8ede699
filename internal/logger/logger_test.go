package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNopBeforeInit(t *testing.T) {
	// Must not panic even though nothing initialized the logger.
	Info("info before init")
	Warn("warn before init", zap.String("k", "v"))
	Named("texture").Info("named before init")
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			if err := Init(Options{Level: tt.level, File: logFile}); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Info("info message")
			Warn("warn message")
			Error("error message")

			text := readLog(t, logFile)
			for _, want := range tt.expected {
				if !strings.Contains(text, want) {
					t.Errorf("level %s: expected %s in output", tt.level, want)
				}
			}
			for _, unwanted := range tt.excluded {
				if strings.Contains(text, unwanted) {
					t.Errorf("level %s: did not expect %s in output", tt.level, unwanted)
				}
			}
		})
	}
}

func TestSubsystemLevels(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "subsystems.log")
	err := Init(Options{
		Level: "warn",
		File:  logFile,
		Subsystems: map[string]string{
			"texture": "debug",
			"game":    "error",
		},
	})
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("texture").Debug("texture detail")
	Named("game").Warn("game warning")
	Named("render").Info("render info")
	Named("render").Warn("render warning")
	Info("root info")

	text := readLog(t, logFile)
	tests := []struct {
		msg  string
		want bool
	}{
		{"texture detail", true}, // lowered below the root level
		{"game warning", false},  // raised above the root level
		{"render info", false},   // no override, root level applies
		{"render warning", true},
		{"root info", false},
	}
	for _, tt := range tests {
		if got := strings.Contains(text, tt.msg); got != tt.want {
			t.Errorf("%q logged = %v, want %v", tt.msg, got, tt.want)
		}
	}
	if !strings.Contains(text, "\ttexture\t") {
		t.Errorf("subsystem name missing from output:\n%s", text)
	}
}

func TestInitRejectsUnknownLevels(t *testing.T) {
	if err := Init(Options{Level: "verbose"}); err == nil {
		t.Error("expected error for unknown root level")
	}
	err := Init(Options{Level: "info", Subsystems: map[string]string{"texture": "loud"}})
	if err == nil || !strings.Contains(err.Error(), "texture") {
		t.Errorf("expected subsystem error naming texture, got %v", err)
	}
}

func TestInitWithoutOutputsIsNop(t *testing.T) {
	if err := Init(Options{Level: "debug"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log.Core().Enabled(zap.ErrorLevel) {
		t.Error("logger without outputs should be a no-op")
	}
	Named("texture").Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "info", false},
		{"debug", "debug", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"verbose", "info", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got.String() != tt.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
