package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points XDG_CONFIG_HOME and the working directory at a fresh temp
// dir and clears JOIN_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range envKeys {
		t.Setenv("JOIN_"+strings.ToUpper(key), "")
		_ = os.Unsetenv("JOIN_" + strings.ToUpper(key))
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name      string
		xdgConfig string
	}{
		{name: "with XDG_CONFIG_HOME set", xdgConfig: "/custom/config"},
		{name: "without XDG_CONFIG_HOME", xdgConfig: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.xdgConfig != "" {
				if want := "/custom/config/join/join.yml"; got != want {
					t.Errorf("GlobalPath() = %v, want %v", got, want)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, filepath.Join(".config", "join", "join.yml")) {
				t.Errorf("GlobalPath() should end with .config/join/join.yml, got %v", got)
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "join.yml" {
		t.Errorf("ProjectPath() = %v, want join.yml", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true, want false when no config files exist")
	}

	if err := os.WriteFile(ProjectPath(), []byte("log_level: debug\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}
	if !Exists() {
		t.Error("Exists() = false, want true when project config exists")
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("default LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DataDir != ".join" {
		t.Errorf("default DataDir = %v, want .join", cfg.DataDir)
	}
	if cfg.TransitionDelay != 300*time.Millisecond {
		t.Errorf("default TransitionDelay = %v, want 300ms", cfg.TransitionDelay)
	}
	if cfg.NatsURL != "" {
		t.Errorf("default NatsURL = %q, want empty", cfg.NatsURL)
	}
	if cfg.SubjectPrefix != DefaultSubjectPrefix {
		t.Errorf("default SubjectPrefix = %v, want %v", cfg.SubjectPrefix, DefaultSubjectPrefix)
	}
}

func TestWriteGlobal_ThenLoad(t *testing.T) {
	isolate(t)

	want := &Config{
		LogLevel:        "debug",
		LogFile:         "/tmp/join.log",
		DataDir:         ".kiosk",
		TransitionDelay: 150 * time.Millisecond,
		NatsURL:         "nats://127.0.0.1:4222",
		SubjectPrefix:   "chamber.applications",
	}
	if err := WriteGlobal(want); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	for _, field := range []string{
		"log_level: debug",
		"data_dir: .kiosk",
		"transition_delay: 150ms",
		"nats_url: nats://127.0.0.1:4222",
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("config file missing %q\nContent:\n%s", field, data)
		}
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	isolate(t)

	global := Default()
	global.LogLevel = "warn"
	global.DataDir = ".global"
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	if err := os.WriteFile(ProjectPath(), []byte("log_level: debug\ntransition_delay: 0s\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want project value debug", cfg.LogLevel)
	}
	if cfg.DataDir != ".global" {
		t.Errorf("DataDir = %v, want global value .global", cfg.DataDir)
	}
	if cfg.TransitionDelay != 0 {
		t.Errorf("TransitionDelay = %v, want 0", cfg.TransitionDelay)
	}
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	isolate(t)

	if err := WriteProject(Default()); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}
	t.Setenv("JOIN_NATS_URL", "nats://broker:4222")
	t.Setenv("JOIN_TRANSITION_DELAY", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.NatsURL != "nats://broker:4222" {
		t.Errorf("NatsURL = %v, want env value", cfg.NatsURL)
	}
	if cfg.TransitionDelay != time.Second {
		t.Errorf("TransitionDelay = %v, want 1s", cfg.TransitionDelay)
	}
}

func TestLoad_NegativeDelay(t *testing.T) {
	isolate(t)
	t.Setenv("JOIN_TRANSITION_DELAY", "-5ms")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a negative transition delay")
	}
}
