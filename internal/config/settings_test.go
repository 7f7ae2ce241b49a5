package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test in an empty working directory so no stray .env is read.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestGetEnv(t *testing.T) {
	t.Setenv("GHOSTBOW_TEST_KEY", "set")
	if got := GetEnv("GHOSTBOW_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("GHOSTBOW_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv = %q, want fallback", got)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	if got := ConfigPath(); got != DefaultConfigFile {
		t.Fatalf("ConfigPath = %q, want %q", got, DefaultConfigFile)
	}
	t.Setenv(ConfigFileEnv, "/etc/ghostbow.toml")
	if got := ConfigPath(); got != "/etc/ghostbow.toml" {
		t.Fatalf("ConfigPath = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("Load = %+v, want defaults", s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := inTempDir(t)

	if _, err := Load(filepath.Join(dir, "nope.toml")); err != nil {
		t.Fatalf("Load with missing file: %v", err)
	}
}

func TestLoadLayers(t *testing.T) {
	dir := inTempDir(t)

	file := filepath.Join(dir, "ghostbow.toml")
	writeFile(t, file, "ssh_port = \"2300\"\nseed = 7\nmax_scale = 1.5\nlog_level = \"debug\"\n")
	writeFile(t, filepath.Join(dir, DotEnvFile), "SSH_PORT=2400\nWEB_PORT=9000\n")
	t.Setenv("WEB_PORT", "9100")
	// godotenv writes straight into the process environment.
	t.Cleanup(func() { os.Unsetenv("SSH_PORT") })

	s, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.SSHPort != "2400" {
		t.Fatalf("SSHPort = %q, want .env to override the file", s.SSHPort)
	}
	if s.WebPort != "9100" {
		t.Fatalf("WebPort = %q, want the environment to win over .env", s.WebPort)
	}
	if s.Seed != 7 || s.MaxScale != 1.5 || s.LogLevel != "debug" {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.SSHHost != Defaults().SSHHost {
		t.Fatalf("SSHHost = %q, want default", s.SSHHost)
	}
}

func TestLoadBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"seed", "GHOSTBOW_SEED", "abc"},
		{"scale", "GHOSTBOW_MAX_SCALE", "big"},
		{"width", "GHOSTBOW_WINDOW_WIDTH", "1.5"},
		{"level", "GHOSTBOW_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Fatalf("Load accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	s := Defaults()
	s.MaxScale = 0.5
	if err := s.validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("validate = %v, want ErrInvalid", err)
	}
}

func TestClampScale(t *testing.T) {
	s := Defaults()
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1, 1},
		{1.25, 1.25},
		{3, 2},
	}
	for _, tt := range tests {
		if got := s.ClampScale(tt.in); got != tt.want {
			t.Fatalf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := Defaults()
	s.LogLevel = "warn"
	logger := s.Logger(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("logger output = %q", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
