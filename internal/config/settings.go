package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Settings file location, overridable through GHOSTBOW_CONFIG.
const (
	ConfigFileEnv     = "GHOSTBOW_CONFIG"
	DefaultConfigFile = "ghostbow.toml"
)

// ConfigPath returns the settings file the binaries load.
func ConfigPath() string {
	return GetEnv(ConfigFileEnv, DefaultConfigFile)
}

// Settings holds the runtime configuration shared by the binaries.
type Settings struct {
	SSHHost     string `toml:"ssh_host"`
	SSHPort     string `toml:"ssh_port"`
	SSHHostKey  string `toml:"ssh_host_key"`
	WebHost     string `toml:"web_host"`
	WebPort     string `toml:"web_port"`
	DisplayHost string `toml:"display_host"` // Host shown in the landing page ssh command

	LogLevel string `toml:"log_level"`
	Seed     int64  `toml:"seed"` // 0 seeds from the clock

	MaxScale       float64 `toml:"max_scale"`        // Cap on the device pixel ratio
	UnitsPerColumn float64 `toml:"units_per_column"` // World units per terminal column
	WindowWidth    int     `toml:"window_width"`
	WindowHeight   int     `toml:"window_height"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		SSHHost:        "::",
		SSHPort:        "2222",
		SSHHostKey:     "/app/keys/host_key",
		WebHost:        "0.0.0.0",
		WebPort:        "8080",
		DisplayHost:    "your-server.com",
		LogLevel:       "info",
		MaxScale:       2,
		UnitsPerColumn: 8,
		WindowWidth:    960,
		WindowHeight:   720,
	}
}

// Load builds settings from the defaults, the TOML file at path (skipped when
// path is empty or missing), the .env file and finally the environment.
// Variables set in the environment win over those in .env.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("reading settings %s: %w", path, err)
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("reading %s: %w", DotEnvFile, err)
	}

	if err := s.applyEnv(); err != nil {
		return s, err
	}
	return s, s.validate()
}

func (s *Settings) applyEnv() error {
	s.SSHHost = GetEnv("SSH_HOST", s.SSHHost)
	s.SSHPort = GetEnv("SSH_PORT", s.SSHPort)
	s.SSHHostKey = GetEnv("SSH_HOST_KEY", s.SSHHostKey)
	s.WebHost = GetEnv("WEB_HOST", s.WebHost)
	s.WebPort = GetEnv("WEB_PORT", s.WebPort)
	s.DisplayHost = GetEnv("SSH_DISPLAY_HOST", s.DisplayHost)
	s.LogLevel = GetEnv("GHOSTBOW_LOG_LEVEL", s.LogLevel)

	var err error
	if v := GetEnv("GHOSTBOW_SEED", ""); v != "" {
		if s.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("GHOSTBOW_SEED: %w", err)
		}
	}
	if v := GetEnv("GHOSTBOW_MAX_SCALE", ""); v != "" {
		if s.MaxScale, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("GHOSTBOW_MAX_SCALE: %w", err)
		}
	}
	if v := GetEnv("GHOSTBOW_UNITS_PER_COLUMN", ""); v != "" {
		if s.UnitsPerColumn, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("GHOSTBOW_UNITS_PER_COLUMN: %w", err)
		}
	}
	if v := GetEnv("GHOSTBOW_WINDOW_WIDTH", ""); v != "" {
		if s.WindowWidth, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("GHOSTBOW_WINDOW_WIDTH: %w", err)
		}
	}
	if v := GetEnv("GHOSTBOW_WINDOW_HEIGHT", ""); v != "" {
		if s.WindowHeight, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("GHOSTBOW_WINDOW_HEIGHT: %w", err)
		}
	}
	return nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

func (s Settings) validate() error {
	if s.MaxScale < 1 {
		return fmt.Errorf("%w: max_scale %v is below 1", ErrInvalid, s.MaxScale)
	}
	if s.UnitsPerColumn <= 0 {
		return fmt.Errorf("%w: units_per_column must be positive", ErrInvalid)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.WindowWidth, s.WindowHeight)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// ClampScale limits a device pixel ratio to [1, MaxScale].
func (s Settings) ClampScale(scale float64) float64 {
	if scale < 1 {
		return 1
	}
	if scale > s.MaxScale {
		return s.MaxScale
	}
	return scale
}

// Logger returns a logger writing to w at the configured level.
func (s Settings) Logger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}
