// Package config holds the process-wide, read-only settings. Values come
// from an optional YAML file overridden by environment variables; anything
// missing or malformed falls back to a sensible default.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity   = 50
	DefaultVolunteers = 6
	DefaultAddr       = ":8090"
	DefaultDataDir    = "data"
	DefaultBaseURL    = "http://localhost:8090"
)

type Config struct {
	// Remote persistence is enabled only when both values are present.
	DatabaseURL string `yaml:"databaseUrl"`
	ServiceKey  string `yaml:"serviceKey"`

	EnableSMS  bool `yaml:"enableSms"`
	Capacity   int  `yaml:"capacity"`
	Volunteers int  `yaml:"volunteers"`

	AdminPasscode string `yaml:"adminPasscode"`
	JWTSecret     string `yaml:"jwtSecret"`

	DataDir string `yaml:"dataDir"`
	Addr    string `yaml:"addr"`

	// BaseURL is the public origin used to compose the pickup deep link
	// that the QR code encodes.
	BaseURL string `yaml:"baseUrl"`
}

// RemoteEnabled reports whether the hosted database should be used. Both
// credentials must be present; one alone keeps the service local-only.
func (c Config) RemoteEnabled() bool {
	return c.DatabaseURL != "" && c.ServiceKey != ""
}

// Load reads the optional YAML file (CHECKIN_CONFIG, default checkin.yaml)
// and then applies environment overrides.
func Load() Config {
	cfg := Config{
		Capacity:   DefaultCapacity,
		Volunteers: DefaultVolunteers,
		Addr:       DefaultAddr,
		DataDir:    DefaultDataDir,
		BaseURL:    DefaultBaseURL,
	}

	path := os.Getenv("CHECKIN_CONFIG")
	if path == "" {
		path = "checkin.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		// a broken config file is ignored, same as an absent one
		_ = yaml.Unmarshal(data, &cfg)
	}

	applyString(&cfg.DatabaseURL, "CHECKIN_DATABASE_URL")
	applyString(&cfg.ServiceKey, "CHECKIN_SERVICE_KEY")
	applyString(&cfg.AdminPasscode, "CHECKIN_ADMIN_PASSCODE")
	applyString(&cfg.JWTSecret, "CHECKIN_JWT_SECRET")
	applyString(&cfg.DataDir, "CHECKIN_DATA_DIR")
	applyString(&cfg.Addr, "CHECKIN_ADDR")
	applyString(&cfg.BaseURL, "CHECKIN_BASE_URL")

	if v, ok := os.LookupEnv("CHECKIN_ENABLE_SMS"); ok {
		cfg.EnableSMS = strings.EqualFold(strings.TrimSpace(v), "true")
	}
	applyPositiveInt(&cfg.Capacity, "CHECKIN_CAPACITY", DefaultCapacity)
	applyNonNegativeInt(&cfg.Volunteers, "CHECKIN_VOLUNTEERS", DefaultVolunteers)

	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Volunteers < 0 {
		cfg.Volunteers = DefaultVolunteers
	}
	return cfg
}

func applyString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyPositiveInt(dst *int, key string, fallback int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			*dst = n
		} else {
			*dst = fallback
		}
	}
}

func applyNonNegativeInt(dst *int, key string, fallback int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			*dst = n
		} else {
			*dst = fallback
		}
	}
}
