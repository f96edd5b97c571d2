package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides (TD_STEP, TD_DATABASE_HOST, ...).
const EnvPrefix = "TD"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Simulation holds all configuration of the simulation binary.
type Simulation struct {
	// Content
	LevelFile   string `yaml:"level_file"`
	CatalogFile string `yaml:"catalog_file"`

	// Loop
	Step        time.Duration `yaml:"step"`         // simulated time per frame (default: 50ms)
	RealTime    bool          `yaml:"real_time"`    // pace frames with wall clock
	MaxDuration time.Duration `yaml:"max_duration"` // 0 = until the game ends

	LogLevel string `yaml:"log_level"`

	// Session storage
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LevelFile:   "data/level.yaml",
		CatalogFile: "data/catalog.yaml",
		Step:        50 * time.Millisecond,
		MaxDuration: 10 * time.Minute,
		LogLevel:    "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "towerdefence",
			Password: "towerdefence",
			DBName:   "towerdefence",
			SSLMode:  "disable",
		},
	}
}

// LoadSimulation loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overlays TD_* environment variables on cfg.
// Keys follow yaml names, nested with "_" (TD_DATABASE_HOST).
func ApplyEnv(cfg *Simulation) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"level_file", "catalog_file", "step", "real_time", "max_duration", "log_level",
		"database.enabled", "database.host", "database.port", "database.user",
		"database.password", "database.dbname", "database.sslmode",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	setString(v, "level_file", &cfg.LevelFile)
	setString(v, "catalog_file", &cfg.CatalogFile)
	setString(v, "log_level", &cfg.LogLevel)
	if v.IsSet("step") {
		cfg.Step = v.GetDuration("step")
	}
	if v.IsSet("real_time") {
		cfg.RealTime = v.GetBool("real_time")
	}
	if v.IsSet("max_duration") {
		cfg.MaxDuration = v.GetDuration("max_duration")
	}

	db := &cfg.Database
	if v.IsSet("database.enabled") {
		db.Enabled = v.GetBool("database.enabled")
	}
	if v.IsSet("database.port") {
		db.Port = v.GetInt("database.port")
	}
	setString(v, "database.host", &db.Host)
	setString(v, "database.user", &db.User)
	setString(v, "database.password", &db.Password)
	setString(v, "database.dbname", &db.DBName)
	setString(v, "database.sslmode", &db.SSLMode)
	return nil
}

func setString(v *viper.Viper, key string, dst *string) {
	if v.IsSet(key) {
		*dst = v.GetString(key)
	}
}

// Validate checks values the simulation cannot run without.
func (s Simulation) Validate() error {
	switch {
	case s.LevelFile == "":
		return fmt.Errorf("level_file is empty: %w", ErrInvalidConfig)
	case s.CatalogFile == "":
		return fmt.Errorf("catalog_file is empty: %w", ErrInvalidConfig)
	case s.Step <= 0:
		return fmt.Errorf("step %v must be positive: %w", s.Step, ErrInvalidConfig)
	case s.MaxDuration < 0:
		return fmt.Errorf("max_duration %v is negative: %w", s.MaxDuration, ErrInvalidConfig)
	}
	if _, err := s.SlogLevel(); err != nil {
		return fmt.Errorf("log_level %q: %w", s.LogLevel, ErrInvalidConfig)
	}
	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (s Simulation) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
