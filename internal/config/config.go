package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/username/work-journal/internal/schedule"
)

// Config represents application configuration
type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	State    StateConfig    `mapstructure:"state"`
	Log      LogConfig      `mapstructure:"log"`
}

// ScheduleConfig represents the work-schedule settings
type ScheduleConfig struct {
	Mode         string   `mapstructure:"mode"`
	FixedDays    []int    `mapstructure:"fixed_days"` // 0=Sunday .. 6=Saturday
	HolidayMode  string   `mapstructure:"holiday_mode"`
	DarkMode     bool     `mapstructure:"dark_mode"` // presentation only
	Holidays     []string `mapstructure:"holidays"`
	HolidaysFile string   `mapstructure:"holidays_file"`
}

// StateConfig represents journal storage configuration
type StateConfig struct {
	JournalFile string `mapstructure:"journal_file"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultDir returns the default data directory (~/.work-journal)
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".work-journal"), nil
}

// DefaultPath returns the default config file path
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}

	// Defaults: loaded config values override these field by field, missing
	// keys fall back to them.
	v.SetDefault("schedule.mode", schedule.ModeFlexible)
	v.SetDefault("schedule.fixed_days", []int{1, 2, 3, 4, 5})
	v.SetDefault("schedule.holiday_mode", schedule.HolidaySkip)
	v.SetDefault("schedule.dark_mode", false)
	v.SetDefault("schedule.holidays", []string{"2024-01-01", "2024-07-04", "2024-12-25"})
	v.SetDefault("schedule.holidays_file", "")
	v.SetDefault("state.journal_file", filepath.Join(dir, "journal.json"))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	// A missing config file is fine: everything has a default
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// Load loads configuration, merging the config file over documented defaults
func Load(configPath string) (*Config, error) {
	v, err := newViper(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.normalize()

	return &config, nil
}

// Save writes a single settings key and persists the whole config file
func Save(configPath, key string, value interface{}) error {
	v, err := newViper(configPath)
	if err != nil {
		return err
	}

	v.Set(key, value)

	// Validate the resulting settings before touching the file
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Schedule.Mode {
	case schedule.ModeFlexible, schedule.ModeFiveFixed, schedule.ModeThreeFixed,
		schedule.ModeFourFixed, schedule.ModeTwoTwoThree:
	default:
		return fmt.Errorf("schedule.mode must be one of flexible, five_fixed, three_fixed, four_fixed, two23, got %q", c.Schedule.Mode)
	}

	switch c.Schedule.HolidayMode {
	case schedule.HolidaySkip, schedule.HolidayIgnore:
	default:
		return fmt.Errorf("schedule.holiday_mode must be 'skip' or 'ignore', got %q", c.Schedule.HolidayMode)
	}

	for _, d := range c.Schedule.FixedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("schedule.fixed_days entries must be 0-6, got %d", d)
		}
	}

	if c.State.JournalFile == "" {
		return fmt.Errorf("state.journal_file is required")
	}

	return nil
}

// normalize applies settings rules that depend on other fields
func (c *Config) normalize() {
	// Fixed days are user-chosen only in the three/four_fixed modes;
	// five_fixed always means Monday-Friday.
	if c.Schedule.Mode == schedule.ModeFiveFixed {
		c.Schedule.FixedDays = []int{1, 2, 3, 4, 5}
	}
}
