package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/username/work-journal/internal/schedule"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Empty file: every field comes from defaults
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Schedule.Mode != schedule.ModeFlexible {
		t.Errorf("default mode = %q, want flexible", cfg.Schedule.Mode)
	}
	if len(cfg.Schedule.FixedDays) != 5 || cfg.Schedule.FixedDays[0] != 1 {
		t.Errorf("default fixed_days = %v, want [1 2 3 4 5]", cfg.Schedule.FixedDays)
	}
	if cfg.Schedule.HolidayMode != schedule.HolidaySkip {
		t.Errorf("default holiday_mode = %q, want skip", cfg.Schedule.HolidayMode)
	}
	if cfg.Schedule.DarkMode {
		t.Errorf("default dark_mode = true, want false")
	}
	if len(cfg.Schedule.Holidays) != 3 {
		t.Errorf("default holidays = %v, want 3 entries", cfg.Schedule.Holidays)
	}
	if cfg.State.JournalFile == "" {
		t.Errorf("default journal_file is empty")
	}
}

func TestLoadMergesFieldByField(t *testing.T) {
	// Partial config: present keys override, missing keys keep defaults
	path := writeConfig(t, `
schedule:
  mode: two23
  dark_mode: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Schedule.Mode != schedule.ModeTwoTwoThree {
		t.Errorf("mode = %q, want two23", cfg.Schedule.Mode)
	}
	if !cfg.Schedule.DarkMode {
		t.Errorf("dark_mode = false, want true")
	}
	if cfg.Schedule.HolidayMode != schedule.HolidaySkip {
		t.Errorf("holiday_mode = %q, want default skip", cfg.Schedule.HolidayMode)
	}
	if len(cfg.Schedule.FixedDays) != 5 {
		t.Errorf("fixed_days = %v, want default [1 2 3 4 5]", cfg.Schedule.FixedDays)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"unknown mode",
			"schedule:\n  mode: weekends_only\n",
		},
		{
			"unknown holiday mode",
			"schedule:\n  holiday_mode: maybe\n",
		},
		{
			"fixed day out of range",
			"schedule:\n  mode: three_fixed\n  fixed_days: [1, 9]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load accepted invalid config:\n%s", tt.content)
			}
		})
	}
}

func TestLoadForcesWeekdaysUnderFiveFixed(t *testing.T) {
	path := writeConfig(t, `
schedule:
  mode: five_fixed
  fixed_days: [0, 6]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []int{1, 2, 3, 4, 5}
	if len(cfg.Schedule.FixedDays) != len(want) {
		t.Fatalf("fixed_days = %v, want %v", cfg.Schedule.FixedDays, want)
	}
	for i, d := range want {
		if cfg.Schedule.FixedDays[i] != d {
			t.Errorf("fixed_days[%d] = %d, want %d", i, cfg.Schedule.FixedDays[i], d)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Save(path, "schedule.mode", "five_fixed"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if cfg.Schedule.Mode != schedule.ModeFiveFixed {
		t.Errorf("mode after Save = %q, want five_fixed", cfg.Schedule.Mode)
	}
	// Untouched keys still follow defaults
	if cfg.Schedule.HolidayMode != schedule.HolidaySkip {
		t.Errorf("holiday_mode after Save = %q, want skip", cfg.Schedule.HolidayMode)
	}
}

func TestSaveRejectsInvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Save(path, "schedule.mode", "not_a_mode"); err == nil {
		t.Errorf("Save accepted invalid schedule.mode")
	}
}
