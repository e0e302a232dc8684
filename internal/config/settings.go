package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.filmroom/settings.json
type Settings struct {
	Debug               *bool  `json:"debug,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	Blueprint           string `json:"blueprint,omitempty"`
	PeriodLengthMinutes *int   `json:"period_length_minutes,omitempty"`
	PeriodCount         *int   `json:"period_count,omitempty"`
	// SingleOpenMoment switches the engine to the at-most-one-open-
	// moment-per-game policy. Default is one open moment per category.
	SingleOpenMoment *bool `json:"single_open_moment,omitempty"`
}

// Default period structure: four 12-minute quarters.
const (
	DefaultPeriodLengthMinutes = 12
	DefaultPeriodCount         = 4
)

// PeriodLength returns the configured period length in minutes.
func (s *Settings) PeriodLength() int {
	if s.PeriodLengthMinutes != nil && *s.PeriodLengthMinutes > 0 {
		return *s.PeriodLengthMinutes
	}
	return DefaultPeriodLengthMinutes
}

// Periods returns the configured number of periods.
func (s *Settings) Periods() int {
	if s.PeriodCount != nil && *s.PeriodCount > 0 {
		return *s.PeriodCount
	}
	return DefaultPeriodCount
}

// SingleOpen reports whether the single-open-moment policy is enabled.
func (s *Settings) SingleOpen() bool {
	return s.SingleOpenMoment != nil && *s.SingleOpenMoment
}

// Home returns the filmroom home directory: $FILMROOM_HOME or ~/.filmroom.
func Home() string {
	if home := os.Getenv("FILMROOM_HOME"); home != "" {
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".filmroom"
	}
	return filepath.Join(homeDir, ".filmroom")
}

// GetDBPath returns the path to the SQLite database file.
func GetDBPath() string {
	return filepath.Join(Home(), "state.db")
}

// GetSettingsPath returns the path to the settings file.
func GetSettingsPath() string {
	return filepath.Join(Home(), "settings.json")
}

// LoadSettings loads settings from $FILMROOM_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FILMROOM_HOME/settings.json.
func SaveSettings(settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(Home(), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
