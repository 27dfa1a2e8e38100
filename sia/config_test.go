package sia

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineConfig_DefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultEngineConfig().Validate())
}

func TestEngineConfig_LoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	content := `
seed: 7
variability:
  occupancy_vertical_band: 0.25
  thermostat_stddev: 1.5
limits:
  max_variable_sets_residential: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadEngineConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Variability.OccupancyVerticalBand)
	assert.Equal(t, 1.5, cfg.Variability.ThermostatStdDev)
	assert.Equal(t, 5, cfg.Limits.MaxVariableSetsResidential)

	// Untouched fields keep their defaults.
	defaults := DefaultEngineConfig()
	assert.Equal(t, defaults.Profile.NightStartHour, cfg.Profile.NightStartHour)
	assert.Equal(t, defaults.DHW.HotWaterTempC, cfg.DHW.HotWaterTempC)
	assert.Equal(t, defaults.Limits.MaxVariableSetsNonResidential, cfg.Limits.MaxVariableSetsNonResidential)
}

func TestEngineConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadEngineConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEngineConfig_ValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"band above one", func(c *EngineConfig) { c.Variability.OccupancyVerticalBand = 1.5 }},
		{"negative band", func(c *EngineConfig) { c.Variability.MonthlyBand = -0.1 }},
		{"night band too wide", func(c *EngineConfig) { c.Variability.NighttimeBandHours = 13 }},
		{"negative stddev", func(c *EngineConfig) { c.Variability.ThermostatStdDev = -1 }},
		{"start weekday out of range", func(c *EngineConfig) { c.Profile.StartWeekday = 7 }},
		{"night hour out of range", func(c *EngineConfig) { c.Profile.NightStartHour = 24 }},
		{"cold water above hot", func(c *EngineConfig) { c.DHW.ColdWaterTempC = 70 }},
		{"zero set limit", func(c *EngineConfig) { c.Limits.MaxVariableSetsResidential = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEngineConfig_LoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variability:\n  monthly_band: 2\n"), 0o644))

	_, err := LoadEngineConfig(path)
	assert.Error(t, err)
}
