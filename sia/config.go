package sia

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// VariabilityConfig controls which quantities get randomized and how much.
// All toggles are independent; a zero band disables the corresponding axis.
type VariabilityConfig struct {
	OccupancyVerticalBand float64 `yaml:"occupancy_vertical_band"`
	OccupancyHorizontal   bool    `yaml:"occupancy_horizontal"`
	NighttimeBandHours    int     `yaml:"nighttime_band_hours"`
	MonthlyBand           float64 `yaml:"monthly_band"`
	AreaPerPerson         bool    `yaml:"area_per_person"`

	ApplianceVerticalBand float64 `yaml:"appliance_vertical_band"`
	ApplianceHorizontal   bool    `yaml:"appliance_horizontal"`
	ApplianceLevel        bool    `yaml:"appliance_level"`

	LightingDensity     bool    `yaml:"lighting_density"`
	LightingSetpointPrc float64 `yaml:"lighting_setpoint_prc"`

	DHWVolume bool `yaml:"dhw_volume"`

	ThermostatStdDev float64 `yaml:"thermostat_stddev"`

	VentilationRate  bool `yaml:"ventilation_rate"`
	InfiltrationRate bool `yaml:"infiltration_rate"`
}

// ProfileConfig anchors the synthesized year and holds fixed profile
// constants.
type ProfileConfig struct {
	StartWeekday        int     `yaml:"start_weekday"` // 0 = Monday
	ApplianceMinAllowed float64 `yaml:"appliance_min_allowed"`
	NightStartHour      int     `yaml:"night_start_hour"`
	NightEndHour        int     `yaml:"night_end_hour"`
}

// ThermostatConfig holds the setback overlays in Kelvin. Setbacks are
// subtracted; a cooling setback that should raise the setpoint is
// configured negative.
type ThermostatConfig struct {
	HeatingUnoccupiedSetback float64 `yaml:"heating_unoccupied_setback"`
	HeatingNightSetback      float64 `yaml:"heating_night_setback"`
	CoolingUnoccupiedSetback float64 `yaml:"cooling_unoccupied_setback"`
	CoolingNightSetback      float64 `yaml:"cooling_night_setback"`
}

// DHWConfig holds the water-side constants for the thermodynamic power
// derivation.
type DHWConfig struct {
	HotWaterTempC       float64 `yaml:"hot_water_temp"`
	ColdWaterTempC      float64 `yaml:"cold_water_temp"`
	WaterDensityKgPerL  float64 `yaml:"water_density"`
	SpecificHeatJPerKgK float64 `yaml:"specific_heat"`
}

// LimitsConfig bounds the number of variable parameter sets generated per
// building type.
type LimitsConfig struct {
	MaxVariableSetsResidential    int `yaml:"max_variable_sets_residential"`
	MaxVariableSetsNonResidential int `yaml:"max_variable_sets_non_residential"`
}

// EngineConfig is the full configuration surface of the generation engine.
type EngineConfig struct {
	Seed        int64             `yaml:"seed"`
	Variability VariabilityConfig `yaml:"variability"`
	Profile     ProfileConfig     `yaml:"profile"`
	Thermostat  ThermostatConfig  `yaml:"thermostat"`
	DHW         DHWConfig         `yaml:"dhw"`
	Limits      LimitsConfig      `yaml:"limits"`
}

// DefaultEngineConfig returns the engine defaults used when no config file
// overrides them.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Seed: 42,
		Variability: VariabilityConfig{
			OccupancyVerticalBand: 0.1,
			OccupancyHorizontal:   true,
			NighttimeBandHours:    1,
			MonthlyBand:           0.1,
			AreaPerPerson:         true,
			ApplianceVerticalBand: 0.1,
			ApplianceHorizontal:   true,
			ApplianceLevel:        true,
			LightingDensity:       true,
			LightingSetpointPrc:   0.1,
			DHWVolume:             true,
			ThermostatStdDev:      0.5,
			VentilationRate:       true,
			InfiltrationRate:      true,
		},
		Profile: ProfileConfig{
			StartWeekday:        0,
			ApplianceMinAllowed: 0.05,
			NightStartHour:      22,
			NightEndHour:        6,
		},
		Thermostat: ThermostatConfig{
			HeatingUnoccupiedSetback: 2,
			HeatingNightSetback:      2,
			CoolingUnoccupiedSetback: -2,
			CoolingNightSetback:      -2,
		},
		DHW: DHWConfig{
			HotWaterTempC:       60,
			ColdWaterTempC:      10,
			WaterDensityKgPerL:  1.0,
			SpecificHeatJPerKgK: 4186,
		},
		Limits: LimitsConfig{
			MaxVariableSetsResidential:    20,
			MaxVariableSetsNonResidential: 10,
		},
	}
}

// LoadEngineConfig reads a YAML config file over the defaults.
func LoadEngineConfig(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading engine config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing engine config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("engine config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate bounds-checks the configuration.
func (c EngineConfig) Validate() error {
	v := c.Variability
	for name, band := range map[string]float64{
		"occupancy_vertical_band": v.OccupancyVerticalBand,
		"monthly_band":            v.MonthlyBand,
		"appliance_vertical_band": v.ApplianceVerticalBand,
		"lighting_setpoint_prc":   v.LightingSetpointPrc,
	} {
		if band < 0 || band > 1 {
			return fmt.Errorf("%s = %g outside [0, 1]", name, band)
		}
	}
	if v.NighttimeBandHours < 0 || v.NighttimeBandHours > HoursPerDay/2 {
		return fmt.Errorf("nighttime_band_hours = %d outside [0, %d]", v.NighttimeBandHours, HoursPerDay/2)
	}
	if v.ThermostatStdDev < 0 {
		return fmt.Errorf("thermostat_stddev = %g must be >= 0", v.ThermostatStdDev)
	}
	p := c.Profile
	if p.StartWeekday < 0 || p.StartWeekday >= DaysPerWeek {
		return fmt.Errorf("start_weekday = %d outside [0, %d)", p.StartWeekday, DaysPerWeek)
	}
	if p.ApplianceMinAllowed < 0 || p.ApplianceMinAllowed > 1 {
		return fmt.Errorf("appliance_min_allowed = %g outside [0, 1]", p.ApplianceMinAllowed)
	}
	if p.NightStartHour < 0 || p.NightStartHour >= HoursPerDay || p.NightEndHour < 0 || p.NightEndHour >= HoursPerDay {
		return fmt.Errorf("night window [%d, %d) outside the 24-hour day", p.NightStartHour, p.NightEndHour)
	}
	if c.DHW.HotWaterTempC <= c.DHW.ColdWaterTempC {
		return fmt.Errorf("hot water temperature %g must exceed cold water temperature %g", c.DHW.HotWaterTempC, c.DHW.ColdWaterTempC)
	}
	if c.Limits.MaxVariableSetsResidential < 1 || c.Limits.MaxVariableSetsNonResidential < 1 {
		return fmt.Errorf("max variable set counts must be >= 1")
	}
	return nil
}
