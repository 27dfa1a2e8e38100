package sia

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ParametersFactory composes all per-domain generators for a building type
// and emits complete Parameters records. Every Generate call constructs a
// fresh set of generators with its own partitioned RNG, so two draws for
// the same building type are statistically independent while all values
// within one draw stay mutually consistent.
type ParametersFactory struct {
	data BaseData
	cfg  EngineConfig
	seed int64

	drawCounter int
}

// NewParametersFactory binds a factory to a base-data source, engine
// configuration and master seed.
func NewParametersFactory(data BaseData, cfg EngineConfig, seed int64) *ParametersFactory {
	return &ParametersFactory{data: data, cfg: cfg, seed: seed}
}

// Generate builds one complete parameter set for the named building type.
// With variable set, every quantity whose variability is enabled in the
// configuration is randomized; otherwise the nominal SIA values are used
// throughout. Any missing base-data lookup aborts the whole generation with
// no partial result.
func (f *ParametersFactory) Generate(bldgTypeName string, variable bool, name string) (*Parameters, error) {
	bt, err := f.data.BuildingTypeByName(bldgTypeName)
	if err != nil {
		return nil, err
	}
	f.drawCounter++
	draw := f.drawCounter
	prng := NewPartitionedRNG(DrawKey(f.seed, draw))
	v := f.cfg.Variability

	logrus.Debugf("generating parameter set %q for building type %s (variable=%t, draw=%d)", name, bldgTypeName, variable, draw)

	night := NewNighttimeGenerator(f.cfg.Profile, prng.ForSubsystem(SubsystemNighttime))
	if variable {
		night.ActivateVariability(v.NighttimeBandHours)
	}

	monthlyBand := 0.0
	if variable {
		monthlyBand = v.MonthlyBand
	}
	monthly := NewMonthlyVariationGenerator(f.data, bt, monthlyBand, prng.ForSubsystem(SubsystemMonthly))

	app := NewAreaPerPersonCalculator(f.data, bt, prng.ForSubsystem(SubsystemAreaPerPerson))
	if variable && v.AreaPerPerson {
		app.ActivateVariability()
	}

	occupancy := NewOccupancyGenerator(f.data, bt, f.cfg.Profile, monthly, night, prng.ForSubsystem(SubsystemOccupancy))
	if variable && (v.OccupancyVerticalBand > 0 || v.OccupancyHorizontal) {
		occupancy.ActivateProfileVariability(v.OccupancyVerticalBand, v.OccupancyHorizontal)
	}

	appliances := NewAppliancesGenerator(f.data, bt, f.cfg.Profile, monthly, prng.ForSubsystem(SubsystemAppliances))
	if variable && (v.ApplianceVerticalBand > 0 || v.ApplianceHorizontal) {
		appliances.ActivateProfileVariability(v.ApplianceVerticalBand, v.ApplianceHorizontal)
	}
	if variable && v.ApplianceLevel {
		appliances.ActivateLevelVariability()
	}

	lighting := NewLightingGenerator(f.data, bt, monthly, night, occupancy, prng.ForSubsystem(SubsystemLighting))
	if variable && v.LightingDensity {
		lighting.ActivateDensityVariability()
	}
	if variable && v.LightingSetpointPrc > 0 {
		lighting.ActivateSetpointVariability(v.LightingSetpointPrc)
	}

	dhw := NewDHWGenerator(f.data, f.cfg.DHW, bt, monthly, night, occupancy, prng.ForSubsystem(SubsystemDHW))
	if variable && v.DHWVolume {
		dhw.ActivateVolumeVariability()
	}

	thermostat := NewThermostatGenerator(f.data, f.cfg.Thermostat, bt, night, occupancy, prng.ForSubsystem(SubsystemThermostat))
	if variable && v.ThermostatStdDev > 0 {
		thermostat.ActivateSetpointVariability(v.ThermostatStdDev)
	}

	ventilation := NewVentilationGenerator(f.data, bt, occupancy, prng.ForSubsystem(SubsystemVentilation))
	if variable && v.VentilationRate {
		ventilation.ActivateRateVariability()
	}

	infiltration := NewInfiltrationGenerator(f.data, bt, prng.ForSubsystem(SubsystemInfiltration))
	if variable && v.InfiltrationRate {
		infiltration.ActivateRateVariability()
	}

	activity := NewActivityHeatGainCalculator(f.data, bt)

	p := &Parameters{
		Name:              name,
		BuildingTypeName:  bldgTypeName,
		SourceDescription: f.data.SourceDescription(),
		VariabilityActive: variable,
		DrawNumber:        draw,
	}

	if p.FloorAreaPerPerson, err = app.AreaPerPersonForBldg(); err != nil {
		return nil, fmt.Errorf("area per person: %w", err)
	}
	if p.ActivityHeatGain, err = activity.HeatGainForBldg(app); err != nil {
		return nil, fmt.Errorf("activity heat gain: %w", err)
	}
	if p.OccupancyProfile, err = occupancy.BuildingProfile(p.FloorAreaPerPerson, app.AreaPerPersonForRoom); err != nil {
		return nil, fmt.Errorf("occupancy profile: %w", err)
	}

	if p.ApplianceLevel, err = appliances.BuildingLevel(); err != nil {
		return nil, fmt.Errorf("appliance level: %w", err)
	}
	if p.ApplianceProfile, err = appliances.BuildingProfile(); err != nil {
		return nil, fmt.Errorf("appliance profile: %w", err)
	}

	if p.LightingDensity, err = lighting.BuildingDensity(); err != nil {
		return nil, fmt.Errorf("lighting density: %w", err)
	}
	if p.LightingSetpoint, err = lighting.BuildingSetpoint(); err != nil {
		return nil, fmt.Errorf("lighting setpoint: %w", err)
	}
	if p.LightingProfile, err = lighting.BuildingProfile(); err != nil {
		return nil, fmt.Errorf("lighting profile: %w", err)
	}

	if p.DHWPowerPerArea, err = dhw.BuildingPowerPerArea(app); err != nil {
		return nil, fmt.Errorf("dhw power: %w", err)
	}
	if p.DHWLitersPerDay, err = dhw.BuildingLitersPerDay(app); err != nil {
		return nil, fmt.Errorf("dhw volume: %w", err)
	}
	if p.DHWProfile, err = dhw.BuildingProfile(app); err != nil {
		return nil, fmt.Errorf("dhw profile: %w", err)
	}

	if p.HeatingSetpointProfile, err = thermostat.BuildingHeatingProfile(); err != nil {
		return nil, fmt.Errorf("heating setpoint profile: %w", err)
	}
	if p.CoolingSetpointProfile, err = thermostat.BuildingCoolingProfile(); err != nil {
		return nil, fmt.Errorf("cooling setpoint profile: %w", err)
	}

	if p.VentilationRate, err = ventilation.BuildingRate(); err != nil {
		return nil, fmt.Errorf("ventilation rate: %w", err)
	}
	if p.VentilationProfile, err = ventilation.BuildingProfile(); err != nil {
		return nil, fmt.Errorf("ventilation profile: %w", err)
	}

	if p.InfiltrationRate, err = infiltration.BuildingRate(); err != nil {
		return nil, fmt.Errorf("infiltration rate: %w", err)
	}
	p.InfiltrationProfile = infiltration.BuildingProfile()

	return p, nil
}
