package sia

import (
	"fmt"
	"math/rand"
)

// maxSetpointAttempts bounds the rejection resampling that keeps a sampled
// cooling setpoint above the sampled heating setpoint.
const maxSetpointAttempts = 100

type setpointPair struct {
	heating float64
	cooling float64
}

// ThermostatGenerator produces the heating and cooling setpoint value
// profiles per room type. Setpoints are scalars computed once per room,
// either nominal or sampled from a normal distribution around the nominals;
// the profile shape carries no randomness of its own beyond what the
// occupancy and nighttime inputs contribute.
type ThermostatGenerator struct {
	data      BaseData
	cfg       ThermostatConfig
	bt        *BuildingType
	night     *NighttimeGenerator
	occupancy *OccupancyGenerator
	rng       *rand.Rand

	stddev    float64
	setpoints *ValueCache[RoomType, setpointPair]
}

// NewThermostatGenerator wires a thermostat generator for one building type.
func NewThermostatGenerator(data BaseData, cfg ThermostatConfig, bt *BuildingType, night *NighttimeGenerator, occupancy *OccupancyGenerator, rng *rand.Rand) *ThermostatGenerator {
	g := &ThermostatGenerator{
		data:      data,
		cfg:       cfg,
		bt:        bt,
		night:     night,
		occupancy: occupancy,
		rng:       rng,
	}
	g.setpoints = NewValueCache(bt.RoomTypes(), g.generateSetpoints)
	return g
}

// ActivateSetpointVariability switches setpoint computation to rejection-
// sampled normal draws with the given standard deviation. Last activation
// wins: the setpoint cache is rebuilt and earlier draws are discarded.
func (g *ThermostatGenerator) ActivateSetpointVariability(stddev float64) {
	g.stddev = stddev
	g.setpoints = NewValueCache(g.bt.RoomTypes(), g.generateSetpoints)
}

func (g *ThermostatGenerator) generateSetpoints(rt RoomType) (setpointPair, error) {
	heatingNominal, err := g.data.HeatingSetpoint(rt)
	if err != nil {
		return setpointPair{}, err
	}
	coolingNominal, err := g.data.CoolingSetpoint(rt)
	if err != nil {
		return setpointPair{}, err
	}
	if g.stddev == 0 {
		return setpointPair{heating: heatingNominal, cooling: coolingNominal}, nil
	}
	for attempt := 0; attempt < maxSetpointAttempts; attempt++ {
		h := RandomNormal(g.rng, heatingNominal, g.stddev)
		c := RandomNormal(g.rng, coolingNominal, g.stddev)
		if c > h {
			return setpointPair{heating: h, cooling: c}, nil
		}
	}
	return setpointPair{}, fmt.Errorf(
		"room %s: no cooling setpoint above heating setpoint within %d draws (heating nominal %g, cooling nominal %g, stddev %g); variability band too large for the setpoint gap",
		rt, maxSetpointAttempts, heatingNominal, coolingNominal, g.stddev)
}

// Setpoints returns the (possibly sampled) heating and cooling setpoints of
// one room type. The pair is memoized: the cooling setpoint embedded in a
// profile is the same value returned here.
func (g *ThermostatGenerator) Setpoints(rt RoomType) (heating, cooling float64, err error) {
	pair, err := g.setpoints.Lookup(rt)
	if err != nil {
		return 0, 0, err
	}
	return pair.heating, pair.cooling, nil
}

// HeatingProfile returns the room's heating setpoint profile with the
// unoccupied and nighttime setbacks subtracted consecutively (both apply
// when both conditions hold).
func (g *ThermostatGenerator) HeatingProfile(rt RoomType) ([]float64, error) {
	heating, _, err := g.Setpoints(rt)
	if err != nil {
		return nil, err
	}
	return g.setbackProfile(rt, heating, g.cfg.HeatingUnoccupiedSetback, g.cfg.HeatingNightSetback)
}

// CoolingProfile returns the room's cooling setpoint profile with the
// cooling setbacks subtracted (configure them negative to raise the
// setpoint when unoccupied).
func (g *ThermostatGenerator) CoolingProfile(rt RoomType) ([]float64, error) {
	_, cooling, err := g.Setpoints(rt)
	if err != nil {
		return nil, err
	}
	return g.setbackProfile(rt, cooling, g.cfg.CoolingUnoccupiedSetback, g.cfg.CoolingNightSetback)
}

func (g *ThermostatGenerator) setbackProfile(rt RoomType, setpoint, unoccupiedSetback, nightSetback float64) ([]float64, error) {
	occ, err := g.occupancy.Profile(rt)
	if err != nil {
		return nil, err
	}
	night := g.night.Pattern()
	out := make([]float64, HoursPerYear)
	for h := range out {
		v := setpoint
		if h < len(occ) && occ[h] == 0 {
			v -= unoccupiedSetback
		}
		if night[h] {
			v -= nightSetback
		}
		out[h] = v
	}
	return out, nil
}

// BuildingHeatingProfile synthesizes the area-weighted heating setpoint
// profile of the building.
func (g *ThermostatGenerator) BuildingHeatingProfile() ([]float64, error) {
	return g.bt.SynthesizeProfilesByRoomArea(g.HeatingProfile, nil)
}

// BuildingCoolingProfile synthesizes the area-weighted cooling setpoint
// profile of the building.
func (g *ThermostatGenerator) BuildingCoolingProfile() ([]float64, error) {
	return g.bt.SynthesizeProfilesByRoomArea(g.CoolingProfile, nil)
}
