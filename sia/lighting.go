package sia

import (
	"math"
	"math/rand"
)

// LightingGenerator produces the lighting fraction profile, the lighting
// power density (W/m2) and the illuminance setpoint (lux) per room type,
// plus their building-level synthesis. A room's profile either follows the
// occupancy profile directly or follows the monthly variation gated by
// occupancy; rooms flagged light-off-during-night get the off value
// hard-overridden during nighttime hours.
type LightingGenerator struct {
	data      BaseData
	bt        *BuildingType
	monthly   *MonthlyVariationGenerator
	night     *NighttimeGenerator
	occupancy *OccupancyGenerator
	rng       *rand.Rand

	profileCache     map[RoomType][]float64
	variableDensity  *ValueCache[RoomType, float64]
	variableSetpoint *ValueCache[RoomType, float64]
}

// NewLightingGenerator wires a lighting generator for one building type.
func NewLightingGenerator(data BaseData, bt *BuildingType, monthly *MonthlyVariationGenerator, night *NighttimeGenerator, occupancy *OccupancyGenerator, rng *rand.Rand) *LightingGenerator {
	return &LightingGenerator{
		data:         data,
		bt:           bt,
		monthly:      monthly,
		night:        night,
		occupancy:    occupancy,
		rng:          rng,
		profileCache: make(map[RoomType][]float64),
	}
}

// ActivateDensityVariability switches Density to memoized triangular draws.
func (g *LightingGenerator) ActivateDensityVariability() {
	g.variableDensity = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := g.data.LightingDensity(rt)
		if err != nil {
			return 0, err
		}
		v, err := sampleTriple(g.rng, triple)
		if err != nil {
			return 0, err
		}
		return math.Max(0, v), nil
	})
}

// ActivateSetpointVariability switches Setpoint to memoized normal draws
// centered on the nominal value with sigma = nominal * prc.
func (g *LightingGenerator) ActivateSetpointVariability(prc float64) {
	g.variableSetpoint = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		nominal, err := g.data.LightingSetpoint(rt)
		if err != nil {
			return 0, err
		}
		return math.Max(0, RandomNormal(g.rng, nominal, nominal*prc)), nil
	})
}

// Profile returns the lighting fraction profile of one room type. The
// result is cached; variability is inherited entirely from the occupancy,
// monthly-variation and nighttime inputs.
func (g *LightingGenerator) Profile(rt RoomType) ([]float64, error) {
	if p, ok := g.profileCache[rt]; ok {
		return p, nil
	}
	p, err := g.generate(rt)
	if err != nil {
		return nil, err
	}
	g.profileCache[rt] = p
	return p, nil
}

func (g *LightingGenerator) generate(rt RoomType) ([]float64, error) {
	occ, err := g.occupancy.Profile(rt)
	if err != nil {
		return nil, err
	}
	following, err := g.data.IsLightingFollowingOccupancy(rt)
	if err != nil {
		return nil, err
	}
	offValue, err := g.data.LightingOffValue(rt)
	if err != nil {
		return nil, err
	}

	profile := make([]float64, HoursPerYear)
	if following {
		copy(profile, occ)
	} else {
		monthly, err := g.monthly.MonthlyVariation(rt)
		if err != nil {
			return nil, err
		}
		for h := range profile {
			if occ[h] > 0 {
				profile[h] = monthly[MonthOfHour(h)]
			} else {
				profile[h] = offValue
			}
		}
	}

	offAtNight, err := g.data.IsLightOffDuringNight(rt)
	if err != nil {
		return nil, err
	}
	if offAtNight {
		for h, isNight := range g.night.Pattern() {
			if isNight {
				profile[h] = offValue
			}
		}
	}
	return profile, nil
}

// Density returns the lighting power density of one room type (W/m2).
func (g *LightingGenerator) Density(rt RoomType) (float64, error) {
	if g.variableDensity != nil {
		return g.variableDensity.Lookup(rt)
	}
	triple, err := g.data.LightingDensity(rt)
	if err != nil {
		return 0, err
	}
	return triple.Std, nil
}

// Setpoint returns the illuminance setpoint of one room type (lux).
func (g *LightingGenerator) Setpoint(rt RoomType) (float64, error) {
	if g.variableSetpoint != nil {
		return g.variableSetpoint.Lookup(rt)
	}
	return g.data.LightingSetpoint(rt)
}

// BuildingDensity returns the area-weighted lighting power density.
func (g *LightingGenerator) BuildingDensity() (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(g.Density)
}

// BuildingSetpoint returns the area-weighted illuminance setpoint.
func (g *LightingGenerator) BuildingSetpoint() (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(g.Setpoint)
}

// BuildingProfile synthesizes the building-level lighting profile weighted
// by each room's share of the building's lighting power.
func (g *LightingGenerator) BuildingProfile() ([]float64, error) {
	bldgDensity, err := g.BuildingDensity()
	if err != nil {
		return nil, err
	}
	return g.bt.SynthesizeProfilesByRoomArea(g.Profile, levelShareFactor(bldgDensity, g.Density))
}
