package sia

import (
	"math"
	"math/rand"
)

// VentilationGenerator produces the outdoor-air flow rate per floor area
// (m3/(h m2)) per room type and the ventilation fraction profile, which
// follows the room's occupancy profile.
type VentilationGenerator struct {
	data      BaseData
	bt        *BuildingType
	occupancy *OccupancyGenerator
	rng       *rand.Rand

	variableRate *ValueCache[RoomType, float64]
}

// NewVentilationGenerator wires a ventilation generator for one building type.
func NewVentilationGenerator(data BaseData, bt *BuildingType, occupancy *OccupancyGenerator, rng *rand.Rand) *VentilationGenerator {
	return &VentilationGenerator{data: data, bt: bt, occupancy: occupancy, rng: rng}
}

// ActivateRateVariability switches Rate to memoized triangular draws.
func (g *VentilationGenerator) ActivateRateVariability() {
	g.variableRate = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := g.data.VentilationRate(rt)
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

// Rate returns the ventilation rate of one room type.
func (g *VentilationGenerator) Rate(rt RoomType) (float64, error) {
	if g.variableRate != nil {
		return g.variableRate.Lookup(rt)
	}
	triple, err := g.data.VentilationRate(rt)
	if err != nil {
		return 0, err
	}
	return triple.Std, nil
}

// Profile returns the room's ventilation fraction profile (the occupancy
// profile; mechanical ventilation is demand-controlled).
func (g *VentilationGenerator) Profile(rt RoomType) ([]float64, error) {
	return g.occupancy.Profile(rt)
}

// BuildingRate returns the area-weighted ventilation rate.
func (g *VentilationGenerator) BuildingRate() (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(g.Rate)
}

// BuildingProfile synthesizes the building-level ventilation profile
// weighted by each room's share of the building's ventilation flow.
func (g *VentilationGenerator) BuildingProfile() ([]float64, error) {
	bldgRate, err := g.BuildingRate()
	if err != nil {
		return nil, err
	}
	return g.bt.SynthesizeProfilesByRoomArea(g.Profile, levelShareFactor(bldgRate, g.Rate))
}
