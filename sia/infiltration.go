package sia

import (
	"math"
	"math/rand"
)

// InfiltrationGenerator produces the envelope air-leakage rate (ACH) per
// room type and the building-level constant infiltration profile.
// Infiltration acts around the clock, so its fraction profile is all ones.
type InfiltrationGenerator struct {
	data BaseData
	bt   *BuildingType
	rng  *rand.Rand

	variableRate *ValueCache[RoomType, float64]
}

// NewInfiltrationGenerator wires an infiltration generator for one building
// type.
func NewInfiltrationGenerator(data BaseData, bt *BuildingType, rng *rand.Rand) *InfiltrationGenerator {
	return &InfiltrationGenerator{data: data, bt: bt, rng: rng}
}

// ActivateRateVariability switches Rate to memoized triangular draws.
func (g *InfiltrationGenerator) ActivateRateVariability() {
	g.variableRate = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := g.data.InfiltrationRate(rt)
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

// Rate returns the infiltration rate of one room type.
func (g *InfiltrationGenerator) Rate(rt RoomType) (float64, error) {
	if g.variableRate != nil {
		return g.variableRate.Lookup(rt)
	}
	triple, err := g.data.InfiltrationRate(rt)
	if err != nil {
		return 0, err
	}
	return triple.Std, nil
}

// BuildingRate returns the area-weighted infiltration rate.
func (g *InfiltrationGenerator) BuildingRate() (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(g.Rate)
}

// BuildingProfile returns the constant all-ones infiltration profile.
func (g *InfiltrationGenerator) BuildingProfile() []float64 {
	return ConstantProfile(1, HoursPerYear)
}
