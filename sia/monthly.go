package sia

import "math/rand"

// MonthlyVariationGenerator serves the 12-value monthly variation profile
// per room type, vertically randomized when constructed with a non-zero
// band (0 for the nominal track). Values are memoized per room so every
// consumer of the same room's monthly variation sees the same draw.
type MonthlyVariationGenerator struct {
	data  BaseData
	band  float64
	rng   *rand.Rand
	cache *ValueCache[RoomType, []float64]
}

// NewMonthlyVariationGenerator binds a generator to one building type's
// room set and a vertical-variability band.
func NewMonthlyVariationGenerator(data BaseData, bt *BuildingType, band float64, rng *rand.Rand) *MonthlyVariationGenerator {
	g := &MonthlyVariationGenerator{data: data, band: band, rng: rng}
	g.cache = NewValueCache(bt.RoomTypes(), g.generate)
	return g
}

// MonthlyVariation returns the (possibly randomized) monthly variation
// profile for one room type.
func (g *MonthlyVariationGenerator) MonthlyVariation(rt RoomType) ([]float64, error) {
	return g.cache.Lookup(rt)
}

func (g *MonthlyVariationGenerator) generate(rt RoomType) ([]float64, error) {
	monthly, err := g.data.OccupancyMonthlyVariation(rt)
	if err != nil {
		return nil, err
	}
	if g.band <= 0 {
		return monthly, nil
	}
	return RandomizeVertical(g.rng, monthly, g.band, 0, 1), nil
}
