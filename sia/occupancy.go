package sia

import "math/rand"

// OccupancyGenerator produces the 8760-hour occupancy fraction profile per
// room type and the building-level synthesis, with independently
// controllable vertical and horizontal variability. Upstream variability
// (monthly variation, nighttime pattern) is inherited from the generators
// wired in at construction.
type OccupancyGenerator struct {
	data    BaseData
	bt      *BuildingType
	cfg     ProfileConfig
	monthly *MonthlyVariationGenerator
	night   *NighttimeGenerator
	rng     *rand.Rand

	nominalCache map[RoomType][]float64
	variable     *ValueCache[RoomType, []float64]
	verticalBand float64
	horizontal   bool
}

// NewOccupancyGenerator wires an occupancy generator for one building type.
func NewOccupancyGenerator(data BaseData, bt *BuildingType, cfg ProfileConfig, monthly *MonthlyVariationGenerator, night *NighttimeGenerator, rng *rand.Rand) *OccupancyGenerator {
	return &OccupancyGenerator{
		data:         data,
		bt:           bt,
		cfg:          cfg,
		monthly:      monthly,
		night:        night,
		rng:          rng,
		nominalCache: make(map[RoomType][]float64),
	}
}

// ActivateProfileVariability switches all subsequent profile requests for
// every room type of the building to the variable generator, memoized per
// room type. Last activation wins: calling again with different parameters
// rebuilds the cache and discards previously memoized profiles.
func (g *OccupancyGenerator) ActivateProfileVariability(verticalBand float64, doHorizontal bool) {
	g.verticalBand = verticalBand
	g.horizontal = doHorizontal
	g.variable = NewValueCache(g.bt.RoomTypes(), g.generateVariable)
}

// NominalProfile returns the non-randomized occupancy profile of one room
// type, cached regardless of variability activation.
func (g *OccupancyGenerator) NominalProfile(rt RoomType) ([]float64, error) {
	if p, ok := g.nominalCache[rt]; ok {
		return p, nil
	}
	p, err := g.generateNominal(rt)
	if err != nil {
		return nil, err
	}
	g.nominalCache[rt] = p
	return p, nil
}

// Profile returns the variable profile once variability is activated, the
// nominal profile otherwise.
func (g *OccupancyGenerator) Profile(rt RoomType) ([]float64, error) {
	if g.variable != nil {
		return g.variable.Lookup(rt)
	}
	return g.NominalProfile(rt)
}

func (g *OccupancyGenerator) generateNominal(rt RoomType) ([]float64, error) {
	daily, err := g.data.OccupancyDailyProfile(rt)
	if err != nil {
		return nil, err
	}
	monthly, err := g.data.OccupancyMonthlyVariation(rt)
	if err != nil {
		return nil, err
	}
	profile, err := ExpandMonthlyToHourly(monthly, daily)
	if err != nil {
		return nil, err
	}
	return g.applyRestdays(rt, profile)
}

func (g *OccupancyGenerator) generateVariable(rt RoomType) ([]float64, error) {
	daily, err := g.data.OccupancyDailyProfile(rt)
	if err != nil {
		return nil, err
	}
	monthly, err := g.monthly.MonthlyVariation(rt)
	if err != nil {
		return nil, err
	}
	profile, err := ExpandMonthlyToHourly(monthly, daily)
	if err != nil {
		return nil, err
	}
	if g.verticalBand > 0 {
		profile = RandomizeVertical(g.rng, profile, g.verticalBand, 0, 1)
	}
	profile, err = g.applyRestdays(rt, profile)
	if err != nil {
		return nil, err
	}
	if g.horizontal {
		breaks, err := g.data.OccupancyBreakHours(rt)
		if err != nil {
			return nil, err
		}
		profile = HorizontalVariability(g.rng, profile, breaks)
	}
	nominalAtNight, err := g.data.IsOccupancyNominalDuringNight(rt)
	if err != nil {
		return nil, err
	}
	if nominalAtNight {
		// Night hours never get randomized for such rooms.
		nominal, err := g.NominalProfile(rt)
		if err != nil {
			return nil, err
		}
		profile, err = OverlayOnCondition(profile, nominal, g.night.Pattern())
		if err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (g *OccupancyGenerator) applyRestdays(rt RoomType, profile []float64) ([]float64, error) {
	restDays, err := g.data.RestDaysPerWeek(rt)
	if err != nil {
		return nil, err
	}
	restValue, err := g.data.OccupancyRestdayValue(rt)
	if err != nil {
		return nil, err
	}
	return ApplyRestdayOverride(profile, restDays, restValue, g.cfg.StartWeekday), nil
}

// BuildingProfile synthesizes the building-level occupancy profile. Each
// room's profile is scaled by its area fraction times the ratio of
// building-level to room-level person density, redistributing occupancy to
// rooms proportionally to their area per person. A room with zero area per
// person contributes nothing.
//
// A building-level area per person of 0 returns an all-zero profile of
// length DaysPerYear, not HoursPerYear, replicating the historical behavior
// of this edge case.
func (g *OccupancyGenerator) BuildingProfile(areaPerPersonBldg float64, areaPerPersonForRoom func(RoomType) (float64, error)) ([]float64, error) {
	if areaPerPersonBldg == 0 {
		return make([]float64, DaysPerYear), nil
	}
	return g.bt.SynthesizeProfilesByRoomArea(g.Profile, func(rt RoomType) (float64, error) {
		roomApp, err := areaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		if roomApp == 0 {
			return 0, nil
		}
		return areaPerPersonBldg / roomApp, nil
	})
}
