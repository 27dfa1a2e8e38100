package sia

import (
	"math"
	"math/rand"
)

// AppliancesGenerator produces the appliance usage fraction profile and the
// appliance power level (W/m2) per room type, plus their building-level
// synthesis. Profile and level variability are independently toggleable.
type AppliancesGenerator struct {
	data    BaseData
	bt      *BuildingType
	cfg     ProfileConfig
	monthly *MonthlyVariationGenerator
	rng     *rand.Rand

	nominalCache  map[RoomType][]float64
	variable      *ValueCache[RoomType, []float64]
	verticalBand  float64
	horizontal    bool
	variableLevel *ValueCache[RoomType, float64]
}

// NewAppliancesGenerator wires an appliances generator for one building type.
func NewAppliancesGenerator(data BaseData, bt *BuildingType, cfg ProfileConfig, monthly *MonthlyVariationGenerator, rng *rand.Rand) *AppliancesGenerator {
	return &AppliancesGenerator{
		data:         data,
		bt:           bt,
		cfg:          cfg,
		monthly:      monthly,
		rng:          rng,
		nominalCache: make(map[RoomType][]float64),
	}
}

// ActivateProfileVariability switches profile requests to the variable
// generator. Last activation wins.
func (g *AppliancesGenerator) ActivateProfileVariability(verticalBand float64, doHorizontal bool) {
	g.verticalBand = verticalBand
	g.horizontal = doHorizontal
	g.variable = NewValueCache(g.bt.RoomTypes(), g.generateVariable)
}

// ActivateLevelVariability switches Level to memoized triangular draws from
// the room's appliance-level triple.
func (g *AppliancesGenerator) ActivateLevelVariability() {
	g.variableLevel = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := g.data.ApplianceLevel(rt)
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

// NominalProfile returns the non-randomized appliance profile of one room.
func (g *AppliancesGenerator) NominalProfile(rt RoomType) ([]float64, error) {
	if p, ok := g.nominalCache[rt]; ok {
		return p, nil
	}
	daily, err := g.data.AppliancesDailyProfile(rt)
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
	profile, err = g.applyStandbyWeekends(rt, profile)
	if err != nil {
		return nil, err
	}
	profile = clampProfile(profile, g.cfg.ApplianceMinAllowed, 1)
	g.nominalCache[rt] = profile
	return profile, nil
}

// Profile returns the variable profile once activated, the nominal profile
// otherwise.
func (g *AppliancesGenerator) Profile(rt RoomType) ([]float64, error) {
	if g.variable != nil {
		return g.variable.Lookup(rt)
	}
	return g.NominalProfile(rt)
}

func (g *AppliancesGenerator) generateVariable(rt RoomType) ([]float64, error) {
	daily, err := g.data.AppliancesDailyProfile(rt)
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
		profile = RandomizeVertical(g.rng, profile, g.verticalBand, g.cfg.ApplianceMinAllowed, 1)
	}
	profile, err = g.applyStandbyWeekends(rt, profile)
	if err != nil {
		return nil, err
	}
	if g.horizontal {
		breaks, err := g.data.ApplianceBreakHours(rt)
		if err != nil {
			return nil, err
		}
		profile = HorizontalVariability(g.rng, profile, breaks)
	}
	return clampProfile(profile, g.cfg.ApplianceMinAllowed, 1), nil
}

func (g *AppliancesGenerator) applyStandbyWeekends(rt RoomType, profile []float64) ([]float64, error) {
	restDays, err := g.data.RestDaysPerWeek(rt)
	if err != nil {
		return nil, err
	}
	standby, err := g.data.ApplianceStandbyValue(rt)
	if err != nil {
		return nil, err
	}
	return ApplyRestdayOverride(profile, restDays, standby, g.cfg.StartWeekday), nil
}

// Level returns the appliance power level of one room type (W/m2), either
// nominal (triple standard value) or the memoized triangular draw.
func (g *AppliancesGenerator) Level(rt RoomType) (float64, error) {
	if g.variableLevel != nil {
		return g.variableLevel.Lookup(rt)
	}
	triple, err := g.data.ApplianceLevel(rt)
	if err != nil {
		return 0, err
	}
	return triple.Std, nil
}

// BuildingLevel returns the area-weighted appliance power level.
func (g *AppliancesGenerator) BuildingLevel() (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(g.Level)
}

// BuildingProfile synthesizes the building-level appliance profile, each
// room weighted by its share of the building's appliance power so that
// building profile x building level conserves the per-room energy.
func (g *AppliancesGenerator) BuildingProfile() ([]float64, error) {
	bldgLevel, err := g.BuildingLevel()
	if err != nil {
		return nil, err
	}
	return g.bt.SynthesizeProfilesByRoomArea(g.Profile, levelShareFactor(bldgLevel, g.Level))
}

// levelShareFactor builds the per-room weighting factor level_room /
// level_bldg used when synthesizing unit-bearing building profiles. A zero
// building level forces all factors to 0.
func levelShareFactor(bldgLevel float64, levelFn func(RoomType) (float64, error)) func(RoomType) (float64, error) {
	return func(rt RoomType) (float64, error) {
		if bldgLevel == 0 {
			return 0, nil
		}
		level, err := levelFn(rt)
		if err != nil {
			return 0, err
		}
		return level / bldgLevel, nil
	}
}
