package sia

import (
	"math"
	"math/rand"
)

const (
	secondsPerHour = 3600
	daysInYear     = 365
)

// DHWGenerator produces the domestic-hot-water tapping profile per room
// type and derives the average heating power per floor area (W/m2) from the
// daily tapped volume per person. The liters-per-day value is the variable
// quantity; the profile inherits its variability from the occupancy and
// nighttime inputs.
type DHWGenerator struct {
	data      BaseData
	cfg       DHWConfig
	bt        *BuildingType
	monthly   *MonthlyVariationGenerator
	night     *NighttimeGenerator
	occupancy *OccupancyGenerator
	rng       *rand.Rand

	profileCache   map[RoomType][]float64
	variableVolume *ValueCache[RoomType, float64]
}

// NewDHWGenerator wires a DHW generator for one building type.
func NewDHWGenerator(data BaseData, cfg DHWConfig, bt *BuildingType, monthly *MonthlyVariationGenerator, night *NighttimeGenerator, occupancy *OccupancyGenerator, rng *rand.Rand) *DHWGenerator {
	return &DHWGenerator{
		data:         data,
		cfg:          cfg,
		bt:           bt,
		monthly:      monthly,
		night:        night,
		occupancy:    occupancy,
		rng:          rng,
		profileCache: make(map[RoomType][]float64),
	}
}

// ActivateVolumeVariability switches LitersPerDay to memoized triangular
// draws, clamped to be non-negative.
func (g *DHWGenerator) ActivateVolumeVariability() {
	g.variableVolume = NewValueCache(g.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := g.data.DHWLitersPerDay(rt)
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

// Profile returns the DHW tapping profile of one room type: the room's
// occupancy profile, hard-overridden to the configured night value for
// rooms flagged DHW-off-at-night. Cached per room.
func (g *DHWGenerator) Profile(rt RoomType) ([]float64, error) {
	if p, ok := g.profileCache[rt]; ok {
		return p, nil
	}
	occ, err := g.occupancy.Profile(rt)
	if err != nil {
		return nil, err
	}
	profile := make([]float64, len(occ))
	copy(profile, occ)

	offAtNight, err := g.data.IsDHWOffDuringNight(rt)
	if err != nil {
		return nil, err
	}
	if offAtNight {
		nightValue, err := g.data.DHWNightValue(rt)
		if err != nil {
			return nil, err
		}
		for h, isNight := range g.night.Pattern() {
			if h >= len(profile) {
				break
			}
			if isNight {
				profile[h] = nightValue
			}
		}
	}
	g.profileCache[rt] = profile
	return profile, nil
}

// LitersPerDay returns the tapped volume per day and person of one room
// type, nominal or memoized triangular draw.
func (g *DHWGenerator) LitersPerDay(rt RoomType) (float64, error) {
	if g.variableVolume != nil {
		return g.variableVolume.Lookup(rt)
	}
	triple, err := g.data.DHWLitersPerDay(rt)
	if err != nil {
		return 0, err
	}
	return triple.Std, nil
}

// PowerPerArea derives the room's average DHW heating power per floor area
// (W/m2). The tapped volume is turned into a daily energy per m2, and the
// full-load equivalent hours are recovered by dividing the DHW profile by
// the monthly variation profile element-wise (0 where the divisor is 0):
//
//	power = energy_per_day * 365 / full_load_hours
//
// Rooms with zero area per person or zero full-load hours draw no DHW power.
func (g *DHWGenerator) PowerPerArea(rt RoomType, areaPerPerson float64) (float64, error) {
	if areaPerPerson == 0 {
		return 0, nil
	}
	liters, err := g.LitersPerDay(rt)
	if err != nil {
		return 0, err
	}
	// l/(day person) -> Wh/(day m2)
	deltaT := g.cfg.HotWaterTempC - g.cfg.ColdWaterTempC
	energyPerDay := liters * g.cfg.WaterDensityKgPerL * g.cfg.SpecificHeatJPerKgK * deltaT / secondsPerHour / areaPerPerson

	fullLoadHours, err := g.fullLoadHours(rt)
	if err != nil {
		return 0, err
	}
	if fullLoadHours == 0 {
		return 0, nil
	}
	return energyPerDay * daysInYear / fullLoadHours, nil
}

// fullLoadHours sums the DHW profile normalized by the monthly variation,
// recovering the yearly full-load equivalent operating hours.
func (g *DHWGenerator) fullLoadHours(rt RoomType) (float64, error) {
	profile, err := g.Profile(rt)
	if err != nil {
		return 0, err
	}
	monthly, err := g.monthly.MonthlyVariation(rt)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for h, v := range profile {
		m := monthly[MonthOfHour(h)]
		if m == 0 {
			continue
		}
		sum += v / m
	}
	return sum, nil
}

// BuildingPowerPerArea returns the area-weighted DHW power density.
func (g *DHWGenerator) BuildingPowerPerArea(app *AreaPerPersonCalculator) (float64, error) {
	return g.bt.SynthesizeValueByRoomArea(func(rt RoomType) (float64, error) {
		roomApp, err := app.AreaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		return g.PowerPerArea(rt, roomApp)
	})
}

// BuildingLitersPerDay returns the tapped volume per day and person
// averaged over the building's people (person-weighted, so unoccupied
// rooms contribute nothing). 0 for a building with no occupied rooms.
func (g *DHWGenerator) BuildingLitersPerDay(app *AreaPerPersonCalculator) (float64, error) {
	totalDensity, err := app.personDensity()
	if err != nil {
		return 0, err
	}
	if totalDensity == 0 {
		return 0, nil
	}
	weighted, err := g.bt.SynthesizeValueByRoomArea(func(rt RoomType) (float64, error) {
		roomApp, err := app.AreaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		if roomApp == 0 {
			return 0, nil
		}
		liters, err := g.LitersPerDay(rt)
		if err != nil {
			return 0, err
		}
		return liters / roomApp, nil
	})
	if err != nil {
		return 0, err
	}
	return weighted / totalDensity, nil
}

// BuildingProfile synthesizes the building-level DHW profile weighted by
// each room's share of the building's DHW power.
func (g *DHWGenerator) BuildingProfile(app *AreaPerPersonCalculator) ([]float64, error) {
	bldgPower, err := g.BuildingPowerPerArea(app)
	if err != nil {
		return nil, err
	}
	powerFn := func(rt RoomType) (float64, error) {
		roomApp, err := app.AreaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		return g.PowerPerArea(rt, roomApp)
	}
	return g.bt.SynthesizeProfilesByRoomArea(g.Profile, levelShareFactor(bldgPower, powerFn))
}
