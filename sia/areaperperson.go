package sia

import (
	"math"
	"math/rand"
)

// AreaPerPersonCalculator serves the m2-per-person value per room type and
// the aggregated building-level value. The nominal value is the standard
// value of the SIA triple; the variable value is a triangular draw from the
// widened triple limits, clamped to be non-negative and memoized per room.
type AreaPerPersonCalculator struct {
	data BaseData
	bt   *BuildingType
	rng  *rand.Rand

	nominal  map[RoomType]float64
	variable *ValueCache[RoomType, float64]
}

// NewAreaPerPersonCalculator creates a nominal-mode calculator.
func NewAreaPerPersonCalculator(data BaseData, bt *BuildingType, rng *rand.Rand) *AreaPerPersonCalculator {
	return &AreaPerPersonCalculator{
		data:    data,
		bt:      bt,
		rng:     rng,
		nominal: make(map[RoomType]float64),
	}
}

// ActivateVariability switches all subsequent per-room queries to memoized
// triangular draws. Last activation wins.
func (c *AreaPerPersonCalculator) ActivateVariability() {
	c.variable = NewValueCache(c.bt.RoomTypes(), func(rt RoomType) (float64, error) {
		triple, err := c.data.AreaPerPerson(rt)
		if err != nil {
			return 0, err
		}
		v, err := sampleTriple(c.rng, triple)
		if err != nil {
			return 0, err
		}
		return math.Max(0, v), nil
	})
}

// AreaPerPersonForRoom returns the (possibly randomized) area per person of
// one room type. 0 means the room type is unoccupied.
func (c *AreaPerPersonCalculator) AreaPerPersonForRoom(rt RoomType) (float64, error) {
	if c.variable != nil {
		return c.variable.Lookup(rt)
	}
	if v, ok := c.nominal[rt]; ok {
		return v, nil
	}
	triple, err := c.data.AreaPerPerson(rt)
	if err != nil {
		return 0, err
	}
	c.nominal[rt] = triple.Std
	return triple.Std, nil
}

// AreaPerPersonForBldg aggregates the per-room values into a building-level
// area per person: the reciprocal of the area-fraction-weighted person
// density. Returns 0 when no room of the building is occupied.
func (c *AreaPerPersonCalculator) AreaPerPersonForBldg() (float64, error) {
	density, err := c.personDensity()
	if err != nil {
		return 0, err
	}
	if density == 0 {
		return 0, nil
	}
	return 1 / density, nil
}

// personDensity is the building-level persons per m2.
func (c *AreaPerPersonCalculator) personDensity() (float64, error) {
	return c.bt.SynthesizeValueByRoomArea(func(rt RoomType) (float64, error) {
		app, err := c.AreaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		if app == 0 {
			return 0, nil
		}
		return 1 / app, nil
	})
}
