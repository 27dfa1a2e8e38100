package sia

import (
	"fmt"
	"math"
	"sort"
)

// areaFractionTolerance is the allowed deviation of the room area fractions
// from summing to exactly 1.
const areaFractionTolerance = 1e-6

// BuildingType is a named archetype: a weighted mix of room types by
// floor-area fraction plus a residential flag. Read-only after construction.
type BuildingType struct {
	name        string
	residential bool
	fractions   map[RoomType]float64
	order       []RoomType
}

// NewBuildingType validates the fractions (each in (0,1], summing to 1
// within tolerance) and returns an immutable BuildingType.
func NewBuildingType(name string, residential bool, fractions map[RoomType]float64) (*BuildingType, error) {
	if len(fractions) == 0 {
		return nil, fmt.Errorf("building type %q has no room fractions", name)
	}
	sum := 0.0
	order := make([]RoomType, 0, len(fractions))
	for rt, f := range fractions {
		if f <= 0 || f > 1 {
			return nil, fmt.Errorf("building type %q: area fraction %g for room %s outside (0, 1]", name, f, rt)
		}
		sum += f
		order = append(order, rt)
	}
	if math.Abs(sum-1) > areaFractionTolerance {
		return nil, fmt.Errorf("building type %q: area fractions sum to %g, want 1", name, sum)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	copied := make(map[RoomType]float64, len(fractions))
	for rt, f := range fractions {
		copied[rt] = f
	}
	return &BuildingType{name: name, residential: residential, fractions: copied, order: order}, nil
}

// Name returns the archetype name.
func (bt *BuildingType) Name() string { return bt.name }

// IsResidential reports whether the archetype is residential.
func (bt *BuildingType) IsResidential() bool { return bt.residential }

// RoomTypes returns the room types of this building in deterministic order.
func (bt *BuildingType) RoomTypes() []RoomType {
	return append([]RoomType(nil), bt.order...)
}

// AreaFraction returns the floor-area fraction of one room type (0 if the
// room type is not part of this building).
func (bt *BuildingType) AreaFraction(rt RoomType) float64 {
	return bt.fractions[rt]
}

// AreaFractions returns a copy of the full {room type: fraction} map.
func (bt *BuildingType) AreaFractions() map[RoomType]float64 {
	out := make(map[RoomType]float64, len(bt.fractions))
	for rt, f := range bt.fractions {
		out[rt] = f
	}
	return out
}

// SynthesizeValueByRoomArea computes the floor-area-weighted sum of a
// per-room value over all rooms of the building.
func (bt *BuildingType) SynthesizeValueByRoomArea(valueFn func(RoomType) (float64, error)) (float64, error) {
	sum := 0.0
	for _, rt := range bt.order {
		v, err := valueFn(rt)
		if err != nil {
			return 0, fmt.Errorf("building %q, room %s: %w", bt.name, rt, err)
		}
		sum += bt.fractions[rt] * v
	}
	return sum, nil
}

// SynthesizeProfilesByRoomArea computes the hour-by-hour floor-area-weighted
// sum of per-room yearly profiles, optionally further weighted by a
// per-room scalar factor (nil factorFn means factor 1 for every room).
func (bt *BuildingType) SynthesizeProfilesByRoomArea(profileFn func(RoomType) ([]float64, error), factorFn func(RoomType) (float64, error)) ([]float64, error) {
	out := make([]float64, HoursPerYear)
	for _, rt := range bt.order {
		profile, err := profileFn(rt)
		if err != nil {
			return nil, fmt.Errorf("building %q, room %s: %w", bt.name, rt, err)
		}
		if len(profile) != HoursPerYear {
			return nil, fmt.Errorf("building %q, room %s: profile has %d values, want %d", bt.name, rt, len(profile), HoursPerYear)
		}
		factor := 1.0
		if factorFn != nil {
			factor, err = factorFn(rt)
			if err != nil {
				return nil, fmt.Errorf("building %q, room %s: %w", bt.name, rt, err)
			}
		}
		weight := bt.fractions[rt] * factor
		if weight == 0 {
			continue
		}
		for h := range out {
			out[h] += weight * profile[h]
		}
	}
	return out, nil
}
