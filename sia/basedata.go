package sia

import "fmt"

// Triple is the SIA 2024 three-point specification (minimum/target,
// standard, maximum/existing-stock) for one quantity and room type.
type Triple struct {
	Min float64 `yaml:"min"`
	Std float64 `yaml:"std"`
	Max float64 `yaml:"max"`
}

// Validate enforces the Min <= Std <= Max ordering the triangular-limit
// search relies on. Validated once at dataset load, not in the sampling
// hot path.
func (t Triple) Validate() error {
	if t.Min > t.Std || t.Std > t.Max {
		return fmt.Errorf("triple (min=%g, std=%g, max=%g) violates min <= std <= max", t.Min, t.Std, t.Max)
	}
	return nil
}

// IsDegenerate reports whether the triple carries no spread.
func (t Triple) IsDegenerate() bool {
	return t.Min == t.Std && t.Std == t.Max
}

// BaseData is the per-room-type SIA 2024 base-data accessor the generation
// engine is programmed against. The production implementation is the
// YAML-backed Dataset; tests use an in-package stub.
type BaseData interface {
	// Occupancy.
	OccupancyDailyProfile(rt RoomType) ([]float64, error)    // 24 hour-of-day fractions
	OccupancyMonthlyVariation(rt RoomType) ([]float64, error) // 12 monthly factors
	OccupancyRestdayValue(rt RoomType) (float64, error)
	RestDaysPerWeek(rt RoomType) (int, error)
	OccupancyBreakHours(rt RoomType) ([]int, error)
	IsOccupancyNominalDuringNight(rt RoomType) (bool, error)
	AreaPerPerson(rt RoomType) (Triple, error)  // m2/person
	ActivityHeatGain(rt RoomType) (float64, error) // W/person

	// Appliances.
	AppliancesDailyProfile(rt RoomType) ([]float64, error)
	ApplianceLevel(rt RoomType) (Triple, error) // W/m2
	ApplianceStandbyValue(rt RoomType) (float64, error)
	ApplianceBreakHours(rt RoomType) ([]int, error)

	// Lighting.
	LightingDensity(rt RoomType) (Triple, error) // W/m2
	LightingSetpoint(rt RoomType) (float64, error) // lux
	IsLightingFollowingOccupancy(rt RoomType) (bool, error)
	IsLightOffDuringNight(rt RoomType) (bool, error)
	LightingOffValue(rt RoomType) (float64, error)

	// Domestic hot water.
	DHWLitersPerDay(rt RoomType) (Triple, error) // l/(day person)
	IsDHWOffDuringNight(rt RoomType) (bool, error)
	DHWNightValue(rt RoomType) (float64, error)

	// HVAC.
	HeatingSetpoint(rt RoomType) (float64, error) // degC
	CoolingSetpoint(rt RoomType) (float64, error) // degC
	VentilationRate(rt RoomType) (Triple, error)  // m3/(h m2)
	InfiltrationRate(rt RoomType) (Triple, error) // ACH

	// Building archetypes.
	BuildingTypeByName(name string) (*BuildingType, error)
	SourceDescription() string
}
