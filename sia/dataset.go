package sia

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// roomRecord is the YAML shape of one room type's base data.
type roomRecord struct {
	OccupancyDailyProfile       []float64 `yaml:"occupancy_daily_profile"`
	OccupancyMonthlyVariation   []float64 `yaml:"occupancy_monthly_variation"`
	OccupancyRestdayValue       float64   `yaml:"occupancy_restday_value"`
	RestDaysPerWeek             int       `yaml:"rest_days_per_week"`
	OccupancyBreakHours         []int     `yaml:"occupancy_break_hours"`
	OccupancyNominalDuringNight bool      `yaml:"occupancy_nominal_during_night"`
	AreaPerPerson               Triple    `yaml:"area_per_person"`
	ActivityHeatGain            float64   `yaml:"activity_heat_gain"`

	AppliancesDailyProfile []float64 `yaml:"appliances_daily_profile"`
	ApplianceLevel         Triple    `yaml:"appliance_level"`
	ApplianceStandbyValue  float64   `yaml:"appliance_standby_value"`
	ApplianceBreakHours    []int     `yaml:"appliance_break_hours"`

	LightingDensity            Triple  `yaml:"lighting_density"`
	LightingSetpoint           float64 `yaml:"lighting_setpoint"`
	LightingFollowingOccupancy bool    `yaml:"lighting_following_occupancy"`
	LightOffDuringNight        bool    `yaml:"light_off_during_night"`
	LightingOffValue           float64 `yaml:"lighting_off_value"`

	DHWLitersPerDay   Triple  `yaml:"dhw_liters_per_day"`
	DHWOffDuringNight bool    `yaml:"dhw_off_during_night"`
	DHWNightValue     float64 `yaml:"dhw_night_value"`

	HeatingSetpoint  float64 `yaml:"heating_setpoint"`
	CoolingSetpoint  float64 `yaml:"cooling_setpoint"`
	VentilationRate  Triple  `yaml:"ventilation_rate"`
	InfiltrationRate Triple  `yaml:"infiltration_rate"`
}

// buildingRecord is the YAML shape of one building archetype.
type buildingRecord struct {
	Residential   bool               `yaml:"residential"`
	RoomFractions map[string]float64 `yaml:"room_fractions"`
}

// Dataset is the YAML-backed BaseData implementation: the full SIA 2024
// room-type table plus the building archetypes derived from it.
type Dataset struct {
	Source    string                    `yaml:"source_description"`
	Rooms     map[string]roomRecord     `yaml:"room_types"`
	Buildings map[string]buildingRecord `yaml:"building_types"`

	rooms     map[RoomType]*roomRecord
	buildings map[string]*BuildingType
}

// LoadDataset reads and validates a dataset YAML file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return &ds, nil
}

// Validate checks profile lengths, fraction ranges, break hours and triple
// ordering for every room, then resolves the building archetypes.
func (d *Dataset) Validate() error {
	if len(d.Rooms) == 0 {
		return fmt.Errorf("no room types defined")
	}
	d.rooms = make(map[RoomType]*roomRecord, len(d.Rooms))
	names := make([]string, 0, len(d.Rooms))
	for name := range d.Rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rt, err := ParseRoomType(name)
		if err != nil {
			return err
		}
		rec := d.Rooms[name]
		if err := validateRoomRecord(&rec); err != nil {
			return fmt.Errorf("room type %s: %w", name, err)
		}
		d.rooms[rt] = &rec
	}

	d.buildings = make(map[string]*BuildingType, len(d.Buildings))
	for name, rec := range d.Buildings {
		fractions := make(map[RoomType]float64, len(rec.RoomFractions))
		for roomName, f := range rec.RoomFractions {
			rt, err := ParseRoomType(roomName)
			if err != nil {
				return fmt.Errorf("building type %s: %w", name, err)
			}
			if _, ok := d.rooms[rt]; !ok {
				return fmt.Errorf("building type %s references room type %s with no base data", name, roomName)
			}
			fractions[rt] = f
		}
		bt, err := NewBuildingType(name, rec.Residential, fractions)
		if err != nil {
			return err
		}
		d.buildings[name] = bt
	}
	return nil
}

func validateRoomRecord(rec *roomRecord) error {
	if len(rec.OccupancyDailyProfile) != HoursPerDay {
		return fmt.Errorf("occupancy daily profile has %d values, want %d", len(rec.OccupancyDailyProfile), HoursPerDay)
	}
	if len(rec.AppliancesDailyProfile) != HoursPerDay {
		return fmt.Errorf("appliances daily profile has %d values, want %d", len(rec.AppliancesDailyProfile), HoursPerDay)
	}
	if len(rec.OccupancyMonthlyVariation) != MonthsPerYear {
		return fmt.Errorf("occupancy monthly variation has %d values, want %d", len(rec.OccupancyMonthlyVariation), MonthsPerYear)
	}
	for _, p := range [][]float64{rec.OccupancyDailyProfile, rec.AppliancesDailyProfile, rec.OccupancyMonthlyVariation} {
		for _, v := range p {
			if v < 0 || v > 1 {
				return fmt.Errorf("profile fraction %g outside [0, 1]", v)
			}
		}
	}
	for _, hours := range [][]int{rec.OccupancyBreakHours, rec.ApplianceBreakHours} {
		for _, h := range hours {
			if h < 0 || h >= HoursPerDay {
				return fmt.Errorf("break hour %d outside [0, %d)", h, HoursPerDay)
			}
		}
	}
	if rec.RestDaysPerWeek < 0 || rec.RestDaysPerWeek > DaysPerWeek {
		return fmt.Errorf("rest days per week %d outside [0, %d]", rec.RestDaysPerWeek, DaysPerWeek)
	}
	triples := map[string]Triple{
		"area_per_person":    rec.AreaPerPerson,
		"appliance_level":    rec.ApplianceLevel,
		"lighting_density":   rec.LightingDensity,
		"dhw_liters_per_day": rec.DHWLitersPerDay,
		"ventilation_rate":   rec.VentilationRate,
		"infiltration_rate":  rec.InfiltrationRate,
	}
	tripleNames := make([]string, 0, len(triples))
	for n := range triples {
		tripleNames = append(tripleNames, n)
	}
	sort.Strings(tripleNames)
	for _, n := range tripleNames {
		if err := triples[n].Validate(); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
	}
	return nil
}

func (d *Dataset) room(rt RoomType) (*roomRecord, error) {
	rec, ok := d.rooms[rt]
	if !ok {
		return nil, fmt.Errorf("no base data for room type %s", rt)
	}
	return rec, nil
}

// BuildingTypeNames returns the archetype names in sorted order.
func (d *Dataset) BuildingTypeNames() []string {
	names := make([]string, 0, len(d.buildings))
	for name := range d.buildings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- BaseData implementation ---

func (d *Dataset) OccupancyDailyProfile(rt RoomType) ([]float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), rec.OccupancyDailyProfile...), nil
}

func (d *Dataset) OccupancyMonthlyVariation(rt RoomType) ([]float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), rec.OccupancyMonthlyVariation...), nil
}

func (d *Dataset) OccupancyRestdayValue(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.OccupancyRestdayValue, nil
}

func (d *Dataset) RestDaysPerWeek(rt RoomType) (int, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.RestDaysPerWeek, nil
}

func (d *Dataset) OccupancyBreakHours(rt RoomType) ([]int, error) {
	rec, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), rec.OccupancyBreakHours...), nil
}

func (d *Dataset) IsOccupancyNominalDuringNight(rt RoomType) (bool, error) {
	rec, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return rec.OccupancyNominalDuringNight, nil
}

func (d *Dataset) AreaPerPerson(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.AreaPerPerson, nil
}

func (d *Dataset) ActivityHeatGain(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.ActivityHeatGain, nil
}

func (d *Dataset) AppliancesDailyProfile(rt RoomType) ([]float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), rec.AppliancesDailyProfile...), nil
}

func (d *Dataset) ApplianceLevel(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.ApplianceLevel, nil
}

func (d *Dataset) ApplianceStandbyValue(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.ApplianceStandbyValue, nil
}

func (d *Dataset) ApplianceBreakHours(rt RoomType) ([]int, error) {
	rec, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), rec.ApplianceBreakHours...), nil
}

func (d *Dataset) LightingDensity(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.LightingDensity, nil
}

func (d *Dataset) LightingSetpoint(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.LightingSetpoint, nil
}

func (d *Dataset) IsLightingFollowingOccupancy(rt RoomType) (bool, error) {
	rec, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return rec.LightingFollowingOccupancy, nil
}

func (d *Dataset) IsLightOffDuringNight(rt RoomType) (bool, error) {
	rec, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return rec.LightOffDuringNight, nil
}

func (d *Dataset) LightingOffValue(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.LightingOffValue, nil
}

func (d *Dataset) DHWLitersPerDay(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.DHWLitersPerDay, nil
}

func (d *Dataset) IsDHWOffDuringNight(rt RoomType) (bool, error) {
	rec, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return rec.DHWOffDuringNight, nil
}

func (d *Dataset) DHWNightValue(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.DHWNightValue, nil
}

func (d *Dataset) HeatingSetpoint(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.HeatingSetpoint, nil
}

func (d *Dataset) CoolingSetpoint(rt RoomType) (float64, error) {
	rec, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return rec.CoolingSetpoint, nil
}

func (d *Dataset) VentilationRate(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.VentilationRate, nil
}

func (d *Dataset) InfiltrationRate(rt RoomType) (Triple, error) {
	rec, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return rec.InfiltrationRate, nil
}

func (d *Dataset) BuildingTypeByName(name string) (*BuildingType, error) {
	bt, ok := d.buildings[name]
	if !ok {
		return nil, fmt.Errorf("unknown building type %q", name)
	}
	return bt, nil
}

func (d *Dataset) SourceDescription() string {
	return d.Source
}
