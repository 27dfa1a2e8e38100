package sia

import "fmt"

// stubRoom holds all base data for one room type, with sensible defaults
// from newStubRoom. Tests override individual fields.
type stubRoom struct {
	occupancyDaily   []float64
	occupancyMonthly []float64
	restdayValue     float64
	restDays         int
	occupancyBreaks  []int
	nominalAtNight   bool
	areaPerPerson    Triple
	activityGain     float64

	appliancesDaily []float64
	applianceLevel  Triple
	standby         float64
	applianceBreaks []int

	lightingDensity  Triple
	lightingSetpoint float64
	lightingFollows  bool
	lightOffNight    bool
	lightOff         float64

	dhwLiters   Triple
	dhwOffNight bool
	dhwNight    float64

	heatingSetpoint float64
	coolingSetpoint float64
	ventRate        Triple
	infRate         Triple
}

func newStubRoom() *stubRoom {
	daily := make([]float64, HoursPerDay)
	for h := 8; h < 18; h++ {
		daily[h] = 1.0
	}
	appliances := make([]float64, HoursPerDay)
	for h := range appliances {
		appliances[h] = 0.5
	}
	monthly := make([]float64, MonthsPerYear)
	for m := range monthly {
		monthly[m] = 1.0
	}
	return &stubRoom{
		occupancyDaily:   daily,
		occupancyMonthly: monthly,
		restdayValue:     0,
		restDays:         0,
		areaPerPerson:    Triple{Min: 20, Std: 25, Max: 30},
		activityGain:     70,
		appliancesDaily:  appliances,
		applianceLevel:   Triple{Min: 2, Std: 4, Max: 8},
		standby:          0.1,
		lightingDensity:  Triple{Min: 5, Std: 10, Max: 16},
		lightingSetpoint: 300,
		lightingFollows:  true,
		dhwLiters:        Triple{Min: 20, Std: 35, Max: 50},
		heatingSetpoint:  20,
		coolingSetpoint:  26,
		ventRate:         Triple{Min: 0.5, Std: 0.9, Max: 1.3},
		infRate:          Triple{Min: 0.1, Std: 0.15, Max: 0.2},
	}
}

// stubData is the in-package BaseData test double.
type stubData struct {
	source    string
	rooms     map[RoomType]*stubRoom
	buildings map[string]*BuildingType
}

func newStubData() *stubData {
	return &stubData{
		source:    "stub dataset",
		rooms:     make(map[RoomType]*stubRoom),
		buildings: make(map[string]*BuildingType),
	}
}

// singleRoomStub builds a stub with one building type made of one room.
func singleRoomStub(rt RoomType, room *stubRoom, bldgName string, residential bool) *stubData {
	d := newStubData()
	d.rooms[rt] = room
	bt, err := NewBuildingType(bldgName, residential, map[RoomType]float64{rt: 1.0})
	if err != nil {
		panic(err)
	}
	d.buildings[bldgName] = bt
	return d
}

func (d *stubData) addBuilding(name string, residential bool, fractions map[RoomType]float64) *BuildingType {
	bt, err := NewBuildingType(name, residential, fractions)
	if err != nil {
		panic(err)
	}
	d.buildings[name] = bt
	return bt
}

func (d *stubData) room(rt RoomType) (*stubRoom, error) {
	r, ok := d.rooms[rt]
	if !ok {
		return nil, fmt.Errorf("no base data for room type %s", rt)
	}
	return r, nil
}

func (d *stubData) OccupancyDailyProfile(rt RoomType) ([]float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return r.occupancyDaily, nil
}

func (d *stubData) OccupancyMonthlyVariation(rt RoomType) ([]float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return r.occupancyMonthly, nil
}

func (d *stubData) OccupancyRestdayValue(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.restdayValue, nil
}

func (d *stubData) RestDaysPerWeek(rt RoomType) (int, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.restDays, nil
}

func (d *stubData) OccupancyBreakHours(rt RoomType) ([]int, error) {
	r, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return r.occupancyBreaks, nil
}

func (d *stubData) IsOccupancyNominalDuringNight(rt RoomType) (bool, error) {
	r, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return r.nominalAtNight, nil
}

func (d *stubData) AreaPerPerson(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.areaPerPerson, nil
}

func (d *stubData) ActivityHeatGain(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.activityGain, nil
}

func (d *stubData) AppliancesDailyProfile(rt RoomType) ([]float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return r.appliancesDaily, nil
}

func (d *stubData) ApplianceLevel(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.applianceLevel, nil
}

func (d *stubData) ApplianceStandbyValue(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.standby, nil
}

func (d *stubData) ApplianceBreakHours(rt RoomType) ([]int, error) {
	r, err := d.room(rt)
	if err != nil {
		return nil, err
	}
	return r.applianceBreaks, nil
}

func (d *stubData) LightingDensity(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.lightingDensity, nil
}

func (d *stubData) LightingSetpoint(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.lightingSetpoint, nil
}

func (d *stubData) IsLightingFollowingOccupancy(rt RoomType) (bool, error) {
	r, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return r.lightingFollows, nil
}

func (d *stubData) IsLightOffDuringNight(rt RoomType) (bool, error) {
	r, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return r.lightOffNight, nil
}

func (d *stubData) LightingOffValue(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.lightOff, nil
}

func (d *stubData) DHWLitersPerDay(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.dhwLiters, nil
}

func (d *stubData) IsDHWOffDuringNight(rt RoomType) (bool, error) {
	r, err := d.room(rt)
	if err != nil {
		return false, err
	}
	return r.dhwOffNight, nil
}

func (d *stubData) DHWNightValue(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.dhwNight, nil
}

func (d *stubData) HeatingSetpoint(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.heatingSetpoint, nil
}

func (d *stubData) CoolingSetpoint(rt RoomType) (float64, error) {
	r, err := d.room(rt)
	if err != nil {
		return 0, err
	}
	return r.coolingSetpoint, nil
}

func (d *stubData) VentilationRate(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.ventRate, nil
}

func (d *stubData) InfiltrationRate(rt RoomType) (Triple, error) {
	r, err := d.room(rt)
	if err != nil {
		return Triple{}, err
	}
	return r.infRate, nil
}

func (d *stubData) BuildingTypeByName(name string) (*BuildingType, error) {
	bt, ok := d.buildings[name]
	if !ok {
		return nil, fmt.Errorf("unknown building type %q", name)
	}
	return bt, nil
}

func (d *stubData) SourceDescription() string {
	return d.source
}
