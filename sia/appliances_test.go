package sia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAppliancesUnderTest(t *testing.T, data *stubData, bldgName string, seed int64) *AppliancesGenerator {
	t.Helper()
	cfg := DefaultEngineConfig().Profile
	bt, err := data.BuildingTypeByName(bldgName)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	monthly := NewMonthlyVariationGenerator(data, bt, 0, rng)
	return NewAppliancesGenerator(data, bt, cfg, monthly, rng)
}

func TestAppliances_NominalConstantProfile(t *testing.T) {
	room := newStubRoom()
	for h := range room.appliancesDaily {
		room.appliancesDaily[h] = 0.2
	}
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	p, err := g.NominalProfile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Len(t, p, HoursPerYear)
	for h, v := range p {
		if v != 0.2 {
			t.Fatalf("hour %d: got %g, want 0.2", h, v)
		}
	}
}

func TestAppliances_StandbyOnRestDays(t *testing.T) {
	room := newStubRoom()
	room.restDays = 2
	room.standby = 0.1
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	p, err := g.NominalProfile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0.5, p[4*HoursPerDay+12], "Friday noon keeps the daily value")
	assert.Equal(t, 0.1, p[5*HoursPerDay+12], "Saturday noon drops to standby")
	assert.Equal(t, 0.1, p[6*HoursPerDay+12], "Sunday noon drops to standby")
}

func TestAppliances_NominalClampedToMinAllowed(t *testing.T) {
	room := newStubRoom()
	room.restDays = 2
	room.standby = 0 // below the configured floor
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	p, err := g.NominalProfile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	minAllowed := DefaultEngineConfig().Profile.ApplianceMinAllowed
	assert.Equal(t, minAllowed, p[5*HoursPerDay+12])
}

func TestAppliances_VariableStaysWithinBounds(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)
	g.ActivateProfileVariability(0.4, false)

	p, err := g.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	minAllowed := DefaultEngineConfig().Profile.ApplianceMinAllowed
	for h, v := range p {
		if v < minAllowed || v > 1 {
			t.Fatalf("hour %d: appliance fraction %g outside [%g, 1]", h, v, minAllowed)
		}
	}
}

func TestAppliances_NominalLevelIsStandardValue(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	level, err := g.Level(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, room.applianceLevel.Std, level)
}

func TestAppliances_VariableLevelMemoizedWithinLimits(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)
	g.ActivateLevelVariability()

	first, err := g.Level(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Level(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
}

func TestAppliances_BuildingLevelAreaWeighted(t *testing.T) {
	data := newStubData()
	office := newStubRoom()
	office.applianceLevel = Triple{Min: 5, Std: 10, Max: 15}
	storage := newStubRoom()
	storage.applianceLevel = Triple{Min: 1, Std: 2, Max: 3}
	data.rooms[RoomTypeSingleOffice] = office
	data.rooms[RoomTypeStorage] = storage
	data.addBuilding("OFFICE", false, map[RoomType]float64{
		RoomTypeSingleOffice: 0.8,
		RoomTypeStorage:      0.2,
	})
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	level, err := g.BuildingLevel()
	if err != nil {
		t.Fatal(err)
	}
	assert.InDelta(t, 0.8*10+0.2*2, level, 1e-12)
}

func TestAppliances_BuildingProfileConservesEnergy(t *testing.T) {
	data := newStubData()
	office := newStubRoom()
	office.applianceLevel = Triple{Min: 5, Std: 10, Max: 15}
	storage := newStubRoom()
	storage.applianceLevel = Triple{Min: 1, Std: 2, Max: 3}
	data.rooms[RoomTypeSingleOffice] = office
	data.rooms[RoomTypeStorage] = storage
	bt := data.addBuilding("OFFICE", false, map[RoomType]float64{
		RoomTypeSingleOffice: 0.8,
		RoomTypeStorage:      0.2,
	})
	g := newAppliancesUnderTest(t, data, "OFFICE", 42)

	bldgProfile, err := g.BuildingProfile()
	if err != nil {
		t.Fatal(err)
	}
	bldgLevel, err := g.BuildingLevel()
	if err != nil {
		t.Fatal(err)
	}

	// Per-hour power: bldgLevel * bldgProfile[h] must equal the area-weighted
	// sum of level_room * profile_room[h].
	for h := 0; h < HoursPerDay; h++ {
		var want float64
		for _, rt := range bt.RoomTypes() {
			level, err := g.Level(rt)
			if err != nil {
				t.Fatal(err)
			}
			p, err := g.Profile(rt)
			if err != nil {
				t.Fatal(err)
			}
			want += bt.AreaFraction(rt) * level * p[h]
		}
		assert.InDelta(t, want, bldgLevel*bldgProfile[h], 1e-9, "hour %d", h)
	}
}
