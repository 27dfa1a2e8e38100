package sia

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lightingFixture struct {
	data      *stubData
	occupancy *OccupancyGenerator
	lighting  *LightingGenerator
}

func newLightingUnderTest(t *testing.T, data *stubData, bldgName string, seed int64) *lightingFixture {
	t.Helper()
	cfg := DefaultEngineConfig().Profile
	bt, err := data.BuildingTypeByName(bldgName)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	monthly := NewMonthlyVariationGenerator(data, bt, 0, rng)
	night := NewNighttimeGenerator(cfg, rng)
	occ := NewOccupancyGenerator(data, bt, cfg, monthly, night, rng)
	return &lightingFixture{
		data:      data,
		occupancy: occ,
		lighting:  NewLightingGenerator(data, bt, monthly, night, occ, rng),
	}
}

func TestLighting_FollowsOccupancy(t *testing.T) {
	room := newStubRoom()
	room.lightingFollows = true
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	f := newLightingUnderTest(t, data, "OFFICE", 42)

	light, err := f.lighting.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	occ, err := f.occupancy.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, occ, light)
}

func TestLighting_GatedByOccupancy(t *testing.T) {
	room := newStubRoom()
	room.lightingFollows = false
	room.lightOff = 0.05
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	f := newLightingUnderTest(t, data, "OFFICE", 42)

	light, err := f.lighting.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	// Occupied hours carry the monthly value (all 1.0 in the stub), empty
	// hours carry the off value.
	for h := 0; h < HoursPerDay; h++ {
		if h >= 8 && h < 18 {
			assert.Equal(t, 1.0, light[h], "hour %d", h)
		} else {
			assert.Equal(t, 0.05, light[h], "hour %d", h)
		}
	}
}

func TestLighting_OffDuringNightOverride(t *testing.T) {
	room := newStubRoom()
	// Occupied around the clock so the night override is visible.
	for h := range room.occupancyDaily {
		room.occupancyDaily[h] = 1.0
	}
	room.lightingFollows = true
	room.lightOffNight = true
	room.lightOff = 0
	data := singleRoomStub(RoomTypeBedroom, room, "MFH", true)
	f := newLightingUnderTest(t, data, "MFH", 42)

	light, err := f.lighting.Profile(RoomTypeBedroom)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultEngineConfig().Profile
	for h := 0; h < HoursPerDay; h++ {
		isNight := h >= cfg.NightStartHour || h < cfg.NightEndHour
		if isNight {
			assert.Equal(t, 0.0, light[h], "hour %d should be off at night", h)
		} else {
			assert.Equal(t, 1.0, light[h], "hour %d", h)
		}
	}
}

func TestLighting_ProfileCached(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	f := newLightingUnderTest(t, data, "OFFICE", 42)

	first, err := f.lighting.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.lighting.Profile(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, first, second)
}

func TestLighting_NominalDensityAndSetpoint(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	f := newLightingUnderTest(t, data, "OFFICE", 42)

	density, err := f.lighting.Density(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, room.lightingDensity.Std, density)

	setpoint, err := f.lighting.Setpoint(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, room.lightingSetpoint, setpoint)
}

func TestLighting_VariableDensityStaysNonNegativeAndMemoized(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)
	f := newLightingUnderTest(t, data, "OFFICE", 42)
	f.lighting.ActivateDensityVariability()

	first, err := f.lighting.Density(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.lighting.Density(RoomTypeSingleOffice)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0.0)
}

func TestLighting_SetpointVariabilityCenteredOnNominal(t *testing.T) {
	room := newStubRoom()
	data := singleRoomStub(RoomTypeSingleOffice, room, "OFFICE", false)

	// Distinct seeds give distinct draws; their mean converges to the
	// nominal setpoint.
	var sum float64
	const n = 500
	for seed := int64(0); seed < n; seed++ {
		f := newLightingUnderTest(t, data, "OFFICE", seed)
		f.lighting.ActivateSetpointVariability(0.1)
		v, err := f.lighting.Setpoint(RoomTypeSingleOffice)
		if err != nil {
			t.Fatal(err)
		}
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, room.lightingSetpoint, sum/n, room.lightingSetpoint*0.02)
}
