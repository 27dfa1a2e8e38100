package sia

// ActivityHeatGainCalculator serves the metabolic heat gain per person
// (W/person) per room type and its building-level aggregation.
type ActivityHeatGainCalculator struct {
	data BaseData
	bt   *BuildingType
}

// NewActivityHeatGainCalculator creates a calculator for one building type.
func NewActivityHeatGainCalculator(data BaseData, bt *BuildingType) *ActivityHeatGainCalculator {
	return &ActivityHeatGainCalculator{data: data, bt: bt}
}

// HeatGainForRoom returns the nominal activity heat gain of one room type.
func (c *ActivityHeatGainCalculator) HeatGainForRoom(rt RoomType) (float64, error) {
	return c.data.ActivityHeatGain(rt)
}

// HeatGainForBldg aggregates the per-room gains weighted by each room's
// share of the building's people, so unoccupied rooms contribute nothing.
// Returns 0 for a building with no occupied rooms.
func (c *ActivityHeatGainCalculator) HeatGainForBldg(app *AreaPerPersonCalculator) (float64, error) {
	totalDensity, err := app.personDensity()
	if err != nil {
		return 0, err
	}
	if totalDensity == 0 {
		return 0, nil
	}
	weighted, err := c.bt.SynthesizeValueByRoomArea(func(rt RoomType) (float64, error) {
		roomApp, err := app.AreaPerPersonForRoom(rt)
		if err != nil {
			return 0, err
		}
		if roomApp == 0 {
			return 0, nil
		}
		gain, err := c.HeatGainForRoom(rt)
		if err != nil {
			return 0, err
		}
		return gain / roomApp, nil
	})
	if err != nil {
		return 0, err
	}
	return weighted / totalDensity, nil
}
