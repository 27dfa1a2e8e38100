package sia

import "fmt"

// BuildingOperation is the per-building operation view handed to downstream
// model builders: the scalar demands and schedules of the parameter set
// assigned to one building.
type BuildingOperation struct {
	Name       string
	NrOfFloors int

	FloorAreaPerPerson float64
	ActivityHeatGain   float64
	OccupancySchedule  []float64

	ApplianceLevel    float64
	ApplianceSchedule []float64

	LightingDensity  float64
	LightingSetpoint float64
	LightingSchedule []float64

	DHWPowerPerArea float64
	DHWSchedule     []float64

	HeatingSetpointSchedule []float64
	CoolingSetpointSchedule []float64

	VentilationRate     float64
	VentilationSchedule []float64
}

// Facade is the public entry point mapping building fids to building types
// and parameter sets. The parameter set for a building is resolved lazily
// on first request and cached, so a building never switches which randomly
// drawn set it uses mid-simulation.
type Facade struct {
	manager   *ParamsManager
	typeByFid map[int]string
	assigned  map[int]*Parameters
}

// NewFacade creates a facade over a prepared manager. typeByFid maps each
// external building id to a building type name.
func NewFacade(typeByFid map[int]string, manager *ParamsManager) *Facade {
	types := make(map[int]string, len(typeByFid))
	for fid, name := range typeByFid {
		types[fid] = name
	}
	return &Facade{
		manager:   manager,
		typeByFid: types,
		assigned:  make(map[int]*Parameters),
	}
}

// paramsFor resolves and pins the parameter set of one building.
func (f *Facade) paramsFor(fid int) (*Parameters, error) {
	if p, ok := f.assigned[fid]; ok {
		return p, nil
	}
	bldgType, ok := f.typeByFid[fid]
	if !ok {
		return nil, fmt.Errorf("no building type assigned to building %d", fid)
	}
	p, err := f.manager.ParamSet(bldgType)
	if err != nil {
		return nil, fmt.Errorf("building %d: %w", fid, err)
	}
	f.assigned[fid] = p
	return p, nil
}

// BuildingOperation returns the operation parameters of one building. All
// calls for the same fid are served from the same underlying parameter set.
func (f *Facade) BuildingOperation(fid, nrOfFloors int) (*BuildingOperation, error) {
	p, err := f.paramsFor(fid)
	if err != nil {
		return nil, err
	}
	return &BuildingOperation{
		Name:                    p.Name,
		NrOfFloors:              nrOfFloors,
		FloorAreaPerPerson:      p.FloorAreaPerPerson,
		ActivityHeatGain:        p.ActivityHeatGain,
		OccupancySchedule:       p.OccupancyProfile,
		ApplianceLevel:          p.ApplianceLevel,
		ApplianceSchedule:       p.ApplianceProfile,
		LightingDensity:         p.LightingDensity,
		LightingSetpoint:        p.LightingSetpoint,
		LightingSchedule:        p.LightingProfile,
		DHWPowerPerArea:         p.DHWPowerPerArea,
		DHWSchedule:             p.DHWProfile,
		HeatingSetpointSchedule: p.HeatingSetpointProfile,
		CoolingSetpointSchedule: p.CoolingSetpointProfile,
		VentilationRate:         p.VentilationRate,
		VentilationSchedule:     p.VentilationProfile,
	}, nil
}

// InfiltrationProfile returns the infiltration schedule of one building,
// from the same parameter set as every other query for this fid.
func (f *Facade) InfiltrationProfile(fid int) ([]float64, error) {
	p, err := f.paramsFor(fid)
	if err != nil {
		return nil, err
	}
	return p.InfiltrationProfile, nil
}

// InfiltrationRate returns the infiltration rate of one building.
func (f *Facade) InfiltrationRate(fid int) (float64, error) {
	p, err := f.paramsFor(fid)
	if err != nil {
		return 0, err
	}
	return p.InfiltrationRate, nil
}
