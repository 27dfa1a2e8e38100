package sia

// Parameters is the terminal output record: one complete set of
// building-operation parameters for one (building type, variability
// scenario) pair. Immutable once returned by the factory; persisted
// verbatim by the params manager.
type Parameters struct {
	Name              string
	BuildingTypeName  string
	SourceDescription string
	VariabilityActive bool
	DrawNumber        int

	FloorAreaPerPerson float64 // m2/person
	ActivityHeatGain   float64 // W/person
	OccupancyProfile   []float64

	ApplianceLevel   float64 // W/m2
	ApplianceProfile []float64

	LightingDensity  float64 // W/m2
	LightingSetpoint float64 // lux
	LightingProfile  []float64

	DHWPowerPerArea float64 // W/m2
	DHWLitersPerDay float64 // l/(day person)
	DHWProfile      []float64

	HeatingSetpointProfile []float64 // degC
	CoolingSetpointProfile []float64 // degC

	VentilationRate    float64 // m3/(h m2)
	VentilationProfile []float64

	InfiltrationRate    float64 // ACH
	InfiltrationProfile []float64
}
