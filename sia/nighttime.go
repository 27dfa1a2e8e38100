package sia

import "math/rand"

// NighttimeGenerator produces the building-wide nighttime boolean pattern:
// true for every hour between the night start hour and the night end hour.
// Variability shifts both window edges by an independent uniform integer
// number of hours, drawn once per instance so every consumer of the pattern
// sees the same shifted night.
type NighttimeGenerator struct {
	nightStart int
	nightEnd   int
	rng        *rand.Rand

	nominal  []bool
	variable []bool
	active   bool
}

// NewNighttimeGenerator creates a generator for the configured night window.
func NewNighttimeGenerator(cfg ProfileConfig, rng *rand.Rand) *NighttimeGenerator {
	return &NighttimeGenerator{
		nightStart: cfg.NightStartHour,
		nightEnd:   cfg.NightEndHour,
		rng:        rng,
	}
}

// ActivateVariability switches Pattern to a randomized night window. The
// shifted edges are drawn immediately and reused for the generator's
// lifetime. Last activation wins: calling again redraws the window.
func (g *NighttimeGenerator) ActivateVariability(bandHours int) {
	start := g.nightStart
	end := g.nightEnd
	if bandHours > 0 {
		start = shiftHour(g.nightStart, g.rng.Intn(2*bandHours+1)-bandHours)
		end = shiftHour(g.nightEnd, g.rng.Intn(2*bandHours+1)-bandHours)
	}
	g.variable = yearlyNightPattern(start, end)
	g.active = true
}

// NominalPattern returns the non-randomized yearly nighttime pattern.
func (g *NighttimeGenerator) NominalPattern() []bool {
	if g.nominal == nil {
		g.nominal = yearlyNightPattern(g.nightStart, g.nightEnd)
	}
	return g.nominal
}

// Pattern returns the variable pattern once activated, the nominal pattern
// otherwise.
func (g *NighttimeGenerator) Pattern() []bool {
	if g.active {
		return g.variable
	}
	return g.NominalPattern()
}

func shiftHour(hour, by int) int {
	return ((hour+by)%HoursPerDay + HoursPerDay) % HoursPerDay
}

// yearlyNightPattern marks every hour h with start <= h or h < end as night.
// A window with start < end (no midnight wrap) marks start <= h < end.
func yearlyNightPattern(start, end int) []bool {
	daily := make([]bool, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		if start > end {
			daily[h] = h >= start || h < end
		} else {
			daily[h] = h >= start && h < end
		}
	}
	out := make([]bool, HoursPerYear)
	for i := range out {
		out[i] = daily[i%HoursPerDay]
	}
	return out
}
