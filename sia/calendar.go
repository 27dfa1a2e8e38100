package sia

// Calendar constants for the non-leap profile year used throughout the
// SIA 2024 schedules. Hour-of-year indices are 0-based internally; the
// persisted tabular format labels rows 1..8760.
const (
	HoursPerDay   = 24
	DaysPerWeek   = 7
	DaysPerYear   = 365
	HoursPerYear  = DaysPerYear * HoursPerDay
	MonthsPerYear = 12
)

// daysPerMonth holds the non-leap month lengths, January first.
var daysPerMonth = [MonthsPerYear]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthOfDay maps day-of-year (0-based) to month index (0-based).
var monthOfDay = buildMonthOfDay()

func buildMonthOfDay() [DaysPerYear]int {
	var table [DaysPerYear]int
	day := 0
	for m := 0; m < MonthsPerYear; m++ {
		for d := 0; d < daysPerMonth[m]; d++ {
			table[day] = m
			day++
		}
	}
	return table
}

// MonthOfDay returns the 0-based month index for a 0-based day-of-year.
func MonthOfDay(day int) int {
	return monthOfDay[day]
}

// MonthOfHour returns the 0-based month index for a 0-based hour-of-year.
func MonthOfHour(hour int) int {
	return monthOfDay[hour/HoursPerDay]
}
