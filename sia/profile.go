package sia

import "fmt"

// ExpandMonthlyToHourly expands 12 monthly factors and a 24-hour daily
// template into a full-year hourly profile: each hour's value is the month's
// factor multiplied by the hour-of-day template value.
func ExpandMonthlyToHourly(monthly, daily []float64) ([]float64, error) {
	if len(monthly) != MonthsPerYear {
		return nil, fmt.Errorf("monthly profile has %d values, want %d", len(monthly), MonthsPerYear)
	}
	if len(daily) != HoursPerDay {
		return nil, fmt.Errorf("daily profile has %d values, want %d", len(daily), HoursPerDay)
	}
	out := make([]float64, HoursPerYear)
	for day := 0; day < DaysPerYear; day++ {
		m := monthOfDay[day]
		base := day * HoursPerDay
		for h := 0; h < HoursPerDay; h++ {
			out[base+h] = monthly[m] * daily[h]
		}
	}
	return out, nil
}

// ApplyRestdayOverride replaces all 24 values of every rest day with
// restdayValue. Weekdays are numbered 0=Monday; the trailing restDaysPerWeek
// days of each week are rest days (2 rest days = Saturday and Sunday).
// startWeekday anchors January 1st. Returns a new slice.
func ApplyRestdayOverride(profile []float64, restDaysPerWeek int, restdayValue float64, startWeekday int) []float64 {
	out := make([]float64, len(profile))
	copy(out, profile)
	if restDaysPerWeek <= 0 {
		return out
	}
	for day := 0; day*HoursPerDay < len(out); day++ {
		weekday := (startWeekday + day) % DaysPerWeek
		if weekday < DaysPerWeek-restDaysPerWeek {
			continue
		}
		base := day * HoursPerDay
		for h := 0; h < HoursPerDay && base+h < len(out); h++ {
			out[base+h] = restdayValue
		}
	}
	return out
}

// OverlayOnCondition returns a copy of profile with source's value taken
// wherever cond is true. All slices must have equal length.
func OverlayOnCondition(profile, source []float64, cond []bool) ([]float64, error) {
	if len(profile) != len(source) || len(profile) != len(cond) {
		return nil, fmt.Errorf("overlay length mismatch: profile %d, source %d, condition %d", len(profile), len(source), len(cond))
	}
	out := make([]float64, len(profile))
	copy(out, profile)
	for i, night := range cond {
		if night {
			out[i] = source[i]
		}
	}
	return out, nil
}

// ConstantProfile returns an n-value profile filled with v.
func ConstantProfile(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// clampProfile clamps every value of profile to [minValue, maxValue] in place
// and returns it.
func clampProfile(profile []float64, minValue, maxValue float64) []float64 {
	for i, v := range profile {
		if v < minValue {
			profile[i] = minValue
		} else if v > maxValue {
			profile[i] = maxValue
		}
	}
	return profile
}
