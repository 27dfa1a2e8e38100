package sia

import "testing"

func TestExpandMonthlyToHourly_Length(t *testing.T) {
	monthly := ConstantProfile(1, MonthsPerYear)
	daily := ConstantProfile(0.5, HoursPerDay)
	out, err := ExpandMonthlyToHourly(monthly, daily)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != HoursPerYear {
		t.Fatalf("length %d, want %d", len(out), HoursPerYear)
	}
}

func TestExpandMonthlyToHourly_MonthBoundary(t *testing.T) {
	// GIVEN January factor 1.0 and February factor 0.5
	monthly := ConstantProfile(1, MonthsPerYear)
	monthly[1] = 0.5
	daily := ConstantProfile(0.8, HoursPerDay)
	out, err := ExpandMonthlyToHourly(monthly, daily)
	if err != nil {
		t.Fatal(err)
	}
	// THEN the last hour of January carries the January factor and the
	// first hour of February the February factor.
	lastJan := 31*HoursPerDay - 1
	if out[lastJan] != 0.8 {
		t.Errorf("last January hour = %g, want 0.8", out[lastJan])
	}
	if out[lastJan+1] != 0.4 {
		t.Errorf("first February hour = %g, want 0.4", out[lastJan+1])
	}
}

func TestExpandMonthlyToHourly_RejectsWrongLengths(t *testing.T) {
	if _, err := ExpandMonthlyToHourly(ConstantProfile(1, 11), ConstantProfile(1, HoursPerDay)); err == nil {
		t.Error("expected error for 11-month profile")
	}
	if _, err := ExpandMonthlyToHourly(ConstantProfile(1, MonthsPerYear), ConstantProfile(1, 23)); err == nil {
		t.Error("expected error for 23-hour profile")
	}
}

func TestApplyRestdayOverride_TwoRestDays(t *testing.T) {
	// GIVEN a constant non-zero profile and a year starting on Monday
	profile := ConstantProfile(0.7, HoursPerYear)
	out := ApplyRestdayOverride(profile, 2, 0.1, 0)

	overridden := 0
	for _, v := range out {
		if v == 0.1 {
			overridden++
		}
	}
	// THEN 104 full rest days are overridden: 52 complete weeks; the one
	// leftover day of the 365-day year is a Monday.
	fullWeeks := DaysPerYear / DaysPerWeek
	want := fullWeeks * 2 * HoursPerDay
	if overridden != want {
		t.Errorf("overridden %d hours, want %d", overridden, want)
	}
}

func TestApplyRestdayOverride_WeekdayAnchoring(t *testing.T) {
	// Year starting on Sunday (weekday 6): day 0 is a rest day.
	profile := ConstantProfile(1, HoursPerYear)
	out := ApplyRestdayOverride(profile, 2, 0, 6)
	if out[0] != 0 {
		t.Error("day 0 should be a rest day when the year starts on Sunday")
	}
	if out[HoursPerDay] != 1 {
		t.Error("day 1 (Monday) should not be a rest day")
	}
}

func TestApplyRestdayOverride_ZeroRestDaysIsIdentity(t *testing.T) {
	profile := ConstantProfile(0.3, HoursPerYear)
	out := ApplyRestdayOverride(profile, 0, 0.9, 0)
	for i, v := range out {
		if v != 0.3 {
			t.Fatalf("hour %d changed to %g", i, v)
		}
	}
}

func TestOverlayOnCondition(t *testing.T) {
	profile := []float64{1, 2, 3, 4}
	source := []float64{9, 9, 9, 9}
	cond := []bool{false, true, false, true}
	out, err := OverlayOnCondition(profile, source, cond)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 9, 3, 9}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: got %g, want %g", i, out[i], want[i])
		}
	}
}

func TestMonthOfHour(t *testing.T) {
	if m := MonthOfHour(0); m != 0 {
		t.Errorf("first hour in month %d, want 0 (January)", m)
	}
	if m := MonthOfHour(31*HoursPerDay - 1); m != 0 {
		t.Errorf("last January hour in month %d, want 0", m)
	}
	if m := MonthOfHour(31 * HoursPerDay); m != 1 {
		t.Errorf("first February hour in month %d, want 1", m)
	}
	if m := MonthOfHour(HoursPerYear - 1); m != 11 {
		t.Errorf("last hour in month %d, want 11 (December)", m)
	}
}
