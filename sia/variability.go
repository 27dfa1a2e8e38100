package sia

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// triangPerc is the CDF mass left outside [targetMin, targetMax] on each
// side when deriving triangular distribution limits from a SIA triple.
const triangPerc = 0.05

// RandomizeVertical draws each output value uniformly from
// [value-band, value+band] and clamps it to [minValue, maxValue].
// Pure: returns a new slice of the same length.
func RandomizeVertical(rng *rand.Rand, values []float64, band, minValue, maxValue float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		r := v + (rng.Float64()*2-1)*band
		out[i] = math.Min(maxValue, math.Max(minValue, r))
	}
	return out
}

// HorizontalVariability shuffles the values of a full-year hourly profile
// within contiguous blocks delimited by the given break hours of the day.
// Breaks may wrap past midnight: breaks [8,17,20] yield blocks 9-17h,
// 18-20h and 21h-8h-next-day. Order across blocks is preserved; values
// within a block are randomly permuted, so the multiset of values never
// changes. Empty breaks return an unmodified copy.
//
// Panics if the profile is not exactly HoursPerYear long.
func HorizontalVariability(rng *rand.Rand, profile []float64, breaksPerDay []int) []float64 {
	if len(profile) != HoursPerYear {
		panic(fmt.Sprintf("horizontal variability requires a %d-hour profile, got %d values", HoursPerYear, len(profile)))
	}
	out := make([]float64, len(profile))
	copy(out, profile)
	if len(breaksPerDay) == 0 {
		return out
	}

	breaks := append([]int(nil), breaksPerDay...)
	sort.Ints(breaks)

	// Block boundary after hour b of each day. The leading hours of January 1st
	// before the first break form the stub of the wrapped overnight block.
	prev := 0
	for day := 0; day < DaysPerYear; day++ {
		for _, b := range breaks {
			bound := day*HoursPerDay + b + 1
			shuffleBlock(rng, out[prev:bound])
			prev = bound
		}
	}
	shuffleBlock(rng, out[prev:])
	return out
}

func shuffleBlock(rng *rand.Rand, block []float64) {
	rng.Shuffle(len(block), func(i, j int) {
		block[i], block[j] = block[j], block[i]
	})
}

// TriangDistLimits widens [targetMin, targetMax] into actual triangular
// distribution limits (a, b) such that a draw from Triangular(a, b, peak)
// falls below targetMin with probability perc and above targetMax with
// probability perc. This keeps the standard's reported extremes at the
// stated percentiles instead of making them near-zero-probability tail
// points of the triangle.
//
// Degenerate case: targetMin == targetMax == peak is returned unchanged.
//
// Solved with a damped Newton iteration on
//
//	(targetMin-a)^2 / ((b-a)(peak-a)) = perc
//	(b-targetMax)^2 / ((b-a)(b-peak)) = perc
//
// starting from (targetMin-1, targetMax+1).
func TriangDistLimits(targetMin, targetMax, peak, perc float64) (float64, float64, float64, error) {
	if targetMin == targetMax && targetMax == peak {
		return targetMin, targetMax, peak, nil
	}

	residual := func(a, b float64) (float64, float64) {
		f1 := (targetMin-a)*(targetMin-a)/((b-a)*(peak-a)) - perc
		f2 := (b-targetMax)*(b-targetMax)/((b-a)*(b-peak)) - perc
		return f1, f2
	}
	valid := func(a, b float64) bool {
		return a < peak && peak < b
	}

	const (
		tol     = 1e-10
		maxIter = 200
		h       = 1e-7
	)
	a, b := targetMin-1, targetMax+1
	if !valid(a, b) {
		// peak coincides with one of the targets; nudge the guess outward.
		a = math.Min(a, peak-1)
		b = math.Max(b, peak+1)
	}

	jac := mat.NewDense(2, 2, nil)
	rhs := mat.NewVecDense(2, nil)
	var step mat.VecDense
	for iter := 0; iter < maxIter; iter++ {
		f1, f2 := residual(a, b)
		if math.Abs(f1) < tol && math.Abs(f2) < tol {
			return a, b, peak, nil
		}

		f1a, f2a := residual(a+h, b)
		f1b, f2b := residual(a, b+h)
		jac.Set(0, 0, (f1a-f1)/h)
		jac.Set(0, 1, (f1b-f1)/h)
		jac.Set(1, 0, (f2a-f2)/h)
		jac.Set(1, 1, (f2b-f2)/h)
		rhs.SetVec(0, -f1)
		rhs.SetVec(1, -f2)
		if err := step.SolveVec(jac, rhs); err != nil {
			return 0, 0, 0, fmt.Errorf("triangular limit search: singular Jacobian at (%.6g, %.6g): %w", a, b, err)
		}

		// Halve the step until it stays inside the admissible region a < peak < b.
		damp := 1.0
		na, nb := a+step.AtVec(0), b+step.AtVec(1)
		for !valid(na, nb) && damp > 1e-6 {
			damp /= 2
			na, nb = a+damp*step.AtVec(0), b+damp*step.AtVec(1)
		}
		if !valid(na, nb) {
			return 0, 0, 0, fmt.Errorf("triangular limit search left admissible region for (min=%g, max=%g, peak=%g)", targetMin, targetMax, peak)
		}
		a, b = na, nb
	}
	return 0, 0, 0, fmt.Errorf("triangular limit search did not converge for (min=%g, max=%g, peak=%g, perc=%g)", targetMin, targetMax, peak, perc)
}

// RandomTriangular draws one value from Triangular(min, max, peak) by
// inverse CDF. Short-circuits to peak when min == max == peak.
func RandomTriangular(rng *rand.Rand, min, max, peak float64) float64 {
	if min == max && max == peak {
		return peak
	}
	u := rng.Float64()
	fc := (peak - min) / (max - min)
	if u < fc {
		return min + math.Sqrt(u*(max-min)*(peak-min))
	}
	return max - math.Sqrt((1-u)*(max-min)*(max-peak))
}

// RandomNormal draws one value from Normal(mean, stddev).
func RandomNormal(rng *rand.Rand, mean, stddev float64) float64 {
	return rng.NormFloat64()*stddev + mean
}

// sampleTriple draws a value from the triangular distribution derived from a
// SIA triple at the standard percentile policy. A degenerate triple returns
// its single value without consuming randomness.
func sampleTriple(rng *rand.Rand, t Triple) (float64, error) {
	if t.IsDegenerate() {
		return t.Std, nil
	}
	a, b, c, err := TriangDistLimits(t.Min, t.Max, t.Std, triangPerc)
	if err != nil {
		return 0, err
	}
	return RandomTriangular(rng, a, b, c), nil
}
