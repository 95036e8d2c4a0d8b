package minkowski

import (
	"math"
)

// Minkowski distance
//
// Description:
//
//	The Minkowski distance of order p between two equal-length sequences
//	generalizes the common vector distances:
//	  p = 1   → Manhattan (city-block)
//	  p = 2   → Euclidean (default)
//	  p → ∞  → Chebyshev (max-norm), selected with p = +Inf
//
// Algorithm Outline:
//  1. Validate: len(x) == len(y), p > 0 (or +Inf), accessor invocable.
//  2. If N == 0 return "no result": the distance over an empty domain is
//     undefined, which is different from a distance of 0.
//  3. For i = 0..N-1:
//     xi = accessor(x[i], i, SourceX); yi = accessor(y[i], i, SourceY)
//     di = |xi - yi|
//  4. p = +Inf: result = max(d0, d1, ..., dN-1).
//     Otherwise:  result = (Σ di^p)^(1/p).
//
// Numeric policy:
//
//	Plain float64 arithmetic. No overflow guards: ±Inf and NaN produced by the
//	inputs or by Pow propagate to the result unchanged.
//
// Complexity:
//
//	Time   = O(N)
//	Memory = O(1)
//
// Results:
//
//	Every entry point returns (dist, ok, err). ok == false with err == nil
//	means the inputs were empty and there is no distance to report; callers
//	must check ok before using dist.

// valueAt yields the projected value of x[i] (SourceX) or y[i] (SourceY).
type valueAt func(i int, src Source) (float64, error)

// Distance returns the Euclidean (p = 2) distance between x and y.
func Distance[N Number](x, y []N) (float64, bool, error) {
	return DistanceP(x, y, DefaultOrder)
}

// DistanceP returns the Minkowski distance of order p between x and y.
//
// Errors:
//   - ErrLengthMismatch: len(x) != len(y).
//   - ErrInvalidOrder  : p is NaN, zero or negative.
func DistanceP[N Number](x, y []N, p Order) (float64, bool, error) {
	if err := validate(len(x), len(y), p); err != nil {
		return 0, false, err
	}

	return accumulate(len(x), p, numericAt(x, y))
}

// DistanceFunc returns the Minkowski distance of order p between the values
// acc projects out of x and y.
//
// Errors:
//   - ErrLengthMismatch : len(x) != len(y).
//   - ErrInvalidOrder   : p is NaN, zero or negative.
//   - ErrInvalidAccessor: acc is nil.
func DistanceFunc[T any](x, y []T, p Order, acc Accessor[T]) (float64, bool, error) {
	if err := validate(len(x), len(y), p); err != nil {
		return 0, false, err
	}
	if acc == nil {
		return 0, false, argErrorf("accessor", ErrInvalidAccessor)
	}

	return accumulate(len(x), p, accessorAt(x, y, acc))
}

// DistanceWith is the configuration-struct form: omitted fields of opts take
// their defaults (P = DefaultOrder, no accessor).
//
// Without an accessor the element type must be numeric; otherwise the call
// fails with ErrNotASequence.
//
// Example:
//
//	dist, ok, err := DistanceWith(a, b, Options[float64]{P: Manhattan})
func DistanceWith[T any](x, y []T, opts Options[T]) (float64, bool, error) {
	if opts.Accessor == nil {
		if err := checkElemType[T](); err != nil {
			return 0, false, err
		}
	}
	p := opts.order()
	if err := validate(len(x), len(y), p); err != nil {
		return 0, false, err
	}
	if opts.Accessor == nil {
		return accumulate(len(x), p, identityAt(x, y))
	}

	return accumulate(len(x), p, accessorAt(x, y, opts.Accessor))
}

// ManhattanDistance returns the city-block (p = 1) distance between x and y.
func ManhattanDistance[N Number](x, y []N) (float64, bool, error) {
	return DistanceP(x, y, Manhattan)
}

// EuclideanDistance returns the p = 2 distance between x and y.
func EuclideanDistance[N Number](x, y []N) (float64, bool, error) {
	return DistanceP(x, y, Euclidean)
}

// ChebyshevDistance returns the largest absolute per-index difference.
func ChebyshevDistance[N Number](x, y []N) (float64, bool, error) {
	return DistanceP(x, y, Chebyshev)
}

// accumulate runs the single pass over n index pairs. Inputs are validated.
func accumulate(n int, p Order, at valueAt) (float64, bool, error) {
	if n == 0 {
		return 0, false, nil
	}

	if p.IsChebyshev() {
		var dist float64
		for i := 0; i < n; i++ {
			d, err := absDiff(i, at)
			if err != nil {
				return 0, false, err
			}
			if i == 0 {
				dist = d
				continue
			}
			// math.Max keeps NaN, a bare comparison would drop it.
			dist = math.Max(dist, d)
		}

		return dist, true, nil
	}

	pf := float64(p)
	var sum float64
	for i := 0; i < n; i++ {
		d, err := absDiff(i, at)
		if err != nil {
			return 0, false, err
		}
		sum += math.Pow(d, pf)
	}

	return math.Pow(sum, 1/pf), true, nil
}

// absDiff projects x[i] then y[i] and returns |xi - yi|.
func absDiff(i int, at valueAt) (float64, error) {
	xi, err := at(i, SourceX)
	if err != nil {
		return 0, err
	}
	yi, err := at(i, SourceY)
	if err != nil {
		return 0, err
	}

	return math.Abs(xi - yi), nil
}

func numericAt[N Number](x, y []N) valueAt {
	return func(i int, src Source) (float64, error) {
		if src == SourceY {
			return float64(y[i]), nil
		}

		return float64(x[i]), nil
	}
}

func accessorAt[T any](x, y []T, acc Accessor[T]) valueAt {
	return func(i int, src Source) (float64, error) {
		if src == SourceY {
			return acc(y[i], i, src), nil
		}

		return acc(x[i], i, src), nil
	}
}

// identityAt converts elements of an interface-typed or numeric T at run time.
func identityAt[T any](x, y []T) valueAt {
	return func(i int, src Source) (float64, error) {
		var elem any
		if src == SourceY {
			elem = y[i]
		} else {
			elem = x[i]
		}

		return elementValue(elem, i, src)
	}
}
