package minkowski_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdist/minkowski"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistanceP
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same pair of 6-dimensional feature vectors under three norms.
//	  a = [2, 4, 5, 3, 8, 2]
//	  b = [3, 1, 5, -3, 7, 2]
//
// Complexity: O(N) time, O(1) memory
func ExampleDistanceP() {
	a := []float64{2, 4, 5, 3, 8, 2}
	b := []float64{3, 1, 5, -3, 7, 2}

	for _, p := range []minkowski.Order{minkowski.Manhattan, minkowski.Euclidean, minkowski.Chebyshev} {
		dist, ok, err := minkowski.DistanceP(a, b, p)
		if err != nil || !ok {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("p=%s distance=%.6f\n", p, dist)
	}
	// Output:
	// p=1 distance=11.000000
	// p=2 distance=6.855655
	// p=inf distance=6.000000
}

// ExampleDistanceFunc projects the second component of (index, value) pairs.
func ExampleDistanceFunc() {
	x := [][2]float64{{1, 2}, {2, 4}, {3, 5}, {4, 3}, {5, 8}, {6, 2}}
	y := [][2]float64{{1, 3}, {2, 1}, {3, 5}, {4, 3}, {5, 7}, {6, 2}}

	value := func(d [2]float64, _ int, _ minkowski.Source) float64 { return d[1] }

	dist, _, _ := minkowski.DistanceFunc(x, y, minkowski.Manhattan, value)
	fmt.Println(dist)
	// Output:
	// 5
}

// ExampleDistanceWith uses the configuration-struct form with an omitted order.
func ExampleDistanceWith() {
	type sample struct {
		Label string
		Value float64
	}
	a := []sample{{"t0", 1.5}, {"t1", 2.0}, {"t2", 0.3}}
	b := []sample{{"t0", 1.0}, {"t1", 4.0}, {"t2", 0.0}}

	dist, ok, err := minkowski.DistanceWith(a, b, minkowski.Options[sample]{
		Accessor: func(s sample, _ int, _ minkowski.Source) float64 { return s.Value },
	})
	if err != nil || !ok {
		fmt.Println("no distance:", err)

		return
	}
	fmt.Printf("euclidean=%.4f\n", dist)
	// Output:
	// euclidean=2.0833
}

// ExampleDistance_empty shows the "no result" sentinel for empty input.
func ExampleDistance_empty() {
	dist, ok, err := minkowski.Distance([]float64{}, []float64{})
	fmt.Println(dist, ok, err)
	// Output:
	// 0 false <nil>
}

// ExampleDistance_errors shows matching the sentinel errors.
func ExampleDistance_errors() {
	_, _, err := minkowski.DistanceP([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, 2)
	fmt.Println(errors.Is(err, minkowski.ErrLengthMismatch))

	_, _, err = minkowski.DistanceP([]float64{1, 2}, []float64{3, 4}, 0)
	fmt.Println(errors.Is(err, minkowski.ErrInvalidOrder))
	// Output:
	// true
	// true
}

// ExampleDistanceAny evaluates a configuration object built at run time.
func ExampleDistanceAny() {
	x := []any{2, 4, 5, 3, 8, 2}
	y := []any{3, 1, 5, -3, 0, 2}

	dist, _, err := minkowski.DistanceAny(x, y, map[string]any{"p": "3"})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", dist)
	// Output:
	// 9.1098
}

// ExampleParseOrder reads the order from configuration text.
func ExampleParseOrder() {
	for _, s := range []string{"manhattan", "2.5", "chebyshev"} {
		p, err := minkowski.ParseOrder(s)
		if err != nil {
			fmt.Println("error:", err)

			continue
		}
		fmt.Println(p)
	}
	// Output:
	// 1
	// 2.5
	// inf
}
