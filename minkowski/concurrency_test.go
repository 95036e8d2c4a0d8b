// Package minkowski_test verifies the calculator is safe to call from many
// goroutines sharing the same read-only inputs.
package minkowski_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvdist/minkowski"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentDistance runs every call shape concurrently over shared slices
// and checks each goroutine sees the sequential answer.
func TestConcurrentDistance(t *testing.T) {
	x := []float64{2, 4, 5, 3, 8, 2}
	y := []float64{3, 1, 5, -3, 7, 2}
	metric, err := minkowski.NewMetric(3)
	require.NoError(t, err)

	want := map[string]float64{}
	calls := map[string]func() (float64, bool, error){
		"Distance":  func() (float64, bool, error) { return minkowski.Distance(x, y) },
		"DistanceP": func() (float64, bool, error) { return minkowski.DistanceP(x, y, minkowski.Chebyshev) },
		"DistanceFunc": func() (float64, bool, error) {
			return minkowski.DistanceFunc(x, y, 1, func(v float64, _ int, _ minkowski.Source) float64 { return v })
		},
		"DistanceAny": func() (float64, bool, error) { return minkowski.DistanceAny(x, y, map[string]any{"p": 0.5}) },
		"Metric":      func() (float64, bool, error) { return metric.Distance(x, y) },
	}
	for name, call := range calls {
		d, ok, err := call()
		require.NoError(t, err)
		require.True(t, ok)
		want[name] = d
	}

	const workers = 64 // goroutines per call shape
	var g errgroup.Group
	for name, call := range calls {
		name, call := name, call
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				d, ok, err := call()
				if err != nil {
					return err
				}
				if !ok || d != want[name] {
					return fmt.Errorf("%s: got (%v, %v), want %v", name, d, ok, want[name])
				}
				return nil
			})
		}
	}
	require.NoError(t, g.Wait())
}
