// Package minkowski computes the Minkowski distance (the p-norm of the
// difference) between two equal-length sequences of numbers, or of arbitrary
// elements projected to numbers by an accessor.
//
// 🚀 What is the Minkowski distance?
//
//	D_p(x, y) = ( Σ |x_i − y_i|^p )^(1/p)
//
//	  • p = 1  → Manhattan / city-block distance
//	  • p = 2  → Euclidean distance (the default)
//	  • p = +∞ → Chebyshev distance, max_i |x_i − y_i|
//
//	It is the building block behind k-means, k-NN and hierarchical clustering.
//
// ✨ Key features:
//   - typed generic API over every integer and float kind
//   - accessor callbacks with an x/y Source discriminator for struct or tuple elements
//   - Options struct form with documented defaults, plus DistanceAny/OptionsFromMap
//     for configuration objects that arrive untyped
//   - Order codecs (text and YAML) so the metric can live in config files
//   - explicit "no result" for empty input: (0, false, nil)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvdist/minkowski"
//
//	dist, ok, err := minkowski.DistanceP(a, b, minkowski.Manhattan)
//	if err != nil {
//	  // ErrLengthMismatch, ErrInvalidOrder, ...
//	}
//	if !ok {
//	  // empty input: distance undefined
//	}
//
// Every function is pure and safe for concurrent use.
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(1)
package minkowski
