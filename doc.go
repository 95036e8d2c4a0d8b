// Package lvdist is a small collection of distance measures for numeric
// sequences: pure Go, explicit errors, documented defaults.
//
// 🚀 What is in lvdist?
//
//	minkowski/  Minkowski (p-norm) distance: Manhattan, Euclidean, Chebyshev
//	            and every order in between, with accessor callbacks and
//	            configuration-object support.
//
// ✨ Why choose lvdist?
//
//   - Beginner-friendly – one call, clear names, (dist, ok, err) results
//   - Rock-solid guarantees – sentinel errors matched with errors.Is, no panics on input
//   - Pure Go – no cgo, stateless, safe for concurrent use
//
// Runnable demonstrations live in examples/.
//
//	go get github.com/katalvlaran/lvdist
package lvdist
