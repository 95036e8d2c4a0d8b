// SPDX-License-Identifier: MIT
// Package minkowski: sentinel error set.
// Every public entry point returns one of these sentinels (optionally wrapped
// with call-site context) and tests match them via errors.Is. No function in
// this package panics on user input.

package minkowski

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "minkowski: ...". Each specific sentinel wraps
// ErrInvalidArgument, so callers that only care about "bad input" can match the
// umbrella and callers that branch on the cause can match the specific one.
//
// ERROR PRIORITY (enforced in tests):
// x not a sequence -> y not a sequence -> length mismatch -> order -> accessor.

var (
	// ErrInvalidArgument is the umbrella for every contract violation below.
	ErrInvalidArgument = errors.New("minkowski: invalid argument")

	// ErrNotASequence indicates that x or y is not an ordered sequence of values,
	// or that an element could not be used as a number without an accessor.
	ErrNotASequence = fmt.Errorf("%w: not a sequence of numbers", ErrInvalidArgument)

	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = fmt.Errorf("%w: x and y must have the same length", ErrInvalidArgument)

	// ErrInvalidOrder indicates that p is NaN, zero, negative or not a number.
	ErrInvalidOrder = fmt.Errorf("%w: order p must be a positive number or +Inf", ErrInvalidArgument)

	// ErrInvalidAccessor indicates an accessor was supplied but cannot be invoked.
	ErrInvalidAccessor = fmt.Errorf("%w: accessor must be a function", ErrInvalidArgument)

	// ErrInvalidOptions indicates the configuration-object argument is not a
	// supported options container.
	ErrInvalidOptions = fmt.Errorf("%w: options must be Options or map[string]any", ErrInvalidArgument)
)

// argErrorf wraps a sentinel with the name of the offending argument.
func argErrorf(arg string, err error) error {
	return fmt.Errorf("%s: %w", arg, err)
}
