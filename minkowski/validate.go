// SPDX-License-Identifier: MIT
// Package: minkowski
//
// Purpose:
//  - Single source of truth for the argument checks shared by the typed and
//    dynamic entry points.
//  - Conversion of untyped elements to float64 when no accessor is given.
//
// Determinism & Performance:
//  - All checks are pure and allocate only on the error path.

package minkowski

import (
	"fmt"
	"reflect"
)

// validate checks the length invariant and then the order.
func validate(nx, ny int, p Order) error {
	if err := validateLengths(nx, ny); err != nil {
		return err
	}

	return p.Validate()
}

func validateLengths(nx, ny int) error {
	if nx != ny {
		return fmt.Errorf("len(x)=%d, len(y)=%d: %w", nx, ny, ErrLengthMismatch)
	}

	return nil
}

// checkElemType rejects element types that can never be numeric. Interface
// element types pass here and are checked per element by elementValue.
func checkElemType[T any]() error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Interface || isNumericKind(t.Kind()) {
		return nil
	}

	return argErrorf("x", fmt.Errorf("element type %s: %w", t, ErrNotASequence))
}

// elementValue converts x[i] or y[i] to float64 for the identity projection.
func elementValue(elem any, i int, src Source) (float64, error) {
	f, ok := toFloat64(elem)
	if !ok {
		return 0, argErrorf(fmt.Sprintf("%s[%d]", src, i), fmt.Errorf("element of type %T: %w", elem, ErrNotASequence))
	}

	return f, nil
}

// toFloat64 converts any integer or float kind, including named types.
// Bools, strings and everything else are rejected.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
