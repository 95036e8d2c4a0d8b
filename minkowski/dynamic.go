package minkowski

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Option keys understood by OptionsFromMap.
const (
	KeyOrder    = "p"
	KeyAccessor = "accessor"
)

// DistanceAny is the untyped surface for values that arrive without static
// types: decoded JSON/YAML documents, map[string]any plumbing, scripting
// bridges.
//
// x and y must be slices or arrays. cfg may be nil, Options[any],
// *Options[any] or map[string]any (see OptionsFromMap).
//
// Errors, in priority order:
//   - ErrNotASequence  : x or y is not a slice/array, or an element is not
//     numeric and no accessor was given.
//   - ErrLengthMismatch: len(x) != len(y).
//   - ErrInvalidOptions: cfg has an unsupported type.
//   - ErrInvalidOrder  : the order is missing a numeric value, ≤ 0 or NaN.
//   - ErrInvalidAccessor: the accessor entry is not a supported function.
func DistanceAny(x, y any, cfg any) (float64, bool, error) {
	xv, err := sequenceOf("x", x)
	if err != nil {
		return 0, false, err
	}
	yv, err := sequenceOf("y", y)
	if err != nil {
		return 0, false, err
	}
	if err = validateLengths(xv.Len(), yv.Len()); err != nil {
		return 0, false, err
	}

	opts, err := optionsOf(cfg)
	if err != nil {
		return 0, false, err
	}
	p := opts.order()
	if err = p.Validate(); err != nil {
		return 0, false, err
	}

	return accumulate(xv.Len(), p, reflectAt(xv, yv, opts.Accessor))
}

// OptionsFromMap builds Options from a configuration object.
//
// Keys:
//   - "p"       : Order, any integer/float kind, json.Number-like values
//     accepted by cast, or a string understood by ParseOrder. nil, bools and
//     an explicit zero are rejected with ErrInvalidOrder.
//   - "accessor": Accessor[any], func(any, int, Source) float64,
//     func(any, int) float64 or func(any) float64. Anything else, nil
//     included, is rejected with ErrInvalidAccessor.
//
// Absent keys take their defaults; unknown keys are ignored.
func OptionsFromMap(m map[string]any) (Options[any], error) {
	opts := DefaultOptions[any]()

	if raw, ok := m[KeyOrder]; ok {
		p, err := orderOf(raw)
		if err != nil {
			return Options[any]{}, err
		}
		opts.P = p
	}

	if raw, ok := m[KeyAccessor]; ok {
		acc, err := accessorOf(raw)
		if err != nil {
			return Options[any]{}, err
		}
		opts.Accessor = acc
	}

	return opts, nil
}

func sequenceOf(name string, v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, argErrorf(name, fmt.Errorf("nil: %w", ErrNotASequence))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, nil
	default:
		return reflect.Value{}, argErrorf(name, fmt.Errorf("%T: %w", v, ErrNotASequence))
	}
}

func optionsOf(cfg any) (Options[any], error) {
	switch c := cfg.(type) {
	case nil:
		return DefaultOptions[any](), nil
	case Options[any]:
		return c, nil
	case *Options[any]:
		if c == nil {
			return DefaultOptions[any](), nil
		}
		return *c, nil
	case map[string]any:
		return OptionsFromMap(c)
	default:
		return Options[any]{}, argErrorf("options", fmt.Errorf("%T: %w", cfg, ErrInvalidOptions))
	}
}

func orderOf(raw any) (Order, error) {
	switch v := raw.(type) {
	case nil, bool:
		return 0, argErrorf(KeyOrder, fmt.Errorf("%v: %w", raw, ErrInvalidOrder))
	case Order:
		return v, v.Validate()
	case string:
		return ParseOrder(v)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil {
		// cast only knows the built-in types; named numeric kinds land here.
		var ok bool
		if f, ok = toFloat64(raw); !ok {
			return 0, argErrorf(KeyOrder, fmt.Errorf("%T: %w", raw, ErrInvalidOrder))
		}
	}
	o := Order(f)

	return o, o.Validate()
}

func accessorOf(raw any) (Accessor[any], error) {
	invalid := argErrorf(KeyAccessor, fmt.Errorf("%T: %w", raw, ErrInvalidAccessor))

	switch fn := raw.(type) {
	case Accessor[any]:
		if fn == nil {
			return nil, invalid
		}
		return fn, nil
	case func(any, int, Source) float64:
		if fn == nil {
			return nil, invalid
		}
		return fn, nil
	case func(any, int) float64:
		if fn == nil {
			return nil, invalid
		}
		return func(elem any, i int, _ Source) float64 { return fn(elem, i) }, nil
	case func(any) float64:
		if fn == nil {
			return nil, invalid
		}
		return func(elem any, _ int, _ Source) float64 { return fn(elem) }, nil
	default:
		return nil, invalid
	}
}

// reflectAt reads elements through reflection so no copy of x or y is made.
func reflectAt(xv, yv reflect.Value, acc Accessor[any]) valueAt {
	return func(i int, src Source) (float64, error) {
		v := xv
		if src == SourceY {
			v = yv
		}
		elem := v.Index(i).Interface()
		if acc != nil {
			return acc(elem, i, src), nil
		}

		return elementValue(elem, i, src)
	}
}
