package minkowski

// Number is the set of element types usable directly, without an accessor.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Source tells an Accessor which of the two sequences an element belongs to.
type Source uint8

const (
	// SourceX marks elements of the first sequence.
	SourceX Source = iota

	// SourceY marks elements of the second sequence.
	SourceY
)

// String returns "x" or "y".
func (s Source) String() string {
	if s == SourceY {
		return "y"
	}

	return "x"
}

// Accessor projects an element of x or y to the number that enters the distance.
//
// For every index i the calculator calls the accessor on x[i] (SourceX) and then
// on y[i] (SourceY), so it runs exactly 2·N times per call. Accessors must be
// pure and reentrant: the calculator does not guard against accessors that
// mutate the sequences being iterated.
type Accessor[T any] func(elem T, index int, src Source) float64

// DefaultOrder is the order used when none is given: Euclidean distance.
const DefaultOrder = Euclidean

// Options configures DistanceWith.
//
// Fields:
//   - P       : order of the norm. The zero value means "omitted" and resolves
//     to DefaultOrder; negative or NaN values are rejected with ErrInvalidOrder.
//     Use Chebyshev (+Inf) for the max-norm.
//   - Accessor: optional projection of elements to numbers. When nil, the
//     elements themselves must be numeric.
//
// Example:
//
//	opts := minkowski.Options[Point]{
//	  P:        minkowski.Manhattan,
//	  Accessor: func(p Point, _ int, _ minkowski.Source) float64 { return p.Y },
//	}
//	dist, ok, err := minkowski.DistanceWith(a, b, opts)
type Options[T any] struct {
	P        Order       `yaml:"p,omitempty" json:"p,omitempty"`
	Accessor Accessor[T] `yaml:"-" json:"-"`
}

// DefaultOptions returns Options with P set to DefaultOrder and no accessor.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{P: DefaultOrder}
}

// order returns the effective order, substituting the default for an omitted P.
func (o Options[T]) order() Order {
	if o.P == 0 {
		return DefaultOrder
	}

	return o.P
}
