package minkowski

import "fmt"

// Metric is a validated Minkowski distance of a fixed order, ready to be handed
// to clustering or nearest-neighbour code that calls it many times.
// The zero Metric is Euclidean.
type Metric struct {
	p Order
}

// NewMetric returns a Metric of order p, or ErrInvalidOrder.
func NewMetric(p Order) (Metric, error) {
	if err := p.Validate(); err != nil {
		return Metric{}, err
	}

	return Metric{p: p}, nil
}

// Order returns the order of m.
func (m Metric) Order() Order {
	if m.p == 0 {
		return DefaultOrder
	}

	return m.p
}

// Distance returns the distance between x and y under m.
func (m Metric) Distance(x, y []float64) (float64, bool, error) {
	return DistanceP(x, y, m.Order())
}

// String names the metric: "manhattan", "euclidean", "chebyshev" or
// "minkowski(p=<p>)".
func (m Metric) String() string {
	switch p := m.Order(); {
	case p == Manhattan:
		return "manhattan"
	case p == Euclidean:
		return "euclidean"
	case p.IsChebyshev():
		return "chebyshev"
	default:
		return fmt.Sprintf("minkowski(p=%s)", p)
	}
}
