package minkowski

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Order is the p of the p-norm: a strictly positive real number or +Inf.
type Order float64

const (
	// Manhattan (city-block, L1) distance.
	Manhattan Order = 1

	// Euclidean (L2) distance.
	Euclidean Order = 2
)

// Chebyshev selects the max-norm (L∞): the largest per-index difference.
var Chebyshev = Order(math.Inf(1))

// Validate reports ErrInvalidOrder unless o > 0 (including +Inf).
func (o Order) Validate() error {
	f := float64(o)
	// NaN fails every comparison, so !(f > 0) also rejects it.
	if !(f > 0) {
		return fmt.Errorf("p=%v: %w", f, ErrInvalidOrder)
	}

	return nil
}

// IsChebyshev reports whether o selects the max-norm branch.
func (o Order) IsChebyshev() bool {
	return math.IsInf(float64(o), 1)
}

// String returns "inf" for Chebyshev and the shortest decimal form otherwise.
func (o Order) String() string {
	if o.IsChebyshev() {
		return "inf"
	}

	return strconv.FormatFloat(float64(o), 'g', -1, 64)
}

// orderNames maps the accepted textual aliases to their orders.
var orderNames = map[string]Order{
	"manhattan": Manhattan,
	"cityblock": Manhattan,
	"l1":        Manhattan,
	"euclidean": Euclidean,
	"l2":        Euclidean,
	"chebyshev": Chebyshev,
	"max":       Chebyshev,
	"inf":       Chebyshev,
	"+inf":      Chebyshev,
	"infinity":  Chebyshev,
	"+infinity": Chebyshev,
	".inf":      Chebyshev, // YAML 1.2 spelling
	"+.inf":     Chebyshev,
}

// ParseOrder parses a metric name or a number into a validated Order.
//
// Names are case-insensitive: manhattan/cityblock/l1, euclidean/l2,
// chebyshev/max/inf/infinity (and the YAML .inf). Anything else must parse as
// a float; the result must satisfy Validate.
func ParseOrder(s string) (Order, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if o, ok := orderNames[key]; ok {
		return o, nil
	}

	f, err := cast.ToFloat64E(key)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidOrder)
	}
	o := Order(f)
	if err = o.Validate(); err != nil {
		return 0, err
	}

	return o, nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseOrder.
func (o *Order) UnmarshalText(text []byte) error {
	parsed, err := ParseOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}

// MarshalJSON writes finite orders as JSON numbers and Chebyshev as "inf".
func (o Order) MarshalJSON() ([]byte, error) {
	if o.IsChebyshev() {
		return []byte(`"inf"`), nil
	}

	return []byte(o.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string understood by ParseOrder.
// null leaves o unchanged.
func (o *Order) UnmarshalJSON(data []byte) error {
	text := string(data)
	if text == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}

	return o.UnmarshalText([]byte(text))
}

// MarshalYAML implements yaml.Marshaler. Chebyshev is written as .inf.
func (o Order) MarshalYAML() (interface{}, error) {
	return float64(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes.
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar: %w", node.Line, ErrInvalidOrder)
	}
	parsed, err := ParseOrder(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*o = parsed

	return nil
}
