package convert

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Comparison holds the result of running one input through both mechanisms.
type Comparison struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Input     string `json:"input" yaml:"input"`
	Converted string `json:"converted" yaml:"converted"`
	Parsed    string `json:"parsed" yaml:"parsed"`
	Agree     bool   `json:"agree" yaml:"agree"`
}

// Compare converts text with c and with the type-specific parser.
// The first failure is returned; both mechanisms must succeed for a Comparison.
func Compare(c *Converter, kind Kind, text string) (*Comparison, error) {
	converted, err := c.Convert(kind, text)
	if err != nil {
		return nil, err
	}
	parsed, err := Parse(kind, text)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Kind:      kind,
		Input:     text,
		Converted: Format(converted),
		Parsed:    Format(parsed),
		Agree:     equal(converted, parsed),
	}, nil
}

// Format renders a converted value the way the demo prints it.
func Format(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%g", x)
	case *apd.Decimal:
		return x.String()
	}
	return fmt.Sprint(v)
}

func equal(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && (x == y || (math.IsNaN(x) && math.IsNaN(y)))
	case *apd.Decimal:
		y, ok := b.(*apd.Decimal)
		return ok && x.Cmp(y) == 0
	}
	return a == b
}

// String renders c for text output.
func (c *Comparison) String() string {
	return fmt.Sprintf("%s %q\nconverter: %s\nparser:    %s\nagree:     %t", c.Kind, c.Input, c.Converted, c.Parsed, c.Agree)
}
