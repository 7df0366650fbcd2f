package convert

import "fmt"

// Kind is a conversion target.
type Kind string

const (
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindBool    Kind = "bool"
	KindDecimal Kind = "decimal"
)

// Kinds lists the built-in kinds in display order.
var Kinds = []Kind{KindInt, KindFloat, KindBool, KindDecimal}

// ParseKind maps a name to a built-in Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownKind, name, Kinds)
}
