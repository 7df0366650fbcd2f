package convert

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// ParseInt parses a base-10 int in the 32-bit range with strconv.ParseInt.
func ParseInt(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, newConversionError(MechanismParser, KindInt, text, err)
	}
	return int(n), nil
}

// ParseFloat parses a float64 with strconv.ParseFloat.
func ParseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, newConversionError(MechanismParser, KindFloat, text, err)
	}
	return f, nil
}

// ParseBool parses the spellings accepted by strconv.ParseBool
// (1, t, T, TRUE, true, True and their false counterparts).
func ParseBool(text string) (bool, error) {
	b, err := strconv.ParseBool(text)
	if err != nil {
		return false, newConversionError(MechanismParser, KindBool, text, err)
	}
	return b, nil
}

// ParseDecimal parses an arbitrary-precision decimal.
func ParseDecimal(text string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return nil, newConversionError(MechanismParser, KindDecimal, text, err)
	}
	return d, nil
}

// Parse dispatches to the type-specific parser for kind.
func Parse(kind Kind, text string) (any, error) {
	switch kind {
	case KindInt:
		return ParseInt(text)
	case KindFloat:
		return ParseFloat(text)
	case KindBool:
		return ParseBool(text)
	case KindDecimal:
		return ParseDecimal(text)
	}
	return nil, newConversionError(MechanismParser, kind, text, ErrUnknownKind)
}
