package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/apd/v3"
)

// Func converts text to a value of one kind.
type Func func(text string) (any, error)

// Converter is a registry of conversion functions keyed by Kind.
//
// Converter is safe for concurrent use.
type Converter struct {
	mu    sync.RWMutex
	funcs map[Kind]Func
}

// New creates an empty converter.
func New() *Converter {
	return &Converter{funcs: make(map[Kind]Func)}
}

// NewDefault creates a converter with the built-in kinds registered.
func NewDefault() *Converter {
	c := New()
	c.funcs[KindInt] = toInt
	c.funcs[KindFloat] = toFloat
	c.funcs[KindBool] = toBool
	c.funcs[KindDecimal] = toDecimal
	return c
}

// Register adds or replaces the function for kind.
func (c *Converter) Register(kind Kind, fn Func) error {
	if kind == "" {
		return fmt.Errorf("kind cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("converter for %s cannot be nil", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs[kind] = fn
	return nil
}

// Convert converts text to kind using the registered function.
func (c *Converter) Convert(kind Kind, text string) (any, error) {
	c.mu.RLock()
	fn, ok := c.funcs[kind]
	c.mu.RUnlock()

	if !ok {
		return nil, newConversionError(MechanismConverter, kind, text, ErrUnknownKind)
	}

	v, err := fn(text)
	if err != nil {
		var convErr *ConversionError
		if errors.As(err, &convErr) {
			return nil, err
		}
		return nil, newConversionError(MechanismConverter, kind, text, err)
	}
	return v, nil
}

func toInt(text string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return nil, err
	}
	return int(n), nil
}

func toFloat(text string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func toBool(text string) (any, error) {
	s := strings.TrimSpace(text)
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return nil, fmt.Errorf("not a boolean")
}

func toDecimal(text string) (any, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return nil, err
	}
	return d, nil
}
