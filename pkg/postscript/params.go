package postscript

import (
	"encoding/json"
	"fmt"
)

// ParamSource is the host-supplied capability for reading typed operation
// parameters by name. The dispatcher consumes this interface, keeping the
// core host-agnostic; hosts adapt their own per-item context to it.
type ParamSource interface {
	// Has reports whether a parameter is present.
	Has(name string) bool

	// String returns a required string parameter.
	String(name string) (string, error)

	// StringOr returns an optional string parameter or a default.
	StringOr(name, fallback string) string

	// Bool returns a required boolean parameter.
	Bool(name string) (bool, error)

	// BoolOr returns an optional boolean parameter or a default.
	BoolOr(name string, fallback bool) bool

	// Int returns a required integer parameter.
	Int(name string) (int, error)

	// IntOr returns an optional integer parameter or a default.
	IntOr(name string, fallback int) int

	// FloatOr returns an optional numeric parameter or a default.
	FloatOr(name string, fallback float64) float64

	// Object returns an optional object-valued parameter. Absent
	// parameters yield an empty map.
	Object(name string) map[string]interface{}
}

// MapParams is a ParamSource backed by a plain map, used by hosts that
// collect parameters as decoded JSON and by tests.
type MapParams map[string]interface{}

// Has implements ParamSource.
func (p MapParams) Has(name string) bool {
	_, ok := p[name]

	return ok
}

// String implements ParamSource.
func (p MapParams) String(name string) (string, error) {
	value, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}

	s, ok := value.(string)
	if !ok {
		return "", NewInvalidArgumentError("parameter %s: expected string, got %T", name, value)
	}

	return s, nil
}

// StringOr implements ParamSource.
func (p MapParams) StringOr(name, fallback string) string {
	s, err := p.String(name)
	if err != nil {
		return fallback
	}

	return s
}

// Bool implements ParamSource.
func (p MapParams) Bool(name string) (bool, error) {
	value, ok := p[name]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}

	b, ok := value.(bool)
	if !ok {
		return false, NewInvalidArgumentError("parameter %s: expected bool, got %T", name, value)
	}

	return b, nil
}

// BoolOr implements ParamSource.
func (p MapParams) BoolOr(name string, fallback bool) bool {
	b, err := p.Bool(name)
	if err != nil {
		return fallback
	}

	return b
}

// Int implements ParamSource.
func (p MapParams) Int(name string) (int, error) {
	value, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, name)
	}

	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		// JSON numbers decode as float64.
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, NewInvalidArgumentError("parameter %s: %v", name, err)
		}

		return int(i), nil
	default:
		return 0, NewInvalidArgumentError("parameter %s: expected number, got %T", name, value)
	}
}

// IntOr implements ParamSource.
func (p MapParams) IntOr(name string, fallback int) int {
	n, err := p.Int(name)
	if err != nil {
		return fallback
	}

	return n
}

// FloatOr implements ParamSource.
func (p MapParams) FloatOr(name string, fallback float64) float64 {
	value, ok := p[name]
	if !ok {
		return fallback
	}

	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return fallback
		}

		return f
	default:
		return fallback
	}
}

// Object implements ParamSource.
func (p MapParams) Object(name string) map[string]interface{} {
	value, ok := p[name]
	if !ok {
		return map[string]interface{}{}
	}

	obj, ok := value.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}

	return obj
}
