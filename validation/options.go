package validation

import (
	"errors"
	"fmt"
	"reflect"
)

// Option keys recognized by the built-in validators.
const (
	OptionMinimum      = "minimum"
	OptionMaximum      = "maximum"
	OptionValue        = "value"
	OptionLabel        = "label"
	OptionMessage      = "message"
	OptionCode         = "code"
	OptionAllowEmpty   = "allowEmpty"
	OptionCancelOnFail = "cancelOnFail"
)

// ErrInvalidOption is returned when an option holds a value of the wrong type.
var ErrInvalidOption = errors.New("invalid validator option")

// ErrMissingOption is returned when an option a rule cannot work without is absent.
var ErrMissingOption = errors.New("missing validator option")

// Options configures a validator. Keys are the Option* constants.
type Options map[string]any

// Has reports whether key is set, even to nil.
func (o Options) Has(key string) bool {
	_, ok := o[key]

	return ok
}

// Require returns the value of key, failing with ErrMissingOption when unset.
// A key explicitly set to nil is returned as nil.
func (o Options) Require(key string) (any, error) {
	value, ok := o[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingOption, key)
	}

	return value, nil
}

// String resolves key as a string; unset or nil yields "".
func (o Options) String(key string) (string, error) {
	switch value := o[key].(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case fmt.Stringer:
		return value.String(), nil
	default:
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, value)
	}
}

// Bool resolves key as a bool; unset or nil yields false.
func (o Options) Bool(key string) (bool, error) {
	switch value := o[key].(type) {
	case nil:
		return false, nil
	case bool:
		return value, nil
	default:
		return false, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidOption, key, value)
	}
}

// Int resolves key as an int; unset or nil yields 0. Any integer kind is accepted.
func (o Options) Int(key string) (int, error) {
	value := o[key]
	if value == nil {
		return 0, nil
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() { //nolint:exhaustive // only integer kinds are accepted
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(reflected.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(reflected.Uint()), nil //nolint:gosec // codes are small
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidOption, key, value)
	}
}
