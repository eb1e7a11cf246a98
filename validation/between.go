package validation

import "fmt"

// TypeBetween is the message type reported by Between.
const TypeBetween = "Between"

// Between validates that a value lies within [minimum, maximum].
//
//	validation.NewBetween(validation.Options{
//		validation.OptionMinimum: 0,
//		validation.OptionMaximum: 100,
//		validation.OptionMessage: "The price must be between 0 and 100",
//	})
type Between struct {
	rule
}

// NewBetween creates a Between validator. Options are resolved on every Validate call.
func NewBetween(options Options) *Between {
	return &Between{rule: rule{options: options}}
}

// Validate implements Validator.
func (b *Between) Validate(ctx Context, attribute string) (bool, error) {
	value := ctx.Value(attribute)

	allowEmpty, err := b.options.Bool(OptionAllowEmpty)
	if err != nil {
		return false, err
	}

	if allowEmpty && isEmpty(value) {
		return true, nil
	}

	minimum, err := b.bound(OptionMinimum)
	if err != nil {
		return false, err
	}

	maximum, err := b.bound(OptionMaximum)
	if err != nil {
		return false, err
	}

	if b.Valid(value, minimum, maximum) {
		return true, nil
	}

	err = b.report(ctx, attribute, TypeBetween,
		":min", formatPlaceholder(minimum),
		":max", formatPlaceholder(maximum),
	)
	if err != nil {
		return false, err
	}

	return false, nil
}

// Valid reports whether minimum <= value <= maximum.
func (b *Between) Valid(value, minimum, maximum any) bool {
	return lessOrEqual(minimum, value) && lessOrEqual(value, maximum)
}

func (b *Between) bound(key string) (any, error) {
	value, err := b.options.Require(key)
	if err != nil {
		return nil, err
	}

	if !isScalar(value) {
		return nil, fmt.Errorf("%w: %s must be a number or a string, got %T", ErrInvalidOption, key, value)
	}

	return value, nil
}
