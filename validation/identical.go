package validation

import "reflect"

// TypeIdentical is the message type reported by Identical.
const TypeIdentical = "Identical"

// Identical validates that a value is strictly equal to the value option:
// same dynamic type and same value.
//
//	validation.NewIdentical(validation.Options{
//		validation.OptionValue:   "yes",
//		validation.OptionMessage: "Terms and conditions must be accepted",
//	})
type Identical struct {
	rule
}

// NewIdentical creates an Identical validator.
func NewIdentical(options Options) *Identical {
	return &Identical{rule: rule{options: options}}
}

// Validate implements Validator.
func (i *Identical) Validate(ctx Context, attribute string) (bool, error) {
	value := ctx.Value(attribute)

	expected, err := i.options.Require(OptionValue)
	if err != nil {
		return false, err
	}

	if i.Valid(value, expected) {
		return true, nil
	}

	err = i.report(ctx, attribute, TypeIdentical)
	if err != nil {
		return false, err
	}

	return false, nil
}

// Valid reports whether value and expected are identical. 1 and "1" are not,
// nor are int(1) and int64(1).
func (i *Identical) Valid(value, expected any) bool {
	return reflect.DeepEqual(value, expected)
}
