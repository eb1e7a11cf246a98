// Package validation provides rule based validation of keyed attributes.
//
// A Validator checks one attribute through a Context, which supplies the
// value and label of the attribute and collects failure messages. A failing
// rule is a normal outcome: the validator appends one Message and returns
// false. Only a misconfigured rule (for example a missing bound) returns an
// error.
//
// Message templates use placeholders that are replaced in a single pass:
//   - :field is the label option, the context label, or the attribute name
//   - :min and :max are the Between bounds
//
// Validation is the usual Context: register rules with Add and run them
// with Validate.
//
//	v := validation.New(validation.WithLabels(map[string]string{"price": "Price"}))
//	v.Add("price", validation.NewBetween(validation.Options{
//		validation.OptionMinimum: 0,
//		validation.OptionMaximum: 100,
//	}))
//	messages, err := v.Validate(validation.Map{"price": 150})
package validation
