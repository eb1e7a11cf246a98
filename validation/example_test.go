package validation_test

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/validation"
)

func ExampleValidation() {
	v := validation.New(validation.WithLabels(map[string]string{"price": "Price"}))

	v.Add("price", validation.NewBetween(validation.Options{
		validation.OptionMinimum: 0,
		validation.OptionMaximum: 100,
	}))
	v.Add("terms", validation.NewIdentical(validation.Options{
		validation.OptionValue:   "yes",
		validation.OptionMessage: "Terms and conditions must be accepted",
	}))

	messages, err := v.Validate(validation.Map{"price": 150, "terms": "no"})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	for _, message := range messages {
		fmt.Printf("%s (%s): %s\n", message.Field, message.Type, message.Text)
	}
	// Output:
	// price (Between): Field Price must be within the range of 0 to 100
	// terms (Identical): Terms and conditions must be accepted
}
