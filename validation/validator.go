package validation

import (
	"fmt"
	"strings"
)

// Context supplies attribute values and labels to validators and collects
// their messages. Validation implements it.
type Context interface {
	Value(attribute string) any
	Label(attribute string) string
	DefaultMessage(kind string) string
	AppendMessage(message Message)
}

// Validator checks a single attribute.
//
// A failing check is not an error: Validate appends one message to ctx and
// returns false. An error means the validator itself is misconfigured.
type Validator interface {
	Validate(ctx Context, attribute string) (bool, error)
}

// rule holds the options shared by every built-in validator.
type rule struct {
	options Options
}

// Options returns the validator options.
func (r rule) Options() Options {
	return r.options
}

// report appends the failure message for attribute. The label comes from the
// label option, then from the context, then falls back to the attribute name.
// The template comes from the message option, then from the context defaults.
func (r rule) report(ctx Context, attribute, kind string, placeholders ...string) error {
	label, err := r.options.String(OptionLabel)
	if err != nil {
		return err
	}

	if label == "" {
		label = ctx.Label(attribute)
		if label == "" {
			label = attribute
		}
	}

	template, err := r.options.String(OptionMessage)
	if err != nil {
		return err
	}

	if template == "" {
		template = ctx.DefaultMessage(kind)
	}

	code, err := r.options.Int(OptionCode)
	if err != nil {
		return err
	}

	replacements := append([]string{":field", label}, placeholders...)
	text := strings.NewReplacer(replacements...).Replace(template)

	ctx.AppendMessage(NewMessage(text, attribute, kind, code))

	return nil
}

func formatPlaceholder(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprint(value)
}

// isEmpty is the emptiness test behind allowEmpty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}

	text, ok := value.(string)

	return ok && text == ""
}
