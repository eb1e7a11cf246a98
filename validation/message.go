package validation

import (
	"fmt"

	"go.uber.org/multierr"
)

// Message describes a failed rule.
type Message struct {
	Text  string
	Field string
	Type  string
	Code  int
}

// NewMessage creates a message for field produced by a rule of the given type.
func NewMessage(text, field, kind string, code int) Message {
	return Message{Text: text, Field: field, Type: kind, Code: code}
}

func (m Message) Error() string {
	return m.Text
}

// Messages is an ordered list of failures.
type Messages []Message

// Filter returns the messages reported for field.
func (m Messages) Filter(field string) Messages {
	var filtered Messages

	for _, message := range m {
		if message.Field == field {
			filtered = append(filtered, message)
		}
	}

	return filtered
}

// Err combines the messages into a single error, or nil when there are none.
func (m Messages) Err() error {
	var err error

	for _, message := range m {
		err = multierr.Append(err, fmt.Errorf("%s: %w", message.Field, message))
	}

	return err
}
