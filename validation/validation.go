package validation

import (
	"fmt"
	"log/slog"
	"maps"
)

// defaultMessages are the templates used when neither the rule nor the
// Validation overrides them.
//
//nolint:gochecknoglobals // read-only lookup table
var defaultMessages = map[string]string{
	TypeBetween:   "Field :field must be within the range of :min to :max",
	TypeIdentical: "Field :field does not have the expected value",
}

type binding struct {
	attribute string
	validator Validator
}

// Validation runs a set of validators over a Source and collects their messages.
// It implements Context for the validators it runs.
//
// A Validation is not safe for concurrent use.
type Validation struct {
	bindings        []binding
	labels          map[string]string
	defaultMessages map[string]string
	logger          *slog.Logger
	data            Source
	messages        Messages
}

// Option configures a Validation.
type Option func(*Validation)

// WithLabels sets the human readable label of each attribute.
func WithLabels(labels map[string]string) Option {
	return func(v *Validation) {
		v.SetLabels(labels)
	}
}

// WithDefaultMessages overrides the default template of each message type.
func WithDefaultMessages(messages map[string]string) Option {
	return func(v *Validation) {
		v.SetDefaultMessages(messages)
	}
}

// WithLogger sets the logger used to report failing rules. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validation) {
		v.logger = logger
	}
}

// New creates an empty Validation.
func New(opts ...Option) *Validation {
	validation := &Validation{
		bindings:        nil,
		labels:          make(map[string]string),
		defaultMessages: maps.Clone(defaultMessages),
		logger:          slog.Default(),
		data:            nil,
		messages:        nil,
	}

	for _, apply := range opts {
		apply(validation)
	}

	return validation
}

// Add registers validator for attribute. Rules run in registration order.
func (v *Validation) Add(attribute string, validator Validator) *Validation {
	v.bindings = append(v.bindings, binding{attribute: attribute, validator: validator})

	return v
}

// SetLabels merges labels into the attribute labels.
func (v *Validation) SetLabels(labels map[string]string) {
	maps.Copy(v.labels, labels)
}

// SetDefaultMessages merges templates into the default message templates.
func (v *Validation) SetDefaultMessages(messages map[string]string) {
	maps.Copy(v.defaultMessages, messages)
}

// Validate runs every rule against data and returns the collected messages.
//
// Failing rules do not stop the run unless their cancelOnFail option is set.
// An error is returned only when a rule is misconfigured; the messages
// collected so far are returned with it.
func (v *Validation) Validate(data Source) (Messages, error) {
	v.data = data
	v.messages = nil

	for _, bound := range v.bindings {
		valid, err := bound.validator.Validate(v, bound.attribute)
		if err != nil {
			return v.messages, fmt.Errorf("validating %q: %w", bound.attribute, err)
		}

		if valid {
			continue
		}

		v.logger.Debug("validation rule failed",
			slog.String("attribute", bound.attribute),
			slog.String("validator", fmt.Sprintf("%T", bound.validator)),
		)

		cancel, err := cancelOnFail(bound.validator)
		if err != nil {
			return v.messages, fmt.Errorf("validating %q: %w", bound.attribute, err)
		}

		if cancel {
			break
		}
	}

	return v.messages, nil
}

// Messages returns the messages of the last run.
func (v *Validation) Messages() Messages {
	return v.messages
}

// Value implements Context.
func (v *Validation) Value(attribute string) any {
	if v.data == nil {
		return nil
	}

	return v.data.Value(attribute)
}

// Label implements Context.
func (v *Validation) Label(attribute string) string {
	return v.labels[attribute]
}

// DefaultMessage implements Context.
func (v *Validation) DefaultMessage(kind string) string {
	return v.defaultMessages[kind]
}

// AppendMessage implements Context.
func (v *Validation) AppendMessage(message Message) {
	v.messages = append(v.messages, message)
}

func cancelOnFail(validator Validator) (bool, error) {
	configured, ok := validator.(interface{ Options() Options })
	if !ok {
		return false, nil
	}

	return configured.Options().Bool(OptionCancelOnFail)
}
