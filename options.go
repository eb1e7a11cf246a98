package hjarta

import (
	"github.com/0xalexb/hjarta-config/validation"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFiles adds a module supplying the *config.Node loaded from the
// given YAML files. The first file must exist; the others are optional
// overlays merged on top of it in order. The path selects a section of every
// file ("" for the whole document).
func WithConfigFiles(path string, file string, overlays ...string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, NewConfigModule(path, file, overlays...))
	}
}

// WithValidation adds a module that validates the *config.Node at startup
// with the rules registered by rules. Startup fails when a rule fails.
func WithValidation(rules func(*validation.Validation)) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, NewValidationModule(rules))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
