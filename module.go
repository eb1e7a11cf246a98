package hjarta

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/validation"

	"go.uber.org/fx"
)

// ErrInvalidConfig is returned from app start when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// NewConfigModule returns an Fx module providing a config.Parser and the
// *config.Node loaded from file and overlays. Files are merged in order, so
// later overlays win over earlier layers.
func NewConfigModule(path string, file string, overlays ...string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
		),
		fx.Provide(func(parser config.Parser) (*config.Node, error) {
			fetchers, err := fileFetchers(file, overlays)
			if err != nil {
				return nil, err
			}

			return config.Provider(path, fetchers...)(parser)
		}),
	)
}

func fileFetchers(file string, overlays []string) ([]config.DataFetcher, error) {
	fetchers := make([]config.DataFetcher, 0, len(overlays)+1)

	base, err := filefetcher.NewFetcher(file)()
	if err != nil {
		return nil, fmt.Errorf("opening configuration file: %w", err)
	}

	fetchers = append(fetchers, base)

	for _, overlay := range overlays {
		fetcher, err := filefetcher.NewOptionalFetcher(overlay)()
		if err != nil {
			return nil, fmt.Errorf("opening configuration overlay: %w", err)
		}

		fetchers = append(fetchers, fetcher)
	}

	return fetchers, nil
}

// NewValidationModule returns an Fx module that validates the *config.Node
// when the app starts. The rules callback registers validators on a fresh
// validation.Validation; attributes are colon paths into the tree.
func NewValidationModule(rules func(*validation.Validation)) fx.Option {
	return fx.Module("validation",
		fx.Invoke(func(node *config.Node, logger *slog.Logger) error {
			return validateConfig(node, logger, rules)
		}),
	)
}

func validateConfig(node *config.Node, logger *slog.Logger, rules func(*validation.Validation)) error {
	validator := validation.New(validation.WithLogger(logger))
	if rules != nil {
		rules(validator)
	}

	messages, err := validator.Validate(NodeSource(node))
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if len(messages) > 0 {
		for _, message := range messages {
			logger.Error("configuration rule failed",
				slog.String("field", message.Field),
				slog.String("type", message.Type),
				slog.String("message", message.Text),
			)
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, messages.Err())
	}

	logger.Debug("configuration validated")

	return nil
}
