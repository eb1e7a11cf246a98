package config

import (
	"fmt"
	"log/slog"
)

// Parser decodes raw configuration data into an ordered mapping.
//
// The path parameter selects a section of the document using colon (:) as the
// separator for nested keys. For example:
//   - "api:permissions" selects config["api"]["permissions"]
//   - "database:connection:timeout" goes three levels deep
//   - "" (empty path) selects the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an implementation backed by goccy/go-yaml.
type Parser interface {
	Parse(data []byte, path string) (*Mapping, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Load reads every fetcher in order and merges the parsed documents into a
// single tree: later sources override earlier ones. Empty payloads are skipped.
func Load(parser Parser, path string, fetchers ...DataFetcher) (*Node, error) {
	tree, err := New(nil)
	if err != nil {
		return nil, err
	}

	for idx, fetcher := range fetchers {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading source %d: %w", idx, err)
		}

		if len(data) == 0 {
			slog.Debug("empty configuration source skipped", slog.Int("source", idx))

			continue
		}

		mapping, err := parser.Parse(data, path)
		if err != nil {
			return nil, fmt.Errorf("parsing source %d: %w", idx, err)
		}

		layer, err := New(mapping)
		if err != nil {
			return nil, fmt.Errorf("building source %d: %w", idx, err)
		}

		_, err = tree.Merge(layer)
		if err != nil {
			return nil, fmt.Errorf("merging source %d: %w", idx, err)
		}

		slog.Debug("configuration source merged",
			slog.Int("source", idx),
			slog.String("path", path),
			slog.Int("keys", layer.Count()),
		)
	}

	return tree, nil
}

// Provider returns an Fx-friendly constructor that loads the configuration
// tree at path from the given fetchers.
func Provider(path string, fetchers ...DataFetcher) func(Parser) (*Node, error) {
	return func(parser Parser) (*Node, error) {
		tree, err := Load(parser, path, fetchers...)
		if err != nil {
			return nil, err
		}

		slog.Info("configuration loaded",
			slog.String("path", path),
			slog.Int("sources", len(fetchers)),
			slog.Int("keys", tree.Count()),
		)

		return tree, nil
	}
}
