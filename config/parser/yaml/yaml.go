package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotAMapping is returned when the document or the selected section is a scalar.
var ErrNotAMapping = errors.New("document is not a mapping")

// Parser implements config.Parser for YAML data.
// It decodes with ordered maps so key order survives into the tree.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into an ordered mapping.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, path string) (*config.Mapping, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var decoded any

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		err := readPath(data, path, &decoded)
		if err != nil {
			return nil, err
		}
	}

	if decoded == nil {
		return config.NewMapping(), nil
	}

	mapping, ok := convert(decoded).(*config.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotAMapping, decoded)
	}

	return mapping, nil
}

func readPath(data []byte, path string, target *any) error {
	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, config.PathSeparator)

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}

// convert turns decoded YAML values into tree values: ordered maps and
// sequences become mappings, integers become int where they fit.
func convert(value any) any {
	switch typed := value.(type) {
	case yaml.MapSlice:
		mapping := config.NewMapping()
		for _, item := range typed {
			mapping.Set(convertKey(item.Key), convert(item.Value))
		}

		return mapping
	case []any:
		mapping := config.NewMapping()
		for idx, item := range typed {
			mapping.Set(config.IntKey(idx), convert(item))
		}

		return mapping
	case uint64:
		if typed <= math.MaxInt {
			return int(typed)
		}

		return typed
	case int64:
		return int(typed)
	default:
		return value
	}
}

func convertKey(key any) config.Key {
	switch typed := key.(type) {
	case string:
		return config.StringKey(typed)
	case uint64:
		if typed <= math.MaxInt {
			return config.IntKey(int(typed))
		}
	case int64:
		if typed >= 0 {
			return config.IntKey(int(typed))
		}
	case int:
		if typed >= 0 {
			return config.IntKey(typed)
		}
	}

	return config.StringKey(fmt.Sprint(key))
}
