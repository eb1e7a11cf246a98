// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered map decoding, so
// the resulting config.Mapping keeps the key order of the document. Sequences
// become mappings keyed by config.IntKey, and integers are decoded as int.
//
// Usage:
//
//	parser := yaml.NewParser()
//	mapping, err := parser.Parse(data, "api:permissions")
//	tree, err := config.New(mapping)
//
// Path Conversion:
//   - Empty path "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
//
// Marshal and MarshalMapping write a tree back out in the same order.
package yaml
