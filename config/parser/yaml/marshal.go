package yaml

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"

	"github.com/goccy/go-yaml"
)

// Marshal encodes the recursive view of node as YAML, keeping key order.
func Marshal(node *config.Node) ([]byte, error) {
	return MarshalMapping(node.ToTree(true))
}

// MarshalMapping encodes mapping as YAML, keeping key order. Integer keys are
// written as integers, nodes found inside raw mappings are exported as well.
func MarshalMapping(mapping *config.Mapping) ([]byte, error) {
	data, err := yaml.Marshal(toMapSlice(mapping))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

func toMapSlice(mapping *config.Mapping) yaml.MapSlice {
	slice := make(yaml.MapSlice, 0, mapping.Len())

	for key, value := range mapping.All() {
		var item any = key.Name()
		if key.IsIndex() {
			item = key.Index()
		}

		slice = append(slice, yaml.MapItem{Key: item, Value: exportValue(value)})
	}

	return slice
}

func exportValue(value any) any {
	switch typed := value.(type) {
	case *config.Node:
		return toMapSlice(typed.ToTree(true))
	case *config.Mapping:
		return toMapSlice(typed)
	case map[string]any:
		return toMapSlice(config.FromMap(typed))
	default:
		return value
	}
}
