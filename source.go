package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/validation"
)

// NodeSource exposes node as a validation.Source. Attribute names are colon
// separated paths such as "database:port"; unresolved paths yield nil.
func NodeSource(node *config.Node) validation.Source {
	return validation.SourceFunc(func(attribute string) any {
		value, found := node.Find(attribute)
		if !found {
			return nil
		}

		return value
	})
}
