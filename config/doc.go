// Package config provides a hierarchical configuration tree and the
// interfaces used to load it.
//
// A Node holds ordered bindings from a Key (string name or integer index) to
// a value. Values are scalars, raw mappings or child nodes:
//   - New and PopulateFrom turn every nested mapping into a child Node
//   - Set stores values as they are
//   - Unset leaves a tombstone: the key stays bound to nil
//
// # Merging
//
// Merge folds a mapping or another node into the receiver in place. It is
// deep only where the receiver already holds a node; a scalar (or a raw
// mapping) bound in the receiver is simply overwritten, even by a mapping:
//
//	tree, _ := config.New(config.NewMapping(config.Field("a", 1)))
//	tree.Merge(config.NewMapping(config.Field("a", config.NewMapping(config.Field("b", 2)))))
//	// tree["a"] is now the raw *Mapping {b: 2}, not a Node
//
// # Loading
//
// Load and Provider combine a Parser with one or more DataFetcher values and
// merge the documents in order, so later files override earlier ones. Paths
// use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	""                          -> entire document
//
// A typical usage pattern:
//
//	provider := config.Provider("", fetcher)
//	tree, err := provider(yamlparser.NewParser())
//	host, _ := tree.Find("database:host")
package config
