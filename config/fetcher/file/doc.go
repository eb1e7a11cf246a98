// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every Fetch returns
// the same data for the whole application lifecycle.
//
// Usage:
//
//	base, err := file.NewFetcher("/etc/app/config.yaml")()
//	local, err := file.NewOptionalFetcher("/etc/app/config.local.yaml")()
//	tree, err := config.Load(yamlparser.NewParser(), "", base, local)
//
// Error Handling:
//   - NewFetcher fails if the file cannot be read or the path is a directory
//   - NewOptionalFetcher tolerates a missing file and fetches no data
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
