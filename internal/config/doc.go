// Package config provides configuration loading, merging, and validation
// facilities for the node-reporter daemon.
//
// Configuration is assembled from three sources and merged field by field;
// the first source that sets a non-zero value for a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path taken from CONFIG or -c / -config)
//
// Defaults are filled in afterwards and the result is validated. The main
// entry point is [GetStructuredConfig].
package config
