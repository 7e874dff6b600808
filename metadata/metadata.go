// Package metadata holds the build metadata for verflow itself,
// not to be confused with the project version the tool manages.
package metadata

const Version = "0.3.1"
