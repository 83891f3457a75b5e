// Package config resolves the search request from multiple sources (CLI
// arguments, YAML file, environment variables) with precedence: CLI flags >
// YAML config > Environment variables > Defaults. The query and file name
// always come from positional arguments.
package config
