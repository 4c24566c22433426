// Package config loads and hot-reloads the walk engine's run configuration:
// graph source, mode and bias parameters, and walk parameters. Values load
// from YAML, with pflag-bound command-line overrides taking precedence, and
// can be watched for on-disk edits via fsnotify.
package config
