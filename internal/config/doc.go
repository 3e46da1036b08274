// Package config provides configuration loading, merging, and validation
// facilities for the idkeeper CLI.
//
// Configuration is assembled from multiple sources. For every field the
// first source that provides a non-zero value wins:
//  1. Command-line flags (and the positional command)
//  2. Environment variables
//  3. Config file (JSON, or YAML for .yaml/.yml paths)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
