// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (prefixed with VAULT_)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [BindFlags], which registers the flags on the
// command's flag set, and [GetStructuredConfig], which builds the final
// configuration once the flags are parsed.
package config
