// Package settings provides loading, merging, and validation of the runtime
// settings of the staticconfig command.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables prefixed with STATICCONFIG_
//  3. Command-line flags that were set explicitly
//
// The main entry point is [Get].
package settings
