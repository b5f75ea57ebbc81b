// Package config loads and merges threadfmt configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (THREADFMT_START, THREADFMT_NAME, THREADFMT_JUMP_MIN, etc.)
//  3. A .env file in the working directory (same keys)
//  4. Config file ($XDG_CONFIG_HOME/threadfmt/config.json)
//  5. Built-in defaults
//
// Numeric values that fail to parse or are not positive fall back to the
// value from the layer below. Use [Load] to obtain a merged [Config],
// [Save] to write the config file, and [SetField] to update a single key.
package config
