// Package config loads, normalizes, and validates laudure configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the OPENAI_API_KEY environment
// fallback for the inference credential. Obtain settings through this package
// so stage code receives sanitized paths, canonical log formats, and clear
// validation errors.
package config
