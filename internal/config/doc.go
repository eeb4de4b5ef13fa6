// Package config loads, normalizes, and validates subscore configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SUBSCORE_DATA_DIR environment
// override. Weight overrides are stored as plain match-kind keyed maps so the
// scoring packages stay free of configuration concerns.
package config
