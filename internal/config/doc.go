// Package config loads, normalizes, and validates subjectid configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SUBJECTID_CONFIG environment
// override. The Config type centralizes every knob the CLI needs: state and
// log directories, ingest limits, generation defaults, the optional
// credential gate, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical method tokens, and clear validation errors.
package config
