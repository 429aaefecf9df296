// Package config loads, normalizes, and validates cdinventory configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// CDINVENTORY_FILE. A `.env` file in the working directory is folded into the
// environment first so per-directory catalogs can pin their own storage
// location without a config file.
//
// Always obtain settings through this package so the storage layer and logger
// receive absolute paths and canonical enum values.
package config
