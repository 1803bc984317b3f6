// Package config handles board configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every field has a working default; only the ODPT API key is mandatory and
// comes from the environment rather than the file.
package config
