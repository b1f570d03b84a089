// Package config handles prunarr's TOML configuration: locating the config
// file, applying defaults, reading environment fallbacks for the Radarr
// credential and keep-list path, and validating the result.
package config
