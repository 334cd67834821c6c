// Package config manages Depot server configuration.
//
// Configuration is loaded from a YAML file (DEPOT_CONFIG_PATH/depot.yml)
// and overridden by DEPOT_* environment variables. Each attribute tracks
// the source it was resolved from (default, file, or environment) so the
// "depotctl configuration show" command can report provenance.
package config
