// Package config resolves runtime settings for the setup wizard from the
// environment (TIEXT_*) and an optional user config file at
// $XDG_CONFIG_HOME/tiext-setup/config.yaml. Nothing here is written back; the
// wizard itself never persists state.
package config
