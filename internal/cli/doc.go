// Package cli defines the Cobra command tree for tiext-setup. The root command
// runs the setup wizard against the working directory. The doctor command
// inspects a template checkout without touching it, config reads and writes
// the user settings file, and version prints build information. Commands only
// wire dependencies and format errors; the session itself lives in the wizard
// package.
package cli
