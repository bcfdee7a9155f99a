// Package extension holds the configuration record collected by the setup
// wizard, the validators for its user-supplied fields, and the derivations
// (composer package, extension code, escaped namespace, ...) computed from them.
package extension
