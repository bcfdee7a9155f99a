// Package manifest checks a rewritten composer.json: the document is validated
// against an embedded JSON Schema and every dependency constraint is parsed as
// a semver constraint. Findings are advisory; the wizard prints them as
// warnings and carries on.
package manifest
