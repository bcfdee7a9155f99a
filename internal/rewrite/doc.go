// Package rewrite applies literal text substitutions to template files and
// performs the file swaps (license, README) that personalize a template tree.
//
// All paths are relative to the afero.Fs the Engine was built with; the CLI
// roots that filesystem at the working directory.
package rewrite
