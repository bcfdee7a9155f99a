// Package console renders the wizard's terminal output: section headers,
// status lines with symbols, and colourized values. Whether colour is used is
// decided once per process by DetectColor and then carried by the Console.
package console
