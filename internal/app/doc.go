// Package app wires application dependencies for the CLI.
//
// It resolves Config from flags, environment, an optional .env file and a YAML
// config file, then builds the concrete stores and high-level services,
// exposing them via the Wire struct for commands to use.
package app
