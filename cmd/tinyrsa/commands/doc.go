// Package commands defines the tinyrsa CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a key pair and write both halves
//   - encrypt      Encrypt a file with a public key
//   - decrypt      Decrypt a file with a private key
//   - inspect      Describe a key file
//   - fingerprint  Print the modulus fingerprint of a key file
//
// # Implementation
//
// The root command binds flags into viper and builds the dependency graph
// (stores, services, logger) before any subcommand runs. Settings resolve from
// flags, then TINYRSA_* environment variables (optionally loaded from a .env
// file), then the YAML config file, then defaults.
package commands
