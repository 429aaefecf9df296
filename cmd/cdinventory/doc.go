// Package main hosts the cdinventory CLI entrypoint and command graph.
//
// Running the binary without a subcommand starts the interactive menu session
// against the configured inventory snapshot. Subcommands cover the
// non-interactive paths: printing the stored inventory and scaffolding or
// validating configuration. Configuration resolution, logger construction,
// and storage selection are centralized here so the internal packages stay
// free of wiring.
package main
