// Package cli wires the cobra command tree: the root command scaffolds a new
// project, with version and doctor as auxiliary subcommands. All argument
// parsing and terminal interaction lives here; the scaffold and installer
// packages receive already-parsed configuration.
package cli
