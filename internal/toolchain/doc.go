// Package toolchain probes the local JavaScript toolchain: Node.js presence
// and minimum version, plus which of the supported package managers are on
// PATH. It backs the doctor command.
package toolchain
