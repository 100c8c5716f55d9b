// Package installer resolves which package manager governs a freshly
// scaffolded project and runs its install step. Detection walks an ordered
// list of detectors (explicit choice, invoking-manager user agent, lock
// files, default) and the install itself is spawned as a child process with
// a timeout. A failed install persists a diagnostic log under the project's
// .nextellar directory so the user can self-service the failure.
package installer
