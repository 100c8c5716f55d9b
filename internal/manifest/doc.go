// Package manifest handles parsing and validation of the package.json written
// into a freshly scaffolded project. Validation runs the generated file
// against an embedded JSON Schema so a broken template or a placeholder value
// that corrupts the manifest surfaces as a warning right after generation.
package manifest
