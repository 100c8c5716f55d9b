// Package scaffold materializes a new Nextellar project from an embedded
// template tree. It copies the tree to the target directory (excluding
// version-control and dependency-cache directories), then rewrites placeholder
// tokens in a fixed set of files with run-specific values such as the app
// name, the Stellar endpoints, and the wallet-adapter list.
package scaffold
