package scaffold

import "embed"

// templatesFS holds the built-in template trees plus the variant registry.
// The all: prefix keeps dotfiles like .gitignore in the payload.
//
//go:embed all:templates
var templatesFS embed.FS
