// assets/embed.go

// Package assets holds files compiled into the binary.
package assets

import _ "embed"

// Words is the default word list used when no word file is configured.
//
//go:embed words.txt
var Words string
