// Package content embeds the built-in scenarios.
package content

import "embed"

// HyruleDir is the directory of the default scenario inside Hyrule.
const HyruleDir = "hyrule"

// Hyrule holds the Lua files of the default scenario.
//
//go:embed hyrule/*.lua
var Hyrule embed.FS
