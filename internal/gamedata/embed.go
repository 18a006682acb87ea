// Package gamedata provides the embedded default rules and loaders for
// user-supplied rule files.
package gamedata

import "embed"

// dataFS embeds the JSON rule sets shipped with the game.
//
//go:embed *.json
var dataFS embed.FS
