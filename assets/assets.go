// Package assets holds the built-in sprites and sounds.
package assets

import "embed"

//go:embed *.png *.mp3
var FS embed.FS
