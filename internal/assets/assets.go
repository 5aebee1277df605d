// Package assets embeds the site's static files
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the static files rooted at the static directory
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
