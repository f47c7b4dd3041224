package localefs

import "embed"

//go:embed bundles/*.yaml
var bundleFiles embed.FS

// Bundled serves the locale bundles compiled into the binary
func Bundled() *Repository {
	return NewRepository(bundleFiles, "bundles")
}
