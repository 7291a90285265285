// Package assets serves the shell's static files.
package assets

import (
	"net/http"

	"github.com/nfrund/compliance-shell/web"
	"github.com/spf13/afero"
)

// NewFS returns the filesystem static files are served from. With an empty
// dir it is the embedded web assets; otherwise it is dir on disk, which must
// contain a static/ subdirectory. Either way the result is read-only.
func NewFS(dir string) afero.Fs {
	if dir == "" {
		return afero.FromIOFS{FS: web.FS}
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Handler serves files from fs by request path, so /static/app.css is read
// from static/app.css.
func Handler(fs afero.Fs) http.Handler {
	return http.FileServer(http.FS(afero.NewIOFS(fs)))
}
