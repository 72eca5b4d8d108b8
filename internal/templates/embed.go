package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:scaffold
var scaffoldFS embed.FS

// Built-in template file names.
const (
	IndexHTML    = "index.html"
	PageMount    = "page-mount.js"
	ContentMount = "content-mount.js"
)

// Builtin returns the embedded scaffold template directory.
func Builtin() fs.FS {
	sub, err := fs.Sub(scaffoldFS, "scaffold")
	if err != nil {
		panic("templates: embedded scaffold directory missing: " + err.Error())
	}
	return sub
}
