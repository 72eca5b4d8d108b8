// Package layout describes where a project keeps its extension sources
// and where generated scaffold files go.
package layout

// PageKind names one of the four canonical extension UI surfaces.
type PageKind string

const (
	Popup    PageKind = "popup"
	Options  PageKind = "options"
	Devtools PageKind = "devtools"
	Newtab   PageKind = "newtab"
)

// PageKinds is the fixed order pages are resolved and reported in.
var PageKinds = [4]PageKind{Popup, Options, Devtools, Newtab}

// Layout supplies the path conventions the scaffolder consumes. Both
// candidate lists are ordered most specific first; the first existing
// path wins.
type Layout interface {
	// PageModuleCandidates returns the ordered candidate index-module
	// paths for a canonical page.
	PageModuleCandidates(kind PageKind) []string

	// PageHTMLCandidates returns the ordered candidate HTML paths for
	// a canonical page.
	PageHTMLCandidates(kind PageKind) []string

	// StaticDir is where mount scripts for canonical pages and content
	// scripts are written.
	StaticDir() string

	// OutDir is the root of all generated output.
	OutDir() string

	// AssetsDir is the project's static asset source directory.
	AssetsDir() string

	// MountExt is the file extension generated mount scripts use.
	MountExt() string

	// ProjectName is the display name used as the HTML document title.
	ProjectName() string

	// TemplateRoot is an on-disk scaffold template directory. Empty
	// means the built-in templates.
	TemplateRoot() string
}
