package layout

import "path/filepath"

// DefaultLayout implements the conventional project layout: sources
// under src/ (or the project root), assets under public/, generated
// output under .entrygen/.
type DefaultLayout struct {
	root string
	cfg  Config
}

// NewDefault builds a layout for the project at root, filling in
// conventional defaults for any unset Config field.
func NewDefault(root string, cfg Config) *DefaultLayout {
	return &DefaultLayout{
		root: root,
		cfg:  cfg.withDefaults(root),
	}
}

// PageModuleCandidates lists index-module locations for a page, most
// specific first: src/{kind}/index{ext}, src/{kind}{ext},
// {kind}/index{ext}, {kind}{ext}, across the configured extensions.
func (l *DefaultLayout) PageModuleCandidates(kind PageKind) []string {
	name := string(kind)
	stems := []string{
		filepath.Join(l.root, l.cfg.SrcDir, name, "index"),
		filepath.Join(l.root, l.cfg.SrcDir, name),
		filepath.Join(l.root, name, "index"),
		filepath.Join(l.root, name),
	}

	candidates := make([]string, 0, len(stems)*len(l.cfg.ModuleExtensions))
	for _, stem := range stems {
		for _, ext := range l.cfg.ModuleExtensions {
			candidates = append(candidates, stem+ext)
		}
	}
	return candidates
}

// PageHTMLCandidates lists user HTML locations for a page, mirroring
// the module candidate order.
func (l *DefaultLayout) PageHTMLCandidates(kind PageKind) []string {
	name := string(kind)
	return []string{
		filepath.Join(l.root, l.cfg.SrcDir, name, "index.html"),
		filepath.Join(l.root, l.cfg.SrcDir, name+".html"),
		filepath.Join(l.root, name, "index.html"),
		filepath.Join(l.root, name+".html"),
	}
}

func (l *DefaultLayout) StaticDir() string {
	return filepath.Join(l.root, l.cfg.OutDir, "static")
}

func (l *DefaultLayout) OutDir() string {
	return filepath.Join(l.root, l.cfg.OutDir)
}

func (l *DefaultLayout) AssetsDir() string {
	return filepath.Join(l.root, l.cfg.AssetsDir)
}

func (l *DefaultLayout) MountExt() string {
	return l.cfg.MountExt
}

func (l *DefaultLayout) ProjectName() string {
	return l.cfg.Name
}

func (l *DefaultLayout) TemplateRoot() string {
	if l.cfg.TemplateRoot == "" {
		return ""
	}
	return filepath.Join(l.root, l.cfg.TemplateRoot)
}

// UIExtensions returns the extensions treated as UI-framework modules
// when dispatching mounts.
func (l *DefaultLayout) UIExtensions() []string {
	return l.cfg.UIExtensions
}
