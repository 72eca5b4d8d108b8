package scaffold

import (
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lanternworks/entrygen/internal/templates"
)

// Module identifies a discovered source file relative to the project
// root: an additional page, an arbitrary mountable module, or a
// content script.
type Module struct {
	Dir  string // relative directory, "" for the project root
	Name string // base name without extension
	Ext  string // extension including the leading dot
}

// Alias is the virtual import path the bundler resolves for this
// module.
func (m Module) Alias() string {
	return "~" + path.Join(filepath.ToSlash(m.Dir), m.Name)
}

// CreatePageMount scaffolds an arbitrary module as a page and returns
// the generated HTML path. Modules with a UI-framework extension get a
// mount script plus an HTML document referencing it; anything else
// gets a single HTML document whose script tag imports the module
// directly through its alias.
func (s *Scaffolder) CreatePageMount(m Module) (string, error) {
	outDir := filepath.Join(s.layout.OutDir(), m.Dir)
	if err := s.fs.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	htmlPath := filepath.Join(outDir, m.Name+".html")

	if !s.isUIExt(m.Ext) {
		// Directly importable by the bundler, no wrapper needed.
		if err := s.generateHTML("", htmlPath, m.Alias()+m.Ext); err != nil {
			return "", err
		}
		return htmlPath, nil
	}

	mountName := m.Name + s.layout.MountExt()
	scriptPath := filepath.Join(outDir, mountName)

	var g errgroup.Group
	g.Go(func() error {
		return s.generateFromTemplate(templates.PageMount, scriptPath, []Replacement{
			{Token: importToken, Value: m.Alias()},
		})
	})
	g.Go(func() error {
		return s.generateHTML("", htmlPath, "./"+mountName)
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	return htmlPath, nil
}

// CreateContentScriptMount scaffolds a content script wrapper under
// the static dir mirror of the module's directory and returns the
// script path. Content scripts are always wrapped; there is no HTML
// surface to mount them in.
func (s *Scaffolder) CreateContentScriptMount(m Module) (string, error) {
	dir := filepath.Join(s.layout.StaticDir(), m.Dir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	scriptPath := filepath.Join(dir, m.Name+s.layout.MountExt())
	err := s.generateFromTemplate(templates.ContentMount, scriptPath, []Replacement{
		{Token: importToken, Value: m.Alias()},
	})
	if err != nil {
		return "", err
	}

	return scriptPath, nil
}
