package scaffold

import (
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lanternworks/entrygen/internal/fsys"
	"github.com/lanternworks/entrygen/internal/layout"
	"github.com/lanternworks/entrygen/internal/templates"
)

// PageResult reports whether a canonical page resolved to a user index
// module. Pages without one still get scaffold output, wired to the
// synthetic alias.
type PageResult struct {
	Kind     layout.PageKind
	HasIndex bool
}

// resolveFirst returns the first candidate that exists on disk.
func (s *Scaffolder) resolveFirst(candidates []string) (string, bool) {
	for _, path := range candidates {
		if fsys.Exists(s.fs, path) {
			return path, true
		}
	}
	return "", false
}

// createPage scaffolds one canonical UI surface: a mount script under
// the static dir and an HTML entry document in the output root. Both
// are generated concurrently once the static dir exists.
func (s *Scaffolder) createPage(kind layout.PageKind) (bool, error) {
	module, found := s.resolveFirst(s.layout.PageModuleCandidates(kind))
	htmlFile, _ := s.resolveFirst(s.layout.PageHTMLCandidates(kind))

	staticDir := s.layout.StaticDir()
	if err := s.fs.MkdirAll(staticDir, 0o755); err != nil {
		return false, err
	}

	importPath := "~" + string(kind)
	if found {
		rel, err := filepath.Rel(staticDir, module)
		if err != nil {
			return false, err
		}
		importPath = filepath.ToSlash(rel)
	}

	mountName := string(kind) + s.layout.MountExt()
	scriptPath := filepath.Join(staticDir, mountName)
	htmlPath := filepath.Join(s.layout.OutDir(), string(kind)+".html")

	s.log.Debug().
		Str("page", string(kind)).
		Str("import", importPath).
		Bool("hasIndex", found).
		Msg("resolved page")

	var g errgroup.Group
	g.Go(func() error {
		return s.generateFromTemplate(templates.PageMount, scriptPath, []Replacement{
			{Token: importToken, Value: importPath},
		})
	})
	g.Go(func() error {
		return s.generateHTML(htmlFile, htmlPath, "./static/"+mountName)
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	return found, nil
}
