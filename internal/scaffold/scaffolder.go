// Package scaffold generates the glue files an extension bundler
// consumes: an HTML entry document per UI surface and a thin mount
// script importing the user's module under a synthetic alias.
package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lanternworks/entrygen/internal/fsys"
	"github.com/lanternworks/entrygen/internal/layout"
	"github.com/lanternworks/entrygen/internal/templates"
)

// Scaffolder materializes scaffold artifacts for one project. It is
// safe for concurrent use; the template cache is its only shared
// mutable state.
type Scaffolder struct {
	layout  layout.Layout
	fs      fsys.FS
	cache   *templates.Cache
	isUIExt func(ext string) bool
	log     zerolog.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithFS replaces the filesystem the scaffolder reads and writes.
func WithFS(fs fsys.FS) Option {
	return func(s *Scaffolder) { s.fs = fs }
}

// WithTemplateFS replaces the scaffold template source.
func WithTemplateFS(source fs.FS) Option {
	return func(s *Scaffolder) { s.cache = templates.NewCache(source) }
}

// WithUIExtensions sets the extensions treated as UI-framework modules.
func WithUIExtensions(exts []string) Option {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return func(s *Scaffolder) {
		s.isUIExt = func(ext string) bool { return set[ext] }
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scaffolder) { s.log = log }
}

var defaultUIExtensions = map[string]bool{
	".tsx":    true,
	".jsx":    true,
	".svelte": true,
	".vue":    true,
}

// New creates a Scaffolder for the given layout. Without options it
// uses the OS filesystem, the built-in templates (or the layout's
// template root when set) and the default UI extension set.
func New(l layout.Layout, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		layout:  l,
		fs:      fsys.NewOSFS(),
		isUIExt: func(ext string) bool { return defaultUIExtensions[ext] },
		log:     zerolog.Nop(),
	}

	if root := l.TemplateRoot(); root != "" {
		s.cache = templates.NewCache(os.DirFS(root))
	} else {
		s.cache = templates.NewCache(nil)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init copies static assets and generates all four canonical pages.
// The five operations run concurrently; the first failure is returned
// after every operation has finished, so partial output may exist on
// disk after an error. Results are ordered popup, options, devtools,
// newtab; HasIndex reports whether a user index module was found.
func (s *Scaffolder) Init(ctx context.Context) ([]PageResult, error) {
	s.log.Debug().Str("out", s.layout.OutDir()).Msg("scaffolding project")

	if err := s.fs.MkdirAll(s.layout.OutDir(), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]PageResult, len(layout.PageKinds))

	var g errgroup.Group
	g.Go(func() error {
		dst := filepath.Join(s.layout.OutDir(), "public")
		if err := fsys.CopyDir(s.fs, s.layout.AssetsDir(), dst); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		return nil
	})
	for i, kind := range layout.PageKinds {
		i, kind := i, kind
		g.Go(func() error {
			found, err := s.createPage(kind)
			if err != nil {
				return fmt.Errorf("failed to generate %s page: %w", kind, err)
			}
			results[i] = PageResult{Kind: kind, HasIndex: found}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
