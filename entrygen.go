// Package entrygen materializes build-time scaffold artifacts for a
// convention-driven extension-bundling pipeline: an HTML entry
// document per UI surface and a thin mount script that imports the
// user's module under a synthetic alias.
package entrygen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lanternworks/entrygen/internal/fsys"
	"github.com/lanternworks/entrygen/internal/layout"
	"github.com/lanternworks/entrygen/internal/scaffold"
)

type (
	// Module identifies a discovered source file relative to the
	// project root.
	Module = scaffold.Module

	// PageResult reports whether a canonical page resolved to a user
	// index module.
	PageResult = scaffold.PageResult

	// PageKind names one of the four canonical UI surfaces.
	PageKind = layout.PageKind

	// Layout supplies a project's path conventions.
	Layout = layout.Layout

	// Config customizes the default layout conventions.
	Config = layout.Config

	// Option configures an App.
	Option = scaffold.Option
)

const (
	Popup    = layout.Popup
	Options  = layout.Options
	Devtools = layout.Devtools
	Newtab   = layout.Newtab
)

// App scaffolds one project.
type App struct {
	scaffolder *scaffold.Scaffolder
}

// New creates an App over the given layout.
func New(l Layout, opts ...Option) *App {
	return &App{scaffolder: scaffold.New(l, opts...)}
}

// Init copies static assets and generates all four canonical pages
// concurrently. The returned results are ordered popup, options,
// devtools, newtab. On error, operations already in flight run to
// completion, so partial output may exist on disk.
func (a *App) Init(ctx context.Context) ([]PageResult, error) {
	return a.scaffolder.Init(ctx)
}

// CreatePageMount scaffolds an arbitrary module as a page and returns
// the generated HTML path.
func (a *App) CreatePageMount(m Module) (string, error) {
	return a.scaffolder.CreatePageMount(m)
}

// CreateContentScriptMount scaffolds a content script wrapper and
// returns the generated script path.
func (a *App) CreateContentScriptMount(m Module) (string, error) {
	return a.scaffolder.CreateContentScriptMount(m)
}

// NewLayout builds the conventional layout for the project at root.
func NewLayout(root string, cfg Config) *layout.DefaultLayout {
	return layout.NewDefault(root, cfg)
}

// LoadConfig reads entrygen.yaml from the project root. A missing
// file yields the zero Config and conventional defaults apply.
func LoadConfig(root string) (Config, error) {
	return layout.LoadConfig(fsys.NewOSFS(), root)
}

// WithUIExtensions sets the extensions treated as UI-framework
// modules when dispatching mounts.
func WithUIExtensions(exts []string) Option {
	return scaffold.WithUIExtensions(exts)
}

// WithLogger sets the logger used by the scaffolder.
func WithLogger(log zerolog.Logger) Option {
	return scaffold.WithLogger(log)
}
