package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/entrygen/internal/fsys"
	"github.com/lanternworks/entrygen/internal/layout"
)

const testRoot = "/proj"

func newTestScaffolder(t *testing.T, opts ...Option) (*Scaffolder, fsys.FS) {
	t.Helper()

	fs := fsys.NewAferoFS(afero.NewMemMapFs())
	l := layout.NewDefault(testRoot, layout.Config{Name: "Demo Extension"})

	all := append([]Option{WithFS(fs)}, opts...)
	return New(l, all...), fs
}

func writeFile(t *testing.T, fs fsys.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, fs.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, fs fsys.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func out(parts ...string) string {
	return filepath.Join(append([]string{testRoot, ".entrygen"}, parts...)...)
}

func src(parts ...string) string {
	return filepath.Join(append([]string{testRoot}, parts...)...)
}
