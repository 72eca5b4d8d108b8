package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHTMLFromBuiltinTemplate(t *testing.T) {
	s, fs := newTestScaffolder(t)
	require.NoError(t, fs.MkdirAll(out(), 0o755))

	require.NoError(t, s.generateHTML("", out("popup.html"), "./static/popup.mount.js"))

	got := readFile(t, fs, out("popup.html"))
	assert.Contains(t, got, "<title>Demo Extension</title>")
	assert.Contains(t, got, `<script type="module" src="./static/popup.mount.js"></script>`)
	assert.Contains(t, got, `<div id="root">`)
	assert.NotContains(t, got, "{{.")
}

func TestGenerateHTMLInjectsMountPoint(t *testing.T) {
	s, fs := newTestScaffolder(t)
	require.NoError(t, fs.MkdirAll(out(), 0o755))

	source := "<!doctype html>\n<html>\n<head><title>Custom</title></head>\n<body>\n<p>hello</p>\n</body>\n</html>\n"
	writeFile(t, fs, src("src", "popup", "index.html"), source)

	require.NoError(t, s.generateHTML(src("src", "popup", "index.html"), out("popup.html"), "./static/popup.mount.js"))

	got := readFile(t, fs, out("popup.html"))

	injected := "<div id=\"root\"></div>\n<script type=\"module\" src=\"./static/popup.mount.js\"></script>\n</body>"
	assert.Equal(t, strings.ReplaceAll(source, "</body>", injected), got,
		"original bytes preserved with mount point inserted before closing body tag")
	assert.Equal(t, 1, strings.Count(got, `<div id="root">`))
	assert.Equal(t, 1, strings.Count(got, "<script"))
}

func TestGenerateHTMLMissingBodyMarker(t *testing.T) {
	s, fs := newTestScaffolder(t)
	require.NoError(t, fs.MkdirAll(out(), 0o755))

	source := "<p>fragment without body</p>\n"
	writeFile(t, fs, src("fragment.html"), source)

	require.NoError(t, s.generateHTML(src("fragment.html"), out("fragment-out.html"), "./static/x.mount.js"))

	// Injection silently does not occur.
	assert.Equal(t, source, readFile(t, fs, out("fragment-out.html")))
}

func TestGenerateHTMLReplacesTokensInUserFile(t *testing.T) {
	s, fs := newTestScaffolder(t)
	require.NoError(t, fs.MkdirAll(out(), 0o755))

	writeFile(t, fs, src("custom.html"), "<html><head><title>{{.Title}}</title></head><body></body></html>")

	require.NoError(t, s.generateHTML(src("custom.html"), out("custom-out.html"), "./static/x.mount.js"))

	got := readFile(t, fs, out("custom-out.html"))
	assert.Contains(t, got, "<title>Demo Extension</title>")
	assert.Contains(t, got, `src="./static/x.mount.js"`)
}

func TestGenerateHTMLMissingUserFile(t *testing.T) {
	s, _ := newTestScaffolder(t)

	err := s.generateHTML(src("nope.html"), out("nope-out.html"), "./static/x.mount.js")
	assert.Error(t, err)
}
