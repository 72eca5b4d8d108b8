package scaffold

import (
	"fmt"
	"strings"

	"github.com/lanternworks/entrygen/internal/templates"
)

const closingBodyTag = "</body>"

// generateHTML writes an HTML document at outputPath that loads the
// module at scriptSrc. When htmlFile is non-empty the user's document
// seeds the output and a root mount element plus module script tag are
// injected immediately before its closing body tag; otherwise the
// built-in shell template is instantiated.
func (s *Scaffolder) generateHTML(htmlFile, outputPath, scriptSrc string) error {
	replacements := []Replacement{
		{Token: titleToken, Value: s.layout.ProjectName()},
		{Token: scriptSrcToken, Value: scriptSrc},
	}

	if htmlFile == "" {
		return s.generateFromTemplate(templates.IndexHTML, outputPath, replacements)
	}

	// User content is read fresh on every call, never cached.
	data, err := s.fs.ReadFile(htmlFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", htmlFile, err)
	}
	text := string(data)

	if !strings.Contains(text, closingBodyTag) {
		s.log.Warn().Str("file", htmlFile).Msg("no closing body tag found, mount point not injected")
	}

	mount := fmt.Sprintf("<div id=\"root\"></div>\n<script type=\"module\" src=%q></script>\n%s", scriptSrc, closingBodyTag)
	replacements = append(replacements, Replacement{Token: closingBodyTag, Value: mount})

	return s.generateToFile(text, outputPath, replacements)
}
