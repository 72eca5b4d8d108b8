package scaffold

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized by the built-in templates.
const (
	titleToken     = "{{.Title}}"
	scriptSrcToken = "{{.ScriptSrc}}"
	importToken    = "{{.ImportPath}}"
)

// Replacement is one literal token rewrite.
type Replacement struct {
	Token string
	Value string
}

// Apply rewrites text with each replacement in order. Replacements are
// cumulative: a later token also matches text introduced by an earlier
// value. Tokens are kept disjoint by convention; Apply does not guard
// against collisions.
func Apply(text string, replacements []Replacement) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.Token, r.Value)
	}
	return text
}

// ApplyOnePass substitutes all tokens in a single scan of the original
// text. Replacement values are never rescanned, so tokens cannot
// interfere with each other.
func ApplyOnePass(text string, replacements []Replacement) string {
	if len(replacements) == 0 {
		return text
	}
	oldnew := make([]string, 0, len(replacements)*2)
	for _, r := range replacements {
		oldnew = append(oldnew, r.Token, r.Value)
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}

// generateToFile applies replacements to text and writes the result,
// overwriting any existing file.
func (s *Scaffolder) generateToFile(text, outputPath string, replacements []Replacement) error {
	if err := s.fs.WriteFile(outputPath, []byte(Apply(text, replacements)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

// generateFromTemplate instantiates a built-in template through the
// cache.
func (s *Scaffolder) generateFromTemplate(name, outputPath string, replacements []Replacement) error {
	text, err := s.cache.Load(name)
	if err != nil {
		return err
	}
	return s.generateToFile(text, outputPath, replacements)
}
