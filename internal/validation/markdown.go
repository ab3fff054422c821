package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkdownChecker validates a markdown document by its top-level section
// headings: every required section must be present (error if missing),
// every recommended section should be present (warning if missing).
// Documents shorter than MinContentLength get a thin-content warning.
type MarkdownChecker struct {
	Checkpoint          string
	Path                string
	RequiredSections    []string
	RecommendedSections []string
	MinContentLength    int
}

// Check validates the markdown file's sections and length.
func (c *MarkdownChecker) Check() Result {
	result := Result{Checkpoint: c.Checkpoint, Valid: true}
	name := filepath.Base(c.Path)

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError(fmt.Sprintf("file not found: %s", name))
		} else {
			result.AddError(fmt.Sprintf("cannot read %s: %v", name, err))
		}
		return result
	}

	sections := extractSections(string(raw))

	for _, section := range c.RequiredSections {
		if !sections[normalizeHeading(section)] {
			result.AddError(fmt.Sprintf("missing required section: %s", section))
		}
	}
	for _, section := range c.RecommendedSections {
		if !sections[normalizeHeading(section)] {
			result.AddWarning(fmt.Sprintf("missing recommended section: %s", section))
		}
	}

	minLength := c.MinContentLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}
	if len(raw) < minLength {
		result.AddWarning(fmt.Sprintf("%s content is only %d bytes (minimum %d); document may be a stub",
			name, len(raw), minLength))
	}

	return result
}

// extractSections returns the normalized titles of "##" headings in the
// document. Deeper heading levels are ignored; no markdown AST is built.
func extractSections(content string) map[string]bool {
	sections := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
		if title != "" {
			sections[normalizeHeading(title)] = true
		}
	}
	return sections
}

// normalizeHeading lowercases and collapses whitespace so section matching
// is case- and spacing-insensitive.
func normalizeHeading(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NewSpecDocumentChecker returns a MarkdownChecker bound to the spec
// document in dir with the given section sets and length threshold.
func NewSpecDocumentChecker(dir string, required, recommended []string, minContentLength int) *MarkdownChecker {
	return &MarkdownChecker{
		Checkpoint:          CheckpointSpec,
		Path:                filepath.Join(dir, SpecFileName),
		RequiredSections:    required,
		RecommendedSections: recommended,
		MinContentLength:    minContentLength,
	}
}
