package sections

import (
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// SplitMarkdown divides Markdown text into sections using its block
// structure rather than line heuristics: only hash headings start new
// sections, fenced code blocks are preserved verbatim (fences included),
// list items are normalised to "- " and block quotes to "> " prefixes.
// Unlike Split, a heading with no body still emits a section once a
// later section starts, because the heading itself marks structure.
func SplitMarkdown(content string) []domain.ContentSection {
	w := markdownWalker{}
	w.walk(content)
	w.flush()

	if len(w.sections) == 0 {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			return []domain.ContentSection{{
				Title:   "Content",
				Content: trimmed,
				Level:   1,
				Role:    domain.RoleOther,
			}}
		}
	}

	return w.sections
}

// markdownWalker accumulates block content between headings.
type markdownWalker struct {
	sections   []domain.ContentSection
	heading    string
	level      int
	content    []string
	hasStarted bool
}

func (w *markdownWalker) flush() {
	content := strings.TrimSpace(strings.Join(w.content, "\n"))
	if content == "" && !w.hasStarted {
		return
	}
	title := w.heading
	if title == "" {
		title = "Introduction"
	}
	level := w.level
	if level == 0 {
		level = 1
	}
	w.sections = append(w.sections, domain.ContentSection{
		Title:   title,
		Content: content,
		Level:   level,
		Role:    Classify(title),
	})
}

func (w *markdownWalker) walk(content string) {
	lines := strings.Split(content, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		// Fenced code blocks pass through verbatim, fences included.
		if strings.HasPrefix(trimmed, "```") {
			block := []string{trimmed}
			i++
			for i < len(lines) {
				block = append(block, lines[i])
				if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
					i++
					break
				}
				i++
			}
			w.content = append(w.content, strings.Join(block, "\n"))
			w.hasStarted = true
			continue
		}

		if title, level, ok := hashHeading(trimmed); ok {
			w.flush()
			w.heading = title
			w.level = level
			w.content = nil
			w.hasStarted = true
			i++
			continue
		}

		switch {
		case trimmed == "":
			// Blank lines separate paragraphs; nothing accumulates.
		case isListItem(trimmed):
			w.content = append(w.content, "- "+listItemText(trimmed))
			w.hasStarted = true
		case strings.HasPrefix(trimmed, ">"):
			w.content = append(w.content, "> "+strings.TrimSpace(strings.TrimPrefix(trimmed, ">")))
			w.hasStarted = true
		default:
			w.content = append(w.content, trimmed)
			w.hasStarted = true
		}
		i++
	}
}

// hashHeading parses an ATX heading line.
func hashHeading(trimmed string) (string, int, bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return "", 0, false
	}
	hashes := 0
	for _, r := range trimmed {
		if r != '#' {
			break
		}
		hashes++
	}
	if hashes > 6 {
		return "", 0, false
	}
	title := strings.TrimSpace(trimmed[hashes:])
	if title == "" {
		return "", 0, false
	}
	return title, hashes, true
}

func isListItem(trimmed string) bool {
	for _, prefix := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func listItemText(trimmed string) string {
	return strings.TrimSpace(trimmed[2:])
}
