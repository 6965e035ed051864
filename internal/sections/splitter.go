package sections

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// numberedHeading matches section prefixes like "1. Overview" or "1.2 Setup".
var numberedHeading = regexp.MustCompile(`^(\d+\.)+\d*\s+(.+)$`)

// detectedHeading is a heading candidate found in a single line.
type detectedHeading struct {
	title string
	level int
}

// Split divides raw text into sections at detected heading lines.
// Content before the first heading falls under the default title
// "Introduction". A section is only emitted when its accumulated
// content is non-empty after trimming. Input with content but no
// detectable structure collapses to a single "Content" section.
func Split(text string) []domain.ContentSection {
	var sections []domain.ContentSection
	currentTitle := "Introduction"
	currentLevel := 1
	var currentContent []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(currentContent, "\n"))
		if content == "" {
			return
		}
		sections = append(sections, domain.ContentSection{
			Title:   currentTitle,
			Content: content,
			Level:   currentLevel,
			Role:    Classify(currentTitle),
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if h, ok := detectHeading(line); ok {
			flush()
			currentTitle = h.title
			currentLevel = h.level
			currentContent = nil
		} else {
			currentContent = append(currentContent, line)
		}
	}
	flush()

	if len(sections) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			sections = append(sections, domain.ContentSection{
				Title:   "Content",
				Content: trimmed,
				Level:   1,
				Role:    domain.RoleOther,
			})
		}
	}

	return sections
}

// detectHeading checks a line against the heading heuristics, in
// priority order: Markdown hashes, ALL-CAPS lines, numbered sections.
func detectHeading(line string) (detectedHeading, bool) {
	trimmed := strings.TrimSpace(line)

	// Markdown-style headings.
	if strings.HasPrefix(trimmed, "#") {
		hashes := 0
		for _, r := range trimmed {
			if r != '#' {
				break
			}
			hashes++
		}
		level := hashes
		if level > 6 {
			level = 6
		}
		title := strings.TrimSpace(trimmed[hashes:])
		if title != "" {
			return detectedHeading{title: title, level: level}, true
		}
	}

	// ALL-CAPS lines, common in text extracted from PDFs and Word
	// documents. Deliberately loose: any short yell-cased line counts.
	length := utf8.RuneCountInString(trimmed)
	if length >= 3 && length <= 100 &&
		trimmed == strings.ToUpper(trimmed) &&
		containsLetter(trimmed) &&
		!strings.Contains(trimmed, "  ") {
		return detectedHeading{title: titleCase(trimmed), level: 1}, true
	}

	// Numbered sections like "1. Overview" or "1.2 Setup". Level is the
	// count of dot groups in the numeric prefix.
	if m := numberedHeading.FindStringSubmatch(trimmed); m != nil {
		prefixEnd := 0
		for i, r := range trimmed {
			if !unicode.IsDigit(r) && r != '.' {
				break
			}
			prefixEnd = i + 1
		}
		level := strings.Count(trimmed[:prefixEnd], ".")
		if level < 1 {
			level = 1
		}
		title := strings.TrimSpace(trimmed[prefixEnd:])
		return detectedHeading{title: title, level: level}, true
	}

	return detectedHeading{}, false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// titleCase capitalises the first letter of each word and lowercases
// the rest, matching how ALL-CAPS headings are normalised.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		for j, r := range runes {
			if unicode.IsLetter(r) {
				runes[j] = unicode.ToUpper(r)
				break
			}
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
