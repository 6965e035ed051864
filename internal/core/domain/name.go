package domain

import (
	"strings"
	"unicode"
)

// ToKebabCase converts a free-text display name into a kebab-case slug.
// CamelCase word boundaries become hyphens; spaces, underscores and
// hyphen runs collapse to a single hyphen; everything else is dropped
// by SanitizePluginName.
func ToKebabCase(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	previousWasHyphen := false

	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && b.Len() > 0 && !previousWasHyphen {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			previousWasHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if b.Len() > 0 && !previousWasHyphen {
				b.WriteByte('-')
				previousWasHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// ToDisplayName converts a kebab-case slug back into a title-cased
// display name.
func ToDisplayName(kebab string) string {
	parts := strings.Split(kebab, "-")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		words = append(words, strings.ToUpper(p[:1])+p[1:])
	}
	return strings.Join(words, " ")
}

// SanitizePluginName produces an identifier-safe slug: kebab-case with
// only letters, digits and hyphens remaining.
func SanitizePluginName(input string) string {
	kebab := ToKebabCase(input)
	var b strings.Builder
	for _, r := range kebab {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
