package keys

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded, trimmed form of a character name. Two names
// refer to the same roster entry when their folded forms are equal.
func Fold(name string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether a and b name the same character.
func SameName(a, b string) bool {
	return Fold(a) == Fold(b)
}

// CharacterKey produces a URL-safe key for a character name.
// Behavior: folds case, replaces runs of spaces with a single underscore
// and drops anything that is not a letter, digit, '-' or '_'.
// "Obi-Wan Kenobi" -> "obi-wan_kenobi".
func CharacterKey(name string) string {
	parts := strings.Fields(Fold(name))
	for i, p := range parts {
		parts[i] = strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
				return r
			default:
				return -1
			}
		}, p)
	}
	return strings.Join(parts, "_")
}
