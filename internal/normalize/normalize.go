// Package normalize provides utilities for normalizing and comparing book metadata.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Matches any non-alphanumeric character.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// TitleKey reduces a book title to a canonical comparison key.
// "The Midnight Library" and "the midnight  library!" produce the same
// key, so title equality survives case, punctuation and accent noise.
func TitleKey(title string) string {
	// Decompose accented characters, then drop the combining marks.
	s := norm.NFKD.String(title)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeString removes null bytes, which can corrupt JSON payloads.
// Some upstream catalog records include null terminators in strings.
func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
}
