package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Tidy applies an optional cleanup pass over raw names before normalization:
// whitespace runs collapse to single spaces, leading and trailing punctuation
// is stripped (interior punctuation such as O'Connor survives), and the name
// is title-cased. Entries that tidy away to nothing are passed through
// unchanged so normalization still rejects and reports them.
func Tidy(raw []string) []string {
	tidied := make([]string, len(raw))
	for i, value := range raw {
		tidied[i] = TidyName(value)
	}
	return tidied
}

// TidyName cleans a single raw name. An input that reduces to the empty
// string is returned as-is.
func TidyName(value string) string {
	name := strings.Join(strings.Fields(value), " ")
	name = strings.TrimFunc(name, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	name = strings.TrimSpace(name)
	if name == "" {
		return value
	}
	return titleCaser.String(name)
}
