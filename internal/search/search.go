// Package search finds lines matching a literal pattern or a TODO marker.
package search

import (
	"strings"

	"linescope/internal/domain"
	"linescope/internal/language"
)

// TODOToken is the marker searched for after a language's comment prefix
const TODOToken = "TODO"

// Query describes what to look for
type Query struct {
	Pattern string
	TODO    bool
}

// Literal returns a query matching every line containing pattern
func Literal(pattern string) Query {
	return Query{Pattern: pattern}
}

// TODO returns a query matching TODO comments
func TODO() Query {
	return Query{Pattern: TODOToken, TODO: true}
}

// String returns the text shown to the user for the query
func (q Query) String() string {
	return q.Pattern
}

// NeedsLanguage reports whether files of an unknown language can be
// skipped without reading them
func (q Query) NeedsLanguage() bool {
	return q.TODO
}

// Search returns the matching lines of content in file order. TODO queries
// only apply to recognized languages and return nil otherwise.
func Search(content string, lang language.Language, q Query) []domain.Match {
	if !q.TODO {
		return matchLines(content, q.Pattern, func(line string) string {
			return strings.TrimSpace(line)
		})
	}

	profile, ok := lang.Profile()
	if !ok {
		return nil
	}
	pattern := profile.LineComment + " " + TODOToken
	return matchLines(content, pattern, func(line string) string {
		_, after, _ := strings.Cut(line, pattern)
		return strings.TrimSpace(after)
	})
}

func matchLines(content, pattern string, text func(string) string) []domain.Match {
	var matches []domain.Match
	number := 0
	for line := range strings.Lines(content) {
		number++
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(line, pattern) {
			matches = append(matches, domain.Match{Line: number, Text: text(line)})
		}
	}
	return matches
}
