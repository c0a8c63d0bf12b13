// Package classify counts the blank, comment and code lines of a file.
package classify

import (
	"iter"
	"strings"

	"linescope/internal/domain"
	"linescope/internal/language"
)

type state int

const (
	normal state = iota
	inBlockComment
)

// Classify tallies every line of content. Files of an unknown language
// have no comment category: each line is either blank or code.
func Classify(content string, lang language.Language) domain.Classification {
	c := domain.Classification{
		Language: lang.String(),
		Size:     int64(len(content)),
	}

	profile, known := lang.Profile()
	st := normal

	for line := range lines(content) {
		c.Lines++

		if !known {
			if isBlank(line) {
				c.Blank++
			} else {
				c.Code++
			}
			continue
		}

		switch st {
		case normal:
			switch {
			case isBlank(line):
				c.Blank++
			case profile.IsLineComment(line):
				c.Comment++
			default:
				rest, opened := profile.OpensBlock(line)
				if !opened {
					c.Code++
					break
				}
				c.Comment++
				// a block closed on its opening line leaves the state untouched
				if !profile.ClosesBlock(rest) {
					st = inBlockComment
				}
			}
		case inBlockComment:
			c.Comment++
			if profile.ClosesBlock(line) {
				st = normal
			}
		}
	}

	return c
}

// lines yields the lines of content without their terminators. A trailing
// newline does not produce an extra empty line.
func lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(content) {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
