// Package language maps file names to languages and holds the comment
// grammar of each recognized language.
package language

import (
	"path/filepath"
	"regexp"
	"strings"

	"linescope/internal/domain"
)

// Language identifies a recognized language. Unknown is the zero value.
type Language int

const (
	Unknown Language = iota
	C
	CPP
	CSharp
	Dockerfile
	Go
	Haskell
	Java
	JavaScript
	Kotlin
	Makefile
	Python
	Ruby
	Rust
	SQL
	Scala
	Shell
	Swift
	TOML
	TypeScript
	YAML
)

// Profile is the comment grammar of a language. The literal markers are
// kept next to the compiled patterns so callers never have to recover a
// marker from a regular expression.
type Profile struct {
	Name        string
	LineComment string
	BlockBegin  string // empty when the language has no block comments
	BlockEnd    string

	line  *regexp.Regexp
	begin *regexp.Regexp
}

func newProfile(name, lineComment, blockBegin, blockEnd string) Profile {
	p := Profile{
		Name:        name,
		LineComment: lineComment,
		BlockBegin:  blockBegin,
		BlockEnd:    blockEnd,
		line:        regexp.MustCompile(`^\s*` + regexp.QuoteMeta(lineComment)),
	}
	if blockBegin != "" && blockEnd != "" {
		p.begin = regexp.MustCompile(`^\s*` + regexp.QuoteMeta(blockBegin))
	}
	return p
}

// IsLineComment reports whether line starts with the single-line marker
func (p Profile) IsLineComment(line string) bool {
	return p.line.MatchString(line)
}

// OpensBlock reports whether line starts a block comment. The returned
// rest is the text following the begin marker.
func (p Profile) OpensBlock(line string) (rest string, ok bool) {
	if p.begin == nil {
		return "", false
	}
	loc := p.begin.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[1]:], true
}

// ClosesBlock reports whether a block comment open at the start of line is
// closed at its end. A block reopened after its end marker stays open.
func (p Profile) ClosesBlock(line string) bool {
	if p.begin == nil {
		return false
	}
	for {
		i := strings.Index(line, p.BlockEnd)
		if i < 0 {
			return false
		}
		line = line[i+len(p.BlockEnd):]
		j := strings.Index(line, p.BlockBegin)
		if j < 0 {
			return true
		}
		line = line[j+len(p.BlockBegin):]
	}
}

var profiles = map[Language]Profile{
	C:          newProfile("C", "//", "/*", "*/"),
	CPP:        newProfile("C++", "//", "/*", "*/"),
	CSharp:     newProfile("C#", "//", "/*", "*/"),
	Dockerfile: newProfile("Dockerfile", "#", "", ""),
	Go:         newProfile("Go", "//", "/*", "*/"),
	Haskell:    newProfile("Haskell", "--", "{-", "-}"),
	Java:       newProfile("Java", "//", "/*", "*/"),
	JavaScript: newProfile("JavaScript", "//", "/*", "*/"),
	Kotlin:     newProfile("Kotlin", "//", "/*", "*/"),
	Makefile:   newProfile("Makefile", "#", "", ""),
	Python:     newProfile("Python", "#", "", ""),
	Ruby:       newProfile("Ruby", "#", "=begin", "=end"),
	Rust:       newProfile("Rust", "//", "/*", "*/"),
	SQL:        newProfile("SQL", "--", "/*", "*/"),
	Scala:      newProfile("Scala", "//", "/*", "*/"),
	Shell:      newProfile("Shell", "#", "", ""),
	Swift:      newProfile("Swift", "//", "/*", "*/"),
	TOML:       newProfile("TOML", "#", "", ""),
	TypeScript: newProfile("TypeScript", "//", "/*", "*/"),
	YAML:       newProfile("YAML", "#", "", ""),
}

// extensions is keyed by the lower-cased extension without the dot
var extensions = map[string]Language{
	"c":     C,
	"h":     C,
	"cc":    CPP,
	"cpp":   CPP,
	"cxx":   CPP,
	"hh":    CPP,
	"hpp":   CPP,
	"cs":    CSharp,
	"go":    Go,
	"hs":    Haskell,
	"java":  Java,
	"js":    JavaScript,
	"jsx":   JavaScript,
	"mjs":   JavaScript,
	"cjs":   JavaScript,
	"kt":    Kotlin,
	"kts":   Kotlin,
	"mk":    Makefile,
	"py":    Python,
	"pyi":   Python,
	"rb":    Ruby,
	"rs":    Rust,
	"sql":   SQL,
	"scala": Scala,
	"sh":    Shell,
	"bash":  Shell,
	"zsh":   Shell,
	"swift": Swift,
	"toml":  TOML,
	"ts":    TypeScript,
	"tsx":   TypeScript,
	"yaml":  YAML,
	"yml":   YAML,
}

// fileNames covers files recognized by their whole name
var fileNames = map[string]Language{
	"Dockerfile":  Dockerfile,
	"Makefile":    Makefile,
	"GNUmakefile": Makefile,
}

// ForPath returns the language of the file at path
func ForPath(path string) Language {
	base := filepath.Base(path)
	if lang, ok := fileNames[base]; ok {
		return lang
	}
	if lang, ok := extensions[extension(path)]; ok {
		return lang
	}
	return Unknown
}

// Profile returns the comment grammar of l. The second result is false
// for Unknown.
func (l Language) Profile() (Profile, bool) {
	p, ok := profiles[l]
	return p, ok
}

// String returns the display name of the language
func (l Language) String() string {
	if p, ok := profiles[l]; ok {
		return p.Name
	}
	return domain.UnknownLanguage
}

// Known reports whether l has a comment grammar
func (l Language) Known() bool {
	_, ok := profiles[l]
	return ok
}

func extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
