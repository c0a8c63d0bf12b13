package domain

// UnknownLanguage is the language name reported for files whose extension
// has no registered profile
const UnknownLanguage = "Unknown"

// Classification is the per-file tally of blank, comment and code lines
type Classification struct {
	Path     string
	Language string
	Size     int64 // raw byte length of the content
	Lines    int
	Blank    int
	Comment  int
	Code     int
}

// Balanced reports whether every line was counted exactly once
func (c Classification) Balanced() bool {
	return c.Blank+c.Comment+c.Code == c.Lines
}

// Match is a single matching line
type Match struct {
	Line int    // 1-based
	Text string // trimmed line text
}

// SearchResult holds the matches found in one file, in file order
type SearchResult struct {
	Path    string
	Matches []Match
}
