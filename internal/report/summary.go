// Package report folds per-file classifications into per-language totals
// and renders them.
package report

import (
	"sort"

	"linescope/internal/domain"
)

// Totals is the sum of the classifications of a set of files
type Totals struct {
	Language string `json:"language,omitempty"`
	Files    int    `json:"files"`
	Size     int64  `json:"size"`
	Lines    int    `json:"lines"`
	Blank    int    `json:"blank"`
	Comment  int    `json:"comment"`
	Code     int    `json:"code"`
}

func (t *Totals) add(c domain.Classification) {
	t.Files++
	t.Size += c.Size
	t.Lines += c.Lines
	t.Blank += c.Blank
	t.Comment += c.Comment
	t.Code += c.Code
}

// Summary is the aggregate of one metrics run
type Summary struct {
	Languages []Totals `json:"languages"`
	Total     Totals   `json:"total"`
	Ignored   int      `json:"ignored"`
}

// Fold sums files per language and globally. Languages are ordered by code
// lines, largest first, then by name.
func Fold(files []domain.Classification, ignored int) Summary {
	byLang := make(map[string]*Totals)
	var total Totals
	for _, c := range files {
		t, ok := byLang[c.Language]
		if !ok {
			t = &Totals{Language: c.Language}
			byLang[c.Language] = t
		}
		t.add(c)
		total.add(c)
	}

	langs := make([]Totals, 0, len(byLang))
	for _, t := range byLang {
		langs = append(langs, *t)
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Code != langs[j].Code {
			return langs[i].Code > langs[j].Code
		}
		return langs[i].Language < langs[j].Language
	})

	return Summary{Languages: langs, Total: total, Ignored: ignored}
}
