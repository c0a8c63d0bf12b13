// Package scan runs the classifier or the searcher over a list of files on
// a bounded worker pool.
package scan

import (
	"log/slog"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"linescope/internal/classify"
	"linescope/internal/domain"
	"linescope/internal/eventbus"
	"linescope/internal/language"
	"linescope/internal/search"
)

// Options configures a Scanner
type Options struct {
	Workers          int      // <= 0 uses runtime.NumCPU()
	IgnoreExtensions []string // added to the fixed ignore-list
	Bus              eventbus.EventBus
	Logger           *slog.Logger
}

// Scanner fans per-file work out over a worker pool
type Scanner struct {
	workers int
	ignore  []string
	bus     eventbus.EventBus
	logger  *slog.Logger
}

// MetricsResult holds the classification of every processed file
type MetricsResult struct {
	Files   []domain.Classification
	Ignored int
}

// SearchOutcome holds the per-file search results sorted by path
type SearchOutcome struct {
	Results []domain.SearchResult
	Ignored int
	Matches int
}

// New creates a scanner
func New(opts Options) *Scanner {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		workers: workers,
		ignore:  opts.IgnoreExtensions,
		bus:     opts.Bus,
		logger:  logger,
	}
}

// Metrics classifies every file. Unreadable, binary and ignored files are
// counted in Ignored and left out of Files.
func (s *Scanner) Metrics(files []string) MetricsResult {
	values, ignored := run(s, files, func(path string) (domain.Classification, bool, error) {
		if language.IsIgnored(path, s.ignore) {
			return domain.Classification{}, false, &FileError{Path: path, Kind: KindIgnoredExtension}
		}
		content, err := ReadText(path)
		if err != nil {
			return domain.Classification{}, false, err
		}
		c := classify.Classify(content, language.ForPath(path))
		c.Path = path
		return c, true, nil
	})

	sort.Slice(values, func(i, j int) bool { return values[i].Path < values[j].Path })
	return MetricsResult{Files: values, Ignored: ignored}
}

// Search runs q over every file. Files without a match produce no result.
func (s *Scanner) Search(files []string, q search.Query) SearchOutcome {
	values, ignored := run(s, files, func(path string) (domain.SearchResult, bool, error) {
		if language.IsIgnored(path, s.ignore) {
			return domain.SearchResult{}, false, &FileError{Path: path, Kind: KindIgnoredExtension}
		}
		lang := language.ForPath(path)
		if q.NeedsLanguage() && !lang.Known() {
			return domain.SearchResult{}, false, nil
		}
		content, err := ReadText(path)
		if err != nil {
			return domain.SearchResult{}, false, err
		}
		matches := search.Search(content, lang, q)
		if len(matches) == 0 {
			return domain.SearchResult{}, false, nil
		}
		return domain.SearchResult{Path: path, Matches: matches}, true, nil
	})

	sort.Slice(values, func(i, j int) bool { return values[i].Path < values[j].Path })

	total := 0
	for _, r := range values {
		total += len(r.Matches)
	}
	return SearchOutcome{Results: values, Ignored: ignored, Matches: total}
}

type outcome[T any] struct {
	value T
	keep  bool
	err   error
}

// run applies fn to every file on the pool. A file's error stays local to
// that file and is only counted.
func run[T any](s *Scanner, files []string, fn func(path string) (T, bool, error)) ([]T, int) {
	total := len(files)
	s.publish(eventbus.ScanStartedEvent{Files: total})

	var done atomic.Int64
	p := pool.NewWithResults[outcome[T]]().WithMaxGoroutines(s.workers)
	for _, path := range files {
		p.Go(func() outcome[T] {
			value, keep, err := fn(path)
			n := int(done.Add(1))
			if err != nil {
				s.logger.Debug("file ignored", "path", path, "error", err)
				s.publish(eventbus.FileIgnoredEvent{Path: path, Err: err, Done: n, Total: total})
			} else {
				s.publish(eventbus.FileProcessedEvent{Path: path, Done: n, Total: total})
			}
			return outcome[T]{value: value, keep: keep, err: err}
		})
	}

	var values []T
	ignored := 0
	for _, o := range p.Wait() {
		switch {
		case o.err != nil:
			ignored++
		case o.keep:
			values = append(values, o.value)
		}
	}

	s.logger.Info("scan completed", "files", total, "kept", len(values), "ignored", ignored)
	s.publish(eventbus.ScanCompletedEvent{Processed: total - ignored, Ignored: ignored})
	return values, ignored
}

func (s *Scanner) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
