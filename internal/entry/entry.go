package entry

import (
	"bufio"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// DefaultMarker is the editor log line printed right before the size breakdown.
const DefaultMarker = "Used Assets and files from the Resources folder, sorted by uncompressed size:"

const maxLineSize = 1024 * 1024

// Entry is one (path, size) record from the size breakdown.
type Entry struct {
	Path   string
	SizeMB float64
}

// Scanner reads entries from a report one line at a time.
// It stops at the first line after the marker that is not a size line.
type Scanner struct {
	lines   *bufio.Scanner
	marker  string
	started bool
	done    bool
	entry   Entry
	lineNo  int
}

func NewScanner(r io.Reader, marker string) *Scanner {
	if marker == "" {
		marker = DefaultMarker
	}
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{
		lines:  lines,
		marker: strings.TrimSpace(marker),
	}
}

// Scan advances to the next entry. It returns false once the breakdown
// ends, the input is exhausted, or a read error occurs.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.lines.Scan() {
		s.lineNo++
		line := s.lines.Text()

		if !s.started {
			if strings.TrimSpace(line) == s.marker {
				s.started = true
			}
			continue
		}

		e, ok := ParseLine(line)
		if !ok {
			// End of the size breakdown
			s.done = true
			return false
		}
		s.entry = e
		return true
	}
	s.done = true
	return false
}

// Entry returns the entry produced by the last successful Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

// Err returns the read error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

// Started reports whether the marker line has been seen.
func (s *Scanner) Started() bool {
	return s.started
}

// Line returns the number of lines consumed so far.
func (s *Scanner) Line() int {
	return s.lineNo
}

// All returns the remaining entries as a single-use sequence.
func (s *Scanner) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for s.Scan() {
			if !yield(s.entry) {
				return
			}
		}
	}
}

// ParseLine parses " <number> <unit> <percent>% <path>". The unit must be
// "kb" or "mb"; kb values are converted to MB.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)

	sp := strings.IndexAny(line, " \t")
	if sp <= 0 {
		return Entry{}, false
	}
	size, err := strconv.ParseFloat(line[:sp], 64)
	if err != nil || !finite(size) || size < 0 {
		return Entry{}, false
	}

	rest := line[sp+1:]
	if len(rest) < 3 || (rest[2] != ' ' && rest[2] != '\t') {
		return Entry{}, false
	}
	switch rest[:2] {
	case "kb":
		size /= 1000
	case "mb":
	default:
		return Entry{}, false
	}

	rest = strings.TrimLeft(rest[3:], " \t")
	pct := strings.Index(rest, "% ")
	if pct <= 0 {
		return Entry{}, false
	}
	if share, err := strconv.ParseFloat(rest[:pct], 64); err != nil || !finite(share) {
		return Entry{}, false
	}

	path := strings.TrimSpace(rest[pct+2:])
	if path == "" {
		return Entry{}, false
	}

	return Entry{Path: path, SizeMB: size}, true
}

// finite rejects the NaN and Inf spellings strconv accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Parse reads every entry from r.
func Parse(r io.Reader, marker string) ([]Entry, error) {
	s := NewScanner(r, marker)
	var out []Entry
	for e := range s.All() {
		out = append(out, e)
	}
	return out, s.Err()
}
