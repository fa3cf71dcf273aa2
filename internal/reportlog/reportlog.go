// Package reportlog keeps an append-only CSV history of the problems found
// while building reports.
package reportlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Path is the log file relative to a project root.
const Path = "logs/report-log.csv"

var header = []string{"timestamp", "report", "kind", "row", "category", "details"}

// Entry is one logged build problem.
type Entry struct {
	Timestamp time.Time
	Report    string
	Kind      string
	Row       int // -1 when the problem is not tied to a report row
	Category  string
	Details   string
}

// sameProblem reports whether e and o describe the same problem, ignoring when
// they were logged.
func (e Entry) sameProblem(o Entry) bool {
	e.Timestamp, o.Timestamp = time.Time{}, time.Time{}
	return e == o
}

func (e Entry) record() []string {
	row := ""
	if e.Row >= 0 {
		row = strconv.Itoa(e.Row)
	}
	return []string{e.Timestamp.UTC().Format(time.RFC3339), e.Report, e.Kind, row, e.Category, e.Details}
}

func parseEntry(rec []string) (Entry, error) {
	ts, err := time.Parse(time.RFC3339, rec[0])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", rec[0], err)
	}
	row := -1
	if rec[3] != "" {
		if row, err = strconv.Atoi(rec[3]); err != nil {
			return Entry{}, fmt.Errorf("parsing row %q: %w", rec[3], err)
		}
	}
	return Entry{Timestamp: ts, Report: rec[1], Kind: rec[2], Row: row, Category: rec[4], Details: rec[5]}, nil
}

// Dedupe drops entries that repeat an earlier entry's problem, keeping order.
// A single build can hit the same problem once per month in its window.
func Dedupe(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		dup := false
		for _, seen := range out {
			if seen.sameProblem(e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// Log is a project's report log.
type Log struct {
	path string
}

// Open returns the log for the project at repoRoot. Nothing is created until
// the first Record.
func Open(repoRoot string) *Log {
	return &Log{path: filepath.Join(repoRoot, Path)}
}

// Record appends the problems from one build, dropping repeats within it.
// It returns the number of entries written.
func (l *Log) Record(entries []Entry) (int, error) {
	entries = Dedupe(entries)
	if len(entries) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return 0, fmt.Errorf("creating logs dir: %w", err)
	}
	_, statErr := os.Stat(l.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("opening report log: %w", err)
	}
	defer f.Close()

	records := make([][]string, 0, len(entries)+1)
	if isNew {
		records = append(records, header)
	}
	for _, e := range entries {
		records = append(records, e.record())
	}
	if err := csv.NewWriter(f).WriteAll(records); err != nil {
		return 0, fmt.Errorf("writing report log: %w", err)
	}
	return len(entries), nil
}

// Entries returns every logged entry, oldest first. A missing log is empty.
func (l *Log) Entries() ([]Entry, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening report log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	var entries []Entry
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading report log: %w", err)
		}
		if line == 1 {
			continue
		}
		e, err := parseEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("report log line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
}
