// Package journal keeps an append-only record of commit cycles.
//
// Each successful commit adds one newline-delimited JSON entry to the
// journal file. The journal is purely observability; the brain never
// reads it back to reconstruct state.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entry is one committed learning cycle.
type Entry struct {
	ID                 string `json:"id"`
	Merged             int    `json:"merged"`
	Level              int    `json:"level"`
	IntelligencePoints int    `json:"intelligence_points"`
	Timestamp          string `json:"timestamp"`
}

// Journal appends entries to an NDJSON file.
type Journal struct {
	path    string
	entropy *rand.Rand
}

// New creates a journal over the given file path. The file is created on
// first Record.
func New(path string) *Journal {
	return &Journal{
		path:    path,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Path returns the journal file path.
func (j *Journal) Path() string { return j.path }

// Record appends the entry, stamping its ID and timestamp.
func (j *Journal) Record(e Entry) error {
	e.ID = ulid.MustNew(ulid.Timestamp(time.Now()), j.entropy).String()
	e.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create journal dir: %w", err)
		}
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

// Entries reads back all journal entries in record order. A missing
// journal file yields an empty slice.
func (j *Journal) Entries() ([]Entry, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			return entries, fmt.Errorf("parse journal line: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}
