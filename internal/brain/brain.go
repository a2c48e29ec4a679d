// Package brain implements the in-memory session over the durable store:
// staged learning, the merge-on-save commit cycle with per-category
// dedup, derived leveling, and recall search.
package brain

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adavids/minibrain/internal/journal"
	"github.com/adavids/minibrain/internal/model"
	"github.com/adavids/minibrain/internal/store"
)

// Brain is the session object owning the loaded document and the staging
// buffer. It is not safe for concurrent use; one session drives all
// ingestion, commits, and recall.
type Brain struct {
	store   *store.Store
	journal *journal.Journal
	doc     model.Document
	buffer  Buffer
	now     func() time.Time
}

// Option configures a Brain at open time.
type Option func(*Brain)

// WithJournal records every successful commit cycle to the given journal.
func WithJournal(j *journal.Journal) Option {
	return func(b *Brain) { b.journal = j }
}

// WithClock replaces the wall clock used to timestamp learned facts.
func WithClock(now func() time.Time) Option {
	return func(b *Brain) { b.now = now }
}

// Open loads (or bootstraps) the durable document and returns a session
// over it. The returned status tells the caller whether the load was
// clean, recovered from backup, or reset to the blueprint.
func Open(s *store.Store, opts ...Option) (*Brain, store.LoadStatus, error) {
	doc, status, err := s.Load()
	if err != nil {
		return nil, status, err
	}
	b := &Brain{store: s, doc: doc, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b, status, nil
}

// Learn stages a fact under the given category with a timestamp captured
// now. No validation happens here; callers trim and reject empty input
// before calling, and whatever is given is staged as-is.
func (b *Brain) Learn(category, content string) {
	b.buffer.Append(model.Fact{
		Category:  category,
		Data:      content,
		Timestamp: b.now().Format(model.TimestampLayout),
	})
}

// Pending returns the number of staged facts not yet committed.
func (b *Brain) Pending() int {
	return b.buffer.Size()
}

// Document returns the current in-memory document.
func (b *Brain) Document() model.Document {
	return b.doc
}

// CommitResult summarizes one commit cycle.
type CommitResult struct {
	Merged    int  `json:"merged"`
	Duplicate int  `json:"duplicates"`
	LeveledUp bool `json:"leveled_up"`
	Level     int  `json:"level"`
	Points    int  `json:"intelligence_points"`
}

// Commit drains the staging buffer, merges the staged facts into
// long-term memory with per-category dedup on fact content, applies the
// intelligence gain for newly merged facts, and persists the document.
// The buffer stays drained even when persistence fails, so a failed
// write loses the staged facts; the in-memory document is unaffected by
// a write failure and the error is returned alongside the result.
func (b *Brain) Commit() (CommitResult, error) {
	drained := b.buffer.DrainAll()

	res := CommitResult{}
	for _, fact := range drained {
		if b.merge(fact) {
			res.Merged++
		} else {
			res.Duplicate++
		}
	}

	if res.Merged > 0 {
		res.LeveledUp = b.doc.ApplyGain(res.Merged)
		if res.LeveledUp {
			log.Info().Int("level", b.doc.Level).Msg("level up")
		}
	}
	res.Level = b.doc.Level
	res.Points = b.doc.IntelligencePoints

	if err := b.store.Commit(b.doc); err != nil {
		return res, err
	}

	if b.journal != nil && res.Merged > 0 {
		if err := b.journal.Record(journal.Entry{
			Merged:             res.Merged,
			Level:              res.Level,
			IntelligencePoints: res.Points,
		}); err != nil {
			// Journaling is additive observability; never fail a commit over it.
			log.Warn().Err(err).Msg("journal write failed")
		}
	}
	return res, nil
}

// merge appends the fact to its category unless an existing fact in that
// category carries identical data. Categories are created lazily.
func (b *Brain) merge(fact model.Fact) bool {
	if b.doc.LongTermMemory == nil {
		b.doc.LongTermMemory = map[string][]model.Fact{}
	}
	for _, existing := range b.doc.LongTermMemory[fact.Category] {
		if existing.Data == fact.Data {
			return false
		}
	}
	b.doc.LongTermMemory[fact.Category] = append(b.doc.LongTermMemory[fact.Category], fact)
	return true
}

// Stats summarizes the session for status displays.
type Stats struct {
	Owner      string `json:"owner"`
	Level      int    `json:"level"`
	Points     int    `json:"intelligence_points"`
	Categories int    `json:"categories"`
	Facts      int    `json:"facts"`
	Pending    int    `json:"pending"`
}

// Stats returns a snapshot of the session.
func (b *Brain) Stats() Stats {
	return Stats{
		Owner:      b.doc.MasterInfo.Name,
		Level:      b.doc.Level,
		Points:     b.doc.IntelligencePoints,
		Categories: len(b.doc.LongTermMemory),
		Facts:      b.doc.FactCount(),
		Pending:    b.buffer.Size(),
	}
}
