package brain

import (
	"sort"
	"strings"

	"github.com/adavids/minibrain/internal/model"
)

// Match is a single recall hit.
type Match struct {
	Category string     `json:"category"`
	Fact     model.Fact `json:"fact"`
}

// Recall searches long-term memory for the query, case-insensitively and
// with surrounding whitespace trimmed. A query matching a category name
// returns every fact in that category; otherwise each fact whose data
// contains the query is matched individually. A category never reports
// the same fact through both rules. Only the durable document is
// searched, never the staging buffer. Categories are visited in sorted
// order so results are stable.
func (b *Brain) Recall(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))

	cats := make([]string, 0, len(b.doc.LongTermMemory))
	for cat := range b.doc.LongTermMemory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var matches []Match
	for _, cat := range cats {
		facts := b.doc.LongTermMemory[cat]
		if strings.Contains(strings.ToLower(cat), q) {
			for _, f := range facts {
				matches = append(matches, Match{Category: cat, Fact: f})
			}
			continue
		}
		for _, f := range facts {
			if strings.Contains(strings.ToLower(f.Data), q) {
				matches = append(matches, Match{Category: cat, Fact: f})
			}
		}
	}
	return matches
}
