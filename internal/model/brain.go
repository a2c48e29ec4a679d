// Package model defines the brain's persistent data types.
package model

// TimestampLayout is the wall-clock format stamped onto learned facts.
const TimestampLayout = "2006-01-02 15:04:05"

// Leveling constants. Every merged fact is worth PointsPerFact, and each
// LevelThreshold points raises the level by one.
const (
	PointsPerFact  = 50
	LevelThreshold = 200
)

// Profile is the immutable identity block created at first-run bootstrap.
type Profile struct {
	Name        string `json:"name"`
	AccessLevel string `json:"access_level"`
	Location    string `json:"location"`
}

// Fact is a single piece of learned content. The Category field is omitted
// from the seeded bootstrap entry since it is implied by its map key.
type Fact struct {
	Category  string `json:"category,omitempty"`
	Data      string `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Document is the full durable state of the brain.
type Document struct {
	MasterInfo         Profile           `json:"master_info"`
	Level              int               `json:"level"`
	IntelligencePoints int               `json:"intelligence_points"`
	LongTermMemory     map[string][]Fact `json:"long_term_memory"`
}

// DefaultDocument returns the fixed first-run blueprint. Every call builds
// a fresh value so callers can mutate the result freely.
func DefaultDocument() Document {
	return Document{
		MasterInfo: Profile{
			Name:        "Achmed Davids",
			AccessLevel: "Soul Master",
			Location:    "Mitchell's Plain, CP",
		},
		Level:              1,
		IntelligencePoints: 50,
		LongTermMemory: map[string][]Fact{
			"CORE_DIRECTIVE": {
				{
					Data:      "I am Mini, the External Brain for Achmed Davids. My goal is to serve as a digital extension of his memory.",
					Timestamp: "2026-01-26",
				},
			},
		},
	}
}

// LevelFor returns the level implied by an intelligence point total.
func LevelFor(points int) int {
	return 1 + points/LevelThreshold
}

// ApplyGain awards intelligence points for merged facts and raises the
// level when a threshold is crossed. The level never decreases. Returns
// true if the level changed.
func (d *Document) ApplyGain(merged int) bool {
	if merged <= 0 {
		return false
	}
	d.IntelligencePoints += merged * PointsPerFact
	if lvl := LevelFor(d.IntelligencePoints); lvl > d.Level {
		d.Level = lvl
		return true
	}
	return false
}

// FactCount returns the total number of facts across all categories.
func (d Document) FactCount() int {
	n := 0
	for _, facts := range d.LongTermMemory {
		n += len(facts)
	}
	return n
}
