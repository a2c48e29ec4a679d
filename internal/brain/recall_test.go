package brain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecallBrain(t *testing.T) *Brain {
	t.Helper()
	b := newTestBrain(t)
	b.Learn("ENGINE", "IGBT driver uses TC4420CPA")
	b.Learn("LEGAL", "Case filed 2024")
	_, err := b.Commit()
	require.NoError(t, err)
	return b
}

func TestRecallCategoryMatch(t *testing.T) {
	b := newRecallBrain(t)

	matches := b.Recall("engine")
	require.Len(t, matches, 1)
	assert.Equal(t, "ENGINE", matches[0].Category)
	assert.Equal(t, "IGBT driver uses TC4420CPA", matches[0].Fact.Data)
}

func TestRecallContentMatch(t *testing.T) {
	b := newRecallBrain(t)

	matches := b.Recall("igbt")
	require.Len(t, matches, 1)
	assert.Equal(t, "ENGINE", matches[0].Category)
	assert.Equal(t, "IGBT driver uses TC4420CPA", matches[0].Fact.Data)
}

func TestRecallNoMatch(t *testing.T) {
	b := newRecallBrain(t)
	assert.Empty(t, b.Recall("zzz"))
}

func TestRecallTrimsAndIgnoresCase(t *testing.T) {
	b := newRecallBrain(t)

	matches := b.Recall("  LeGaL  ")
	require.Len(t, matches, 1)
	assert.Equal(t, "LEGAL", matches[0].Category)
}

func TestRecallNeverDoubleReports(t *testing.T) {
	b := newTestBrain(t)
	b.Learn("ENGINE", "the engine fact mentions its own category")
	_, err := b.Commit()
	require.NoError(t, err)

	// Matches both the category name and the fact content; reported once.
	matches := b.Recall("engine")
	assert.Len(t, matches, 1)
}

func TestRecallCategoryHitReturnsAllFacts(t *testing.T) {
	b := newRecallBrain(t)
	b.Learn("ENGINE", "second engine entry")
	_, err := b.Commit()
	require.NoError(t, err)

	matches := b.Recall("engine")
	assert.Len(t, matches, 2)
}

func TestRecallIgnoresStagingBuffer(t *testing.T) {
	b := newRecallBrain(t)
	b.Learn("ENGINE", "still pending, not recallable")

	for _, m := range b.Recall("pending") {
		assert.NotEqual(t, "still pending, not recallable", m.Fact.Data)
	}
	assert.Empty(t, b.Recall("recallable"))
}
